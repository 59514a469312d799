package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/eagleeyes/storefront/internal/api/httpx"
	"github.com/eagleeyes/storefront/internal/auth"
	"github.com/eagleeyes/storefront/internal/logger"
	"github.com/eagleeyes/storefront/internal/models"
	"github.com/eagleeyes/storefront/internal/services"
)

type AuthHandler struct {
	TM    *auth.TokenManager
	users *services.UserService
	log   *slog.Logger
}

func NewAuthHandler(tm *auth.TokenManager, users *services.UserService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{TM: tm, users: users, log: log}
}

type loginReq struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password"`
}

type registerReq struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"eqfield=Password"`
}

type sessionResp struct {
	User      models.User `json:"user"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := decode(r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	u, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	h.issue(w, r, http.StatusOK, u)
}

// Register checks the password confirmation here, before the directory sees the request.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := decode(r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	u, err := h.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	h.issue(w, r, http.StatusCreated, u)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.users.Logout()
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) issue(w http.ResponseWriter, r *http.Request, status int, u models.User) {
	tok, exp, err := h.TM.Generate(u.ID, string(u.Role))
	if err != nil {
		h.log.Error("token generation failed", "user_id", u.ID, logger.Err(err))
		httpx.WriteError(w, r, http.StatusInternalServerError, "internal_error", "token generation failed", nil)
		return
	}
	httpx.WriteJSON(w, r, status, sessionResp{User: u, Token: tok, ExpiresAt: exp})
}
