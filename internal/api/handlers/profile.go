package handlers

import (
	"log/slog"
	"net/http"

	"github.com/eagleeyes/storefront/internal/api/httpx"
	"github.com/eagleeyes/storefront/internal/middleware"
	"github.com/eagleeyes/storefront/internal/models"
	"github.com/eagleeyes/storefront/internal/money"
	"github.com/eagleeyes/storefront/internal/services"
)

// ProfileHandler serves the signed-in user's own pages. Every route sits behind RequireUser.
type ProfileHandler struct {
	users    *services.UserService
	checkout *services.CheckoutService
	log      *slog.Logger
}

func NewProfileHandler(users *services.UserService, checkout *services.CheckoutService, log *slog.Logger) *ProfileHandler {
	return &ProfileHandler{users: users, checkout: checkout, log: log}
}

func (h *ProfileHandler) current(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	u, ok := middleware.UserFrom(r.Context())
	if !ok {
		writeServiceError(w, r, h.log, services.ErrNotAuthenticated)
	}
	return u, ok
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, ok := h.current(w, r)
	if !ok {
		return
	}
	httpx.WriteJSON(w, r, http.StatusOK, u)
}

type updateProfileReq struct {
	Name string `json:"name" validate:"required"`
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	u, ok := h.current(w, r)
	if !ok {
		return
	}
	var req updateProfileReq
	if err := decode(r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	h.users.UpdateUserProfile(u.ID, req.Name)
	if cur := h.users.CurrentUser(); cur != nil {
		u = *cur
	}
	httpx.WriteJSON(w, r, http.StatusOK, u)
}

type orderView struct {
	models.Order
	TotalFormatted string `json:"total_formatted"`
}

func (h *ProfileHandler) Orders(w http.ResponseWriter, r *http.Request) {
	u, ok := h.current(w, r)
	if !ok {
		return
	}
	orders := h.checkout.OrderHistory(u.ID)
	out := make([]orderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderView{Order: o, TotalFormatted: money.FormatNGN(o.Total)})
	}
	httpx.WriteJSON(w, r, http.StatusOK, out)
}

type checkoutReq struct {
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
}

// Checkout pays for the cart and returns the placed order.
func (h *ProfileHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutReq
	if err := decode(r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	order, err := h.checkout.Checkout(r.Context(), models.ShippingAddress{
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	httpx.WriteJSON(w, r, http.StatusCreated, orderView{Order: order, TotalFormatted: money.FormatNGN(order.Total)})
}
