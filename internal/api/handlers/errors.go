package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/eagleeyes/storefront/internal/api/httpx"
	"github.com/eagleeyes/storefront/internal/api/validate"
	"github.com/eagleeyes/storefront/internal/logger"
	repo "github.com/eagleeyes/storefront/internal/repository"
	"github.com/eagleeyes/storefront/internal/services"
)

// writeServiceError maps domain errors onto the JSON error envelope.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verrs validate.Errs
	switch {
	case errors.As(err, &verrs):
		httpx.WriteError(w, r, http.StatusBadRequest, "validation_failed", "invalid request", verrs)
	case errors.Is(err, services.ErrUserNotFound):
		httpx.WriteError(w, r, http.StatusNotFound, "user_not_found", "user not found", nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		httpx.WriteError(w, r, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", nil)
	case errors.Is(err, services.ErrEmailInUse):
		httpx.WriteError(w, r, http.StatusConflict, "email_in_use", "email already in use", nil)
	case errors.Is(err, services.ErrNotAuthenticated):
		httpx.WriteError(w, r, http.StatusUnauthorized, "unauthenticated", "sign in required", httpx.Redirect("/login"))
	case errors.Is(err, services.ErrSelfRoleChange):
		httpx.WriteError(w, r, http.StatusForbidden, "self_role_change", "you cannot change your own role", nil)
	case errors.Is(err, services.ErrInvalidRole):
		httpx.WriteError(w, r, http.StatusBadRequest, "invalid_role", "unknown role", nil)
	case errors.Is(err, services.ErrEmptyCart):
		httpx.WriteError(w, r, http.StatusBadRequest, "empty_cart", "your cart is empty", nil)
	case errors.Is(err, services.ErrInsufficientStock):
		httpx.WriteError(w, r, http.StatusConflict, "insufficient_stock", err.Error(), nil)
	case errors.Is(err, services.ErrUnknownKind):
		httpx.WriteError(w, r, http.StatusNotFound, "unknown_kind", err.Error(), nil)
	case errors.Is(err, services.ErrInvalidRecord):
		httpx.WriteError(w, r, http.StatusBadRequest, "invalid_record", "invalid record", nil)
	case errors.Is(err, repo.ErrNotFound):
		httpx.WriteError(w, r, http.StatusNotFound, "not_found", "not found", nil)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		httpx.WriteError(w, r, http.StatusGatewayTimeout, "timeout", "operation did not complete in time", nil)
	default:
		log.Error("request failed", "path", r.URL.Path, logger.Err(err))
		httpx.WriteError(w, r, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}

// decode reads the JSON body into dst and runs its validation tags.
func decode(r *http.Request, dst any) error {
	if err := httpx.DecodeJSON(r, dst); err != nil {
		return validate.Errs{{Field: "body", Msg: "invalid JSON"}}
	}
	return validate.Struct(dst)
}
