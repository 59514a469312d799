package middleware

import (
	"context"

	"github.com/eagleeyes/storefront/internal/models"
)

type userKey struct{}

// WithUser stores the signed-in user resolved by the session guard.
func WithUser(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

func UserFrom(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(userKey{}).(models.User)
	return u, ok
}
