package handlers

import (
	"context"

	"github.com/riyaaaa19/shecare/internal/models"
)

// userKey is unexported so no other package can collide with the entry.
type userKey struct{}

// SetUserInContext returns a child context carrying the authenticated user.
func SetUserInContext(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUserFromContext returns the authenticated user, or nil for anonymous
// requests.
func GetUserFromContext(ctx context.Context) *models.User {
	u, _ := ctx.Value(userKey{}).(*models.User)
	return u
}
