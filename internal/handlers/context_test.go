package handlers

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/riyaaaa19/shecare/internal/models"
)

func TestUserContextRoundTrip(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "amy@example.com"}

	ctx := SetUserInContext(context.Background(), user)
	got := GetUserFromContext(ctx)
	if got == nil || got.ID != user.ID {
		t.Errorf("got %+v, want %+v", got, user)
	}
}

func TestGetUserFromContextMissing(t *testing.T) {
	if got := GetUserFromContext(context.Background()); got != nil {
		t.Errorf("expected nil for empty context, got %+v", got)
	}
}
