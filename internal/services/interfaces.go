package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/riyaaaa19/shecare/internal/insights"
	"github.com/riyaaaa19/shecare/internal/models"
)

// UserServiceInterface defines the contract for user operations.
type UserServiceInterface interface {
	Create(ctx context.Context, params models.CreateUserParams) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, params models.UpdateProfileParams) (*models.User, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, newPasswordHash string) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// AuthServiceInterface defines the contract for authentication operations.
type AuthServiceInterface interface {
	HashPassword(password string) (string, error)
	VerifyPassword(hash, password string) bool
	GenerateSessionToken() (token string, hash string, err error)
	CreateSession(ctx context.Context, userID uuid.UUID) (token string, err error)
	ValidateSession(ctx context.Context, token string) (*models.User, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteAllUserSessions(ctx context.Context, userID uuid.UUID) error
}

// CycleServiceInterface defines the contract for cycle tracking operations.
type CycleServiceInterface interface {
	Create(ctx context.Context, params models.CreateCycleEntryParams) (*models.CycleEntry, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CycleEntry, error)
	Latest(ctx context.Context, userID uuid.UUID) (*models.CycleEntry, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
}

// JournalServiceInterface defines the contract for mood journal operations.
type JournalServiceInterface interface {
	Create(ctx context.Context, params models.CreateJournalEntryParams) (*models.JournalEntry, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.JournalEntry, error)
	Latest(ctx context.Context, userID uuid.UUID) (*models.JournalEntry, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
}

// RiskCheckServiceInterface defines the contract for PCOS self-assessments.
type RiskCheckServiceInterface interface {
	Submit(ctx context.Context, userID uuid.UUID, answers map[string]any) (*models.RiskCheck, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RiskCheck, error)
	Latest(ctx context.Context, userID uuid.UUID) (*models.RiskCheck, error)
	Delete(ctx context.Context, userID, checkID uuid.UUID) error
}

// RecommendationServiceInterface derives recommendations for one user.
type RecommendationServiceInterface interface {
	ForUser(ctx context.Context, userID uuid.UUID) ([]insights.Recommendation, error)
}

// EmailServiceInterface defines the contract for email operations.
type EmailServiceInterface interface {
	SendPasswordResetEmail(ctx context.Context, userID uuid.UUID, email string) error
	VerifyPasswordResetToken(ctx context.Context, token string) (uuid.UUID, error)
	MarkPasswordResetUsed(ctx context.Context, token string) error
}
