package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/riyaaaa19/shecare/internal/insights"
	"github.com/riyaaaa19/shecare/internal/models"
)

// Func-field mocks: each test sets only the methods it expects to be called.
// An unset method panics, which surfaces unexpected calls immediately.

type mockUserService struct {
	CreateFunc         func(ctx context.Context, params models.CreateUserParams) (*models.User, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmailFunc     func(ctx context.Context, email string) (*models.User, error)
	UpdateProfileFunc  func(ctx context.Context, userID uuid.UUID, params models.UpdateProfileParams) (*models.User, error)
	UpdatePasswordFunc func(ctx context.Context, userID uuid.UUID, newPasswordHash string) error
	DeleteFunc         func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockUserService) Create(ctx context.Context, params models.CreateUserParams) (*models.User, error) {
	return m.CreateFunc(ctx, params)
}

func (m *mockUserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockUserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, userID uuid.UUID, params models.UpdateProfileParams) (*models.User, error) {
	return m.UpdateProfileFunc(ctx, userID, params)
}

func (m *mockUserService) UpdatePassword(ctx context.Context, userID uuid.UUID, newPasswordHash string) error {
	return m.UpdatePasswordFunc(ctx, userID, newPasswordHash)
}

func (m *mockUserService) Delete(ctx context.Context, userID uuid.UUID) error {
	return m.DeleteFunc(ctx, userID)
}

type mockAuthService struct {
	HashPasswordFunc          func(password string) (string, error)
	VerifyPasswordFunc        func(hash, password string) bool
	GenerateSessionTokenFunc  func() (string, string, error)
	CreateSessionFunc         func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateSessionFunc       func(ctx context.Context, token string) (*models.User, error)
	DeleteSessionFunc         func(ctx context.Context, token string) error
	DeleteAllUserSessionsFunc func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockAuthService) HashPassword(password string) (string, error) {
	return m.HashPasswordFunc(password)
}

func (m *mockAuthService) VerifyPassword(hash, password string) bool {
	return m.VerifyPasswordFunc(hash, password)
}

func (m *mockAuthService) GenerateSessionToken() (string, string, error) {
	return m.GenerateSessionTokenFunc()
}

func (m *mockAuthService) CreateSession(ctx context.Context, userID uuid.UUID) (string, error) {
	return m.CreateSessionFunc(ctx, userID)
}

func (m *mockAuthService) ValidateSession(ctx context.Context, token string) (*models.User, error) {
	return m.ValidateSessionFunc(ctx, token)
}

func (m *mockAuthService) DeleteSession(ctx context.Context, token string) error {
	return m.DeleteSessionFunc(ctx, token)
}

func (m *mockAuthService) DeleteAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	return m.DeleteAllUserSessionsFunc(ctx, userID)
}

type mockEmailService struct {
	SendPasswordResetEmailFunc   func(ctx context.Context, userID uuid.UUID, email string) error
	VerifyPasswordResetTokenFunc func(ctx context.Context, token string) (uuid.UUID, error)
	MarkPasswordResetUsedFunc    func(ctx context.Context, token string) error
}

func (m *mockEmailService) SendPasswordResetEmail(ctx context.Context, userID uuid.UUID, email string) error {
	return m.SendPasswordResetEmailFunc(ctx, userID, email)
}

func (m *mockEmailService) VerifyPasswordResetToken(ctx context.Context, token string) (uuid.UUID, error) {
	return m.VerifyPasswordResetTokenFunc(ctx, token)
}

func (m *mockEmailService) MarkPasswordResetUsed(ctx context.Context, token string) error {
	return m.MarkPasswordResetUsedFunc(ctx, token)
}

type mockCycleService struct {
	CreateFunc     func(ctx context.Context, params models.CreateCycleEntryParams) (*models.CycleEntry, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]models.CycleEntry, error)
	LatestFunc     func(ctx context.Context, userID uuid.UUID) (*models.CycleEntry, error)
	DeleteFunc     func(ctx context.Context, userID, entryID uuid.UUID) error
}

func (m *mockCycleService) Create(ctx context.Context, params models.CreateCycleEntryParams) (*models.CycleEntry, error) {
	return m.CreateFunc(ctx, params)
}

func (m *mockCycleService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CycleEntry, error) {
	return m.ListByUserFunc(ctx, userID)
}

func (m *mockCycleService) Latest(ctx context.Context, userID uuid.UUID) (*models.CycleEntry, error) {
	return m.LatestFunc(ctx, userID)
}

func (m *mockCycleService) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	return m.DeleteFunc(ctx, userID, entryID)
}

type mockJournalService struct {
	CreateFunc     func(ctx context.Context, params models.CreateJournalEntryParams) (*models.JournalEntry, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]models.JournalEntry, error)
	LatestFunc     func(ctx context.Context, userID uuid.UUID) (*models.JournalEntry, error)
	DeleteFunc     func(ctx context.Context, userID, entryID uuid.UUID) error
}

func (m *mockJournalService) Create(ctx context.Context, params models.CreateJournalEntryParams) (*models.JournalEntry, error) {
	return m.CreateFunc(ctx, params)
}

func (m *mockJournalService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.JournalEntry, error) {
	return m.ListByUserFunc(ctx, userID)
}

func (m *mockJournalService) Latest(ctx context.Context, userID uuid.UUID) (*models.JournalEntry, error) {
	return m.LatestFunc(ctx, userID)
}

func (m *mockJournalService) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	return m.DeleteFunc(ctx, userID, entryID)
}

type mockRiskCheckService struct {
	SubmitFunc     func(ctx context.Context, userID uuid.UUID, answers map[string]any) (*models.RiskCheck, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]models.RiskCheck, error)
	LatestFunc     func(ctx context.Context, userID uuid.UUID) (*models.RiskCheck, error)
	DeleteFunc     func(ctx context.Context, userID, checkID uuid.UUID) error
}

func (m *mockRiskCheckService) Submit(ctx context.Context, userID uuid.UUID, answers map[string]any) (*models.RiskCheck, error) {
	return m.SubmitFunc(ctx, userID, answers)
}

func (m *mockRiskCheckService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RiskCheck, error) {
	return m.ListByUserFunc(ctx, userID)
}

func (m *mockRiskCheckService) Latest(ctx context.Context, userID uuid.UUID) (*models.RiskCheck, error) {
	return m.LatestFunc(ctx, userID)
}

func (m *mockRiskCheckService) Delete(ctx context.Context, userID, checkID uuid.UUID) error {
	return m.DeleteFunc(ctx, userID, checkID)
}

type mockRecommendationService struct {
	ForUserFunc func(ctx context.Context, userID uuid.UUID) ([]insights.Recommendation, error)
}

func (m *mockRecommendationService) ForUser(ctx context.Context, userID uuid.UUID) ([]insights.Recommendation, error) {
	return m.ForUserFunc(ctx, userID)
}
