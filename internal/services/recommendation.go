package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/riyaaaa19/shecare/internal/insights"
)

// RecommendationService assembles the engine's input snapshot from the
// user's live records and runs one evaluation. Recommendations are derived
// per request and never stored.
type RecommendationService struct {
	cycles     CycleServiceInterface
	journals   JournalServiceInterface
	riskChecks RiskCheckServiceInterface
	now        func() time.Time
}

func NewRecommendationService(cycles CycleServiceInterface, journals JournalServiceInterface, riskChecks RiskCheckServiceInterface) *RecommendationService {
	return &RecommendationService{
		cycles:     cycles,
		journals:   journals,
		riskChecks: riskChecks,
		now:        time.Now,
	}
}

// ForUser loads the snapshot and evaluates the rule set against it. The
// clock is read once so every rule sees the same instant.
func (s *RecommendationService) ForUser(ctx context.Context, userID uuid.UUID) ([]insights.Recommendation, error) {
	cycles, err := s.cycles.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading cycle entries: %w", err)
	}

	journals, err := s.journals.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading journal entries: %w", err)
	}

	latestRisk, err := s.riskChecks.Latest(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading latest risk check: %w", err)
	}

	return insights.Recommend(insights.Input{
		Cycles:     cycles,
		Journals:   journals,
		LatestRisk: latestRisk,
		Now:        s.now().UTC(),
	}), nil
}
