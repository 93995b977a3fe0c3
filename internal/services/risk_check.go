package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/riyaaaa19/shecare/internal/insights"
	"github.com/riyaaaa19/shecare/internal/models"
)

var ErrRiskCheckNotFound = errors.New("risk check not found")

const riskCheckColumns = `id, user_id, date, answers, risk, tips, created_at`

type RiskCheckService struct {
	db DB
}

func NewRiskCheckService(db DB) *RiskCheckService {
	return &RiskCheckService{db: db}
}

// Submit classifies the raw assessment answers and persists the submission
// verbatim alongside the derived tier and tips.
func (s *RiskCheckService) Submit(ctx context.Context, userID uuid.UUID, answers map[string]any) (*models.RiskCheck, error) {
	risk, tips := insights.Classify(answers)

	if answers == nil {
		answers = map[string]any{}
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("encoding answers: %w", err)
	}
	tipsJSON, err := json.Marshal(tips)
	if err != nil {
		return nil, fmt.Errorf("encoding tips: %w", err)
	}

	row := s.db.QueryRow(ctx,
		`INSERT INTO risk_checks (user_id, date, answers, risk, tips)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+riskCheckColumns,
		userID, time.Now().UTC(), answersJSON, string(risk), tipsJSON,
	)
	check, err := scanRiskCheck(row)
	if err != nil {
		return nil, fmt.Errorf("creating risk check: %w", err)
	}
	return check, nil
}

func (s *RiskCheckService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RiskCheck, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+riskCheckColumns+`
		 FROM risk_checks
		 WHERE user_id = $1
		 ORDER BY date DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing risk checks: %w", err)
	}
	defer rows.Close()

	var checks []models.RiskCheck
	for rows.Next() {
		check, err := scanRiskCheck(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning risk check: %w", err)
		}
		checks = append(checks, *check)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating risk checks: %w", err)
	}

	return checks, nil
}

// Latest returns the most recent check, or nil when the user has none.
func (s *RiskCheckService) Latest(ctx context.Context, userID uuid.UUID) (*models.RiskCheck, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+riskCheckColumns+`
		 FROM risk_checks
		 WHERE user_id = $1
		 ORDER BY date DESC
		 LIMIT 1`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("getting latest risk check: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	check, err := scanRiskCheck(rows)
	if err != nil {
		return nil, fmt.Errorf("scanning risk check: %w", err)
	}
	return check, nil
}

func (s *RiskCheckService) Delete(ctx context.Context, userID, checkID uuid.UUID) error {
	result, err := s.db.Exec(ctx,
		`DELETE FROM risk_checks WHERE id = $1 AND user_id = $2`,
		checkID, userID,
	)
	if err != nil {
		return fmt.Errorf("deleting risk check: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrRiskCheckNotFound
	}
	return nil
}

func scanRiskCheck(row Row) (*models.RiskCheck, error) {
	check := &models.RiskCheck{}
	var answersJSON, tipsJSON []byte
	err := row.Scan(&check.ID, &check.UserID, &check.Date, &answersJSON, &check.Risk, &tipsJSON, &check.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(answersJSON) > 0 {
		if err := json.Unmarshal(answersJSON, &check.Answers); err != nil {
			return nil, fmt.Errorf("decoding answers: %w", err)
		}
	}
	if len(tipsJSON) > 0 {
		if err := json.Unmarshal(tipsJSON, &check.Tips); err != nil {
			return nil, fmt.Errorf("decoding tips: %w", err)
		}
	}
	return check, nil
}
