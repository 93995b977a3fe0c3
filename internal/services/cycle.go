package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/riyaaaa19/shecare/internal/models"
)

var (
	ErrCycleEntryNotFound = errors.New("cycle entry not found")
	ErrInvalidDateRange   = errors.New("end date before start date")
)

const cycleColumns = `id, user_id, start_date, end_date, notes, created_at`

type CycleService struct {
	db DB
}

func NewCycleService(db DB) *CycleService {
	return &CycleService{db: db}
}

func (s *CycleService) Create(ctx context.Context, params models.CreateCycleEntryParams) (*models.CycleEntry, error) {
	if params.EndDate != nil && params.EndDate.Before(params.StartDate) {
		return nil, ErrInvalidDateRange
	}

	entry := &models.CycleEntry{}
	err := s.db.QueryRow(ctx,
		`INSERT INTO cycle_entries (user_id, start_date, end_date, notes)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+cycleColumns,
		params.UserID, params.StartDate, params.EndDate, params.Notes,
	).Scan(&entry.ID, &entry.UserID, &entry.StartDate, &entry.EndDate, &entry.Notes, &entry.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("creating cycle entry: %w", err)
	}
	return entry, nil
}

// ListByUser returns the user's live entries sorted ascending by start date,
// the order the recommendation engine expects.
func (s *CycleService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CycleEntry, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+cycleColumns+`
		 FROM cycle_entries
		 WHERE user_id = $1 AND deleted = false
		 ORDER BY start_date ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing cycle entries: %w", err)
	}
	defer rows.Close()

	var entries []models.CycleEntry
	for rows.Next() {
		var entry models.CycleEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.StartDate, &entry.EndDate, &entry.Notes, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning cycle entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cycle entries: %w", err)
	}

	return entries, nil
}

// Latest returns the most recent live entry by start date, or nil.
func (s *CycleService) Latest(ctx context.Context, userID uuid.UUID) (*models.CycleEntry, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+cycleColumns+`
		 FROM cycle_entries
		 WHERE user_id = $1 AND deleted = false
		 ORDER BY start_date DESC
		 LIMIT 1`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("getting latest cycle entry: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	entry := &models.CycleEntry{}
	if err := rows.Scan(&entry.ID, &entry.UserID, &entry.StartDate, &entry.EndDate, &entry.Notes, &entry.CreatedAt); err != nil {
		return nil, fmt.Errorf("scanning cycle entry: %w", err)
	}
	return entry, nil
}

// Delete soft-deletes the entry. The row stays in place so history is
// recoverable; every read path filters on the flag.
func (s *CycleService) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	result, err := s.db.Exec(ctx,
		`UPDATE cycle_entries SET deleted = true
		 WHERE id = $1 AND user_id = $2 AND deleted = false`,
		entryID, userID,
	)
	if err != nil {
		return fmt.Errorf("deleting cycle entry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrCycleEntryNotFound
	}
	return nil
}

// defaultDate substitutes now for a zero time, used by create paths that
// accept an optional date.
func defaultDate(d time.Time, now time.Time) time.Time {
	if d.IsZero() {
		return now
	}
	return d
}
