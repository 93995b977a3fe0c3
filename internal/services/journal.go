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
	ErrJournalEntryNotFound = errors.New("journal entry not found")
	ErrMoodRequired         = errors.New("mood is required")
)

const journalColumns = `id, user_id, date, mood, text, created_at`

type JournalService struct {
	db DB
}

func NewJournalService(db DB) *JournalService {
	return &JournalService{db: db}
}

func (s *JournalService) Create(ctx context.Context, params models.CreateJournalEntryParams) (*models.JournalEntry, error) {
	if params.Mood == "" {
		return nil, ErrMoodRequired
	}
	date := defaultDate(params.Date, time.Now().UTC())

	entry := &models.JournalEntry{}
	err := s.db.QueryRow(ctx,
		`INSERT INTO journal_entries (user_id, date, mood, text)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+journalColumns,
		params.UserID, date, params.Mood, params.Text,
	).Scan(&entry.ID, &entry.UserID, &entry.Date, &entry.Mood, &entry.Text, &entry.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("creating journal entry: %w", err)
	}
	return entry, nil
}

func (s *JournalService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.JournalEntry, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+journalColumns+`
		 FROM journal_entries
		 WHERE user_id = $1 AND deleted = false
		 ORDER BY date DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		var entry models.JournalEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Date, &entry.Mood, &entry.Text, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning journal entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating journal entries: %w", err)
	}

	return entries, nil
}

// Latest returns the most recent live entry, or nil.
func (s *JournalService) Latest(ctx context.Context, userID uuid.UUID) (*models.JournalEntry, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+journalColumns+`
		 FROM journal_entries
		 WHERE user_id = $1 AND deleted = false
		 ORDER BY date DESC
		 LIMIT 1`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("getting latest journal entry: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	entry := &models.JournalEntry{}
	if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Date, &entry.Mood, &entry.Text, &entry.CreatedAt); err != nil {
		return nil, fmt.Errorf("scanning journal entry: %w", err)
	}
	return entry, nil
}

func (s *JournalService) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	result, err := s.db.Exec(ctx,
		`UPDATE journal_entries SET deleted = true
		 WHERE id = $1 AND user_id = $2 AND deleted = false`,
		entryID, userID,
	)
	if err != nil {
		return fmt.Errorf("deleting journal entry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrJournalEntryNotFound
	}
	return nil
}
