package models

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry is one mood journal entry.
type JournalEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"-"`
	Date      time.Time `json:"date"`
	Mood      string    `json:"mood"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateJournalEntryParams struct {
	UserID uuid.UUID
	Date   time.Time
	Mood   string
	Text   string
}
