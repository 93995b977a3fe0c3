package models

import (
	"time"

	"github.com/google/uuid"
)

// CycleEntry is one logged menstrual cycle. Soft-deleted rows stay in the
// table with deleted=true and are filtered out by every query the
// recommendation pipeline uses.
type CycleEntry struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"-"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type CreateCycleEntryParams struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   *time.Time
	Notes     *string
}
