package models

import (
	"time"

	"github.com/google/uuid"
)

// RiskCheck is one persisted PCOS self-assessment: the raw submitted answers
// plus the classified risk tier and its fixed tip list.
type RiskCheck struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"-"`
	Date      time.Time      `json:"date"`
	Answers   map[string]any `json:"answers"`
	Risk      string         `json:"risk"`
	Tips      []string       `json:"tips"`
	CreatedAt time.Time      `json:"created_at"`
}

type CreateRiskCheckParams struct {
	UserID  uuid.UUID
	Date    time.Time
	Answers map[string]any
	Risk    string
	Tips    []string
}
