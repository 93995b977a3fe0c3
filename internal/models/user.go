package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Age          *int      `json:"age,omitempty"`
	Weight       *int      `json:"weight,omitempty"`
	CycleLength  *int      `json:"cycle_length,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateUserParams struct {
	Email        string
	PasswordHash string
	FullName     string
}

type UpdateProfileParams struct {
	FullName    *string
	Email       *string
	Age         *int
	Weight      *int
	CycleLength *int
	Bio         *string
}

type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
