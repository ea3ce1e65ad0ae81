package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id                uuid.UUID
	Name              string
	Email             string
	Phone             string // normalized to +62 form
	PasswordHash      string
	VerificationToken *string
	IsVerified        bool
	// Single active session: the issued JWT is stored and matched on every
	// authenticated request; overwriting it invalidates the old session.
	AccessToken *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
