package entity

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Title       string
	Description string
	Slug        string
	Metadata    map[string]interface{}
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CurrentProject points at the project a user is working in (one per user).
type CurrentProject struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	ProjectId uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
