package entity

import (
	"time"

	"github.com/google/uuid"
)

type ShowcaseStatus string

const (
	ShowcaseStatusDraft    ShowcaseStatus = "draft"
	ShowcaseStatusActive   ShowcaseStatus = "active"
	ShowcaseStatusInactive ShowcaseStatus = "not-active"
)

type Showcase struct {
	Id           uuid.UUID
	ProjectId    uuid.UUID
	Title        string
	Slug         string // unique, [a-z0-9-]
	Logo         *string
	PrimaryColor string
	Content      map[string]interface{}
	HeroContent  map[string]interface{}
	Navigation   map[string]interface{}
	Status       ShowcaseStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
