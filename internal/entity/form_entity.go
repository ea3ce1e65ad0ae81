package entity

import (
	"time"

	"github.com/google/uuid"
)

type FormStatus string

const (
	FormStatusDraft     FormStatus = "DRAFT"
	FormStatusPublished FormStatus = "PUBLISHED"
	FormStatusPaused    FormStatus = "PAUSED"
)

// CollectionField controls one input on the public submission form.
type CollectionField struct {
	Enabled  bool `json:"enabled"`
	Required bool `json:"required"`
}

// CollectionSettings keys: name, email, title, company, social_link, photo.
type CollectionSettings map[string]CollectionField

type Form struct {
	Id                        uuid.UUID
	ProjectId                 uuid.UUID
	Slug                      string // random 8-char public handle
	Name                      string
	HeaderTitle               string
	HeaderMessage             string
	Logo                      *string
	PrimaryColor              string
	BackgroundColor           string
	CollectionSettings        CollectionSettings
	ThankYouTitle             string
	ThankYouMessage           string
	RemoveTestimonialBranding bool
	AutoApproveTestimonials   bool
	StopNewSubmissions        bool
	PauseMessage              *string
	AutomaticTags             []string
	Status                    FormStatus
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}
