package dto

import (
	"time"

	"testinesia-be/internal/entity"

	"github.com/google/uuid"
)

type CreateFormRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type UpdateFormRequest struct {
	Name                      string                    `json:"name" validate:"required,min=2,max=100"`
	HeaderTitle               string                    `json:"header_title"`
	HeaderMessage             string                    `json:"header_message"`
	Logo                      *string                   `json:"logo"`
	PrimaryColor              string                    `json:"primary_color"`
	BackgroundColor           string                    `json:"background_color"`
	CollectionSettings        entity.CollectionSettings `json:"collection_settings"`
	ThankYouTitle             string                    `json:"thank_you_title"`
	ThankYouMessage           string                    `json:"thank_you_message"`
	RemoveTestimonialBranding bool                      `json:"remove_testimonial_branding"`
	AutoApproveTestimonials   bool                      `json:"auto_approve_testimonials"`
	StopNewSubmissions        bool                      `json:"stop_new_submissions"`
	PauseMessage              *string                   `json:"pause_message"`
	AutomaticTags             []string                  `json:"automatic_tags"`
	Status                    string                    `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED PAUSED"`
}

type FormResponse struct {
	Id                        uuid.UUID                 `json:"id"`
	ProjectId                 uuid.UUID                 `json:"project_id"`
	Slug                      string                    `json:"slug"`
	Name                      string                    `json:"name"`
	HeaderTitle               string                    `json:"header_title"`
	HeaderMessage             string                    `json:"header_message"`
	Logo                      *string                   `json:"logo"`
	PrimaryColor              string                    `json:"primary_color"`
	BackgroundColor           string                    `json:"background_color"`
	CollectionSettings        entity.CollectionSettings `json:"collection_settings"`
	ThankYouTitle             string                    `json:"thank_you_title"`
	ThankYouMessage           string                    `json:"thank_you_message"`
	RemoveTestimonialBranding bool                      `json:"remove_testimonial_branding"`
	AutoApproveTestimonials   bool                      `json:"auto_approve_testimonials"`
	StopNewSubmissions        bool                      `json:"stop_new_submissions"`
	PauseMessage              *string                   `json:"pause_message"`
	AutomaticTags             []string                  `json:"automatic_tags"`
	Status                    string                    `json:"status"`
	CreatedAt                 time.Time                 `json:"created_at"`
}

// PublicFormResponse is what the public submission page receives. When
// submissions are stopped only the pause payload is populated.
type PublicFormResponse struct {
	Slug               string                    `json:"slug"`
	Name               string                    `json:"name"`
	HeaderTitle        string                    `json:"header_title"`
	HeaderMessage      string                    `json:"header_message"`
	Logo               *string                   `json:"logo"`
	PrimaryColor       string                    `json:"primary_color"`
	BackgroundColor    string                    `json:"background_color"`
	CollectionSettings entity.CollectionSettings `json:"collection_settings"`
	ThankYouTitle      string                    `json:"thank_you_title"`
	ThankYouMessage    string                    `json:"thank_you_message"`
	RemoveBranding     bool                      `json:"remove_branding"`
	Paused             bool                      `json:"paused"`
	PauseMessage       *string                   `json:"pause_message,omitempty"`
}
