package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateWidgetRequest struct {
	Name             string   `json:"name" validate:"required,min=2,max=100"`
	Type             string   `json:"type" validate:"required"`
	ShowTestimonials []string `json:"show_testimonials" validate:"dive,uuid"`
}

type UpdateWidgetRequest struct {
	Name             string   `json:"name" validate:"required,min=2,max=100"`
	Type             string   `json:"type" validate:"required"`
	ShowTestimonials []string `json:"show_testimonials" validate:"dive,uuid"`
}

type WidgetResponse struct {
	Id               uuid.UUID   `json:"id"`
	ProjectId        uuid.UUID   `json:"project_id"`
	Name             string      `json:"name"`
	Type             string      `json:"type"`
	ShowTestimonials []uuid.UUID `json:"show_testimonials"`
	CreatedAt        time.Time   `json:"created_at"`
}

// PublicWidgetResponse hydrates the testimonial ids for the embed script.
type PublicWidgetResponse struct {
	Id           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	Type         string                `json:"type"`
	Testimonials []TestimonialResponse `json:"testimonials"`
}
