package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateShowcaseRequest struct {
	Title string `json:"title" validate:"required,min=2,max=100"`
	Slug  string `json:"slug" validate:"required,min=2,max=100"`
}

type UpdateShowcaseRequest struct {
	Title        string                 `json:"title" validate:"required,min=2,max=100"`
	Logo         *string                `json:"logo"`
	PrimaryColor string                 `json:"primary_color"`
	Content      map[string]interface{} `json:"content"`
	HeroContent  map[string]interface{} `json:"hero_content"`
	Navigation   map[string]interface{} `json:"navigation"`
	Status       string                 `json:"status" validate:"omitempty,oneof=draft active not-active"`
}

type ShowcaseResponse struct {
	Id           uuid.UUID              `json:"id"`
	ProjectId    uuid.UUID              `json:"project_id"`
	Title        string                 `json:"title"`
	Slug         string                 `json:"slug"`
	Logo         *string                `json:"logo"`
	PrimaryColor string                 `json:"primary_color"`
	Content      map[string]interface{} `json:"content"`
	HeroContent  map[string]interface{} `json:"hero_content"`
	Navigation   map[string]interface{} `json:"navigation"`
	Status       string                 `json:"status"`
	CreatedAt    time.Time              `json:"created_at"`
}

// PublicShowcaseResponse is the cached public page payload.
type PublicShowcaseResponse struct {
	Title        string                 `json:"title"`
	Slug         string                 `json:"slug"`
	Logo         *string                `json:"logo"`
	PrimaryColor string                 `json:"primary_color"`
	Content      map[string]interface{} `json:"content"`
	HeroContent  map[string]interface{} `json:"hero_content"`
	Navigation   map[string]interface{} `json:"navigation"`
	Testimonials []TestimonialResponse  `json:"testimonials"`
}
