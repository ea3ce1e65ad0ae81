package entity

import (
	"time"

	"github.com/google/uuid"
)

type Widget struct {
	Id        uuid.UUID
	ProjectId uuid.UUID
	Name      string
	Type      string // carousel, grid, wall-of-love, ...
	// Ordered testimonial ids rendered by the embed.
	ShowTestimonials []uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
