package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitTestimonialRequest struct {
	AuthorName    string  `json:"author_name" validate:"required,min=2,max=100"`
	AuthorEmail   *string `json:"author_email" validate:"omitempty,email"`
	AuthorTitle   *string `json:"author_title"`
	AuthorCompany *string `json:"author_company"`
	AuthorPhoto   *string `json:"author_photo"`
	Text          *string `json:"text"`
	Rating        int     `json:"rating" validate:"required,min=1,max=5"`
	Type          string  `json:"type" validate:"required,oneof=text video import"`
	Source        *string `json:"source" validate:"omitempty,oneof=instagram twitter facebook linkedin tiktok youtube other"`
	MediaURL      *string `json:"media_url"`
}

type ImportTestimonialRequest struct {
	SubmitTestimonialRequest
	ProjectId string `json:"project_id" validate:"required,uuid"`
}

type UpdateTestimonialStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved unapproved"`
}

type TestimonialResponse struct {
	Id            uuid.UUID  `json:"id"`
	ProjectId     uuid.UUID  `json:"project_id"`
	FormId        *uuid.UUID `json:"form_id"`
	AuthorName    string     `json:"author_name"`
	AuthorEmail   *string    `json:"author_email"`
	AuthorTitle   *string    `json:"author_title"`
	AuthorCompany *string    `json:"author_company"`
	AuthorPhoto   *string    `json:"author_photo"`
	Text          *string    `json:"text"`
	Rating        int        `json:"rating"`
	Type          string     `json:"type"`
	Source        *string    `json:"source"`
	MediaURL      *string    `json:"media_url"`
	Tags          []string   `json:"tags"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}
