package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Title       string                 `json:"title" validate:"required,min=2,max=100"`
	Description string                 `json:"description"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type UpdateProjectRequest struct {
	Title       string                 `json:"title" validate:"required,min=2,max=100"`
	Description string                 `json:"description"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type ProjectResponse struct {
	Id          uuid.UUID              `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Slug        string                 `json:"slug"`
	Metadata    map[string]interface{} `json:"metadata"`
	CreatedAt   time.Time              `json:"created_at"`
}

type SetCurrentProjectRequest struct {
	ProjectId string `json:"project_id" validate:"required,uuid"`
}
