package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectOwnedBy scopes workspace resources to one project
type ProjectOwnedBy struct {
	ProjectID uuid.UUID
}

func (s ProjectOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("project_id = ?", s.ProjectID)
}

// BySlug filters by public slug (forms, showcases)
type BySlug struct {
	Slug string
}

func (s BySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("slug = ?", s.Slug)
}

// ByFormId filters testimonials by originating form
type ByFormId struct {
	FormID uuid.UUID
}

func (s ByFormId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("form_id = ?", s.FormID)
}

// ByStatus filters by a status column value
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByTestimonialType filters testimonials by text/video/import
type ByTestimonialType struct {
	Type string
}

func (s ByTestimonialType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}
