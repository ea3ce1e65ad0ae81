package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Testimonial struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	FormId        *uuid.UUID     `gorm:"type:uuid;index"` // set null when the form goes away
	AuthorName    string         `gorm:"type:varchar(255);not null"`
	AuthorEmail   *string        `gorm:"type:varchar(255)"`
	AuthorTitle   *string        `gorm:"type:varchar(255)"`
	AuthorCompany *string        `gorm:"type:varchar(255)"`
	AuthorPhoto   *string        `gorm:"type:text"`
	Text          *string        `gorm:"type:text"`
	Rating        int            `gorm:"not null;default:5"`
	Type          string         `gorm:"type:testimonial_type;not null;default:'text'"`
	Source        *string        `gorm:"type:testimonial_source"`
	MediaURL      *string        `gorm:"type:text"`
	Tags          datatypes.JSON `gorm:"type:jsonb"`
	Status        string         `gorm:"type:testimonial_status;not null;default:'pending'"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}
