package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Showcase struct {
	Id           uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId    uuid.UUID         `gorm:"type:uuid;not null;index"`
	Title        string            `gorm:"type:varchar(255);not null"`
	Slug         string            `gorm:"type:varchar(255);uniqueIndex;not null"`
	Logo         *string           `gorm:"type:text"`
	PrimaryColor string            `gorm:"type:varchar(20)"`
	Content      datatypes.JSONMap `gorm:"type:jsonb"`
	HeroContent  datatypes.JSONMap `gorm:"type:jsonb"`
	Navigation   datatypes.JSONMap `gorm:"type:jsonb"`
	Status       string            `gorm:"type:showcase_status;not null;default:'draft'"`
	CreatedAt    time.Time         `gorm:"autoCreateTime"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime"`
}

func (Showcase) TableName() string {
	return "showcases"
}
