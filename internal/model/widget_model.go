package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Widget struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId        uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name             string         `gorm:"type:varchar(255);not null"`
	Type             string         `gorm:"type:varchar(50);not null"`
	ShowTestimonials datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
}

func (Widget) TableName() string {
	return "widgets"
}
