package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Form struct {
	Id                        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId                 uuid.UUID      `gorm:"type:uuid;not null;index"`
	Slug                      string         `gorm:"type:varchar(16);uniqueIndex;not null"`
	Name                      string         `gorm:"type:varchar(255);not null"`
	HeaderTitle               string         `gorm:"type:varchar(255)"`
	HeaderMessage             string         `gorm:"type:text"`
	Logo                      *string        `gorm:"type:text"`
	PrimaryColor              string         `gorm:"type:varchar(20)"`
	BackgroundColor           string         `gorm:"type:varchar(20)"`
	CollectionSettings        datatypes.JSON `gorm:"type:jsonb"`
	ThankYouTitle             string         `gorm:"type:varchar(255)"`
	ThankYouMessage           string         `gorm:"type:text"`
	RemoveTestimonialBranding bool           `gorm:"default:false"`
	AutoApproveTestimonials   bool           `gorm:"default:false"`
	StopNewSubmissions        bool           `gorm:"default:false"`
	PauseMessage              *string        `gorm:"type:text"`
	AutomaticTags             datatypes.JSON `gorm:"type:jsonb"`
	Status                    string         `gorm:"type:form_status;not null;default:'DRAFT'"`
	CreatedAt                 time.Time      `gorm:"autoCreateTime"`
	UpdatedAt                 time.Time      `gorm:"autoUpdateTime"`
}

func (Form) TableName() string {
	return "forms"
}
