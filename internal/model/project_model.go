package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Project struct {
	Id          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID         `gorm:"type:uuid;not null;index"`
	Title       string            `gorm:"type:varchar(255);not null"`
	Description string            `gorm:"type:text"`
	Slug        string            `gorm:"type:varchar(255);index"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt   time.Time         `gorm:"autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime"`
}

func (Project) TableName() string {
	return "projects"
}

type CurrentProject struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	ProjectId uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (CurrentProject) TableName() string {
	return "current_projects"
}
