package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Email             string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone             string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	PasswordHash      string    `gorm:"type:varchar(255);not null"`
	VerificationToken *string   `gorm:"type:varchar(255);index"`
	IsVerified        bool      `gorm:"default:false"`
	AccessToken       *string   `gorm:"type:text"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
