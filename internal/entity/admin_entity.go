package entity

import (
	"time"

	"github.com/google/uuid"
)

type AdminRole string

const (
	AdminRoleSuperadmin AdminRole = "superadmin"
	AdminRoleAdmin      AdminRole = "admin"
	AdminRoleInputer    AdminRole = "inputer"
)

type Admin struct {
	Id           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         AdminRole
	AccessToken  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
