package mapper

import (
	"testinesia-be/internal/entity"
	"testinesia-be/internal/model"
)

type AdminMapper struct{}

func NewAdminMapper() *AdminMapper {
	return &AdminMapper{}
}

func (m *AdminMapper) ToEntity(a *model.Admin) *entity.Admin {
	if a == nil {
		return nil
	}
	return &entity.Admin{
		Id:           a.Id,
		Name:         a.Name,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         entity.AdminRole(a.Role),
		AccessToken:  a.AccessToken,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (m *AdminMapper) ToModel(a *entity.Admin) *model.Admin {
	if a == nil {
		return nil
	}
	return &model.Admin{
		Id:           a.Id,
		Name:         a.Name,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         string(a.Role),
		AccessToken:  a.AccessToken,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (m *AdminMapper) ToEntities(admins []*model.Admin) []*entity.Admin {
	entities := make([]*entity.Admin, len(admins))
	for i, a := range admins {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
