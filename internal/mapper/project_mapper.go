package mapper

import (
	"testinesia-be/internal/entity"
	"testinesia-be/internal/model"
)

type ProjectMapper struct{}

func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

func (m *ProjectMapper) ToEntity(p *model.Project) *entity.Project {
	if p == nil {
		return nil
	}
	return &entity.Project{
		Id:          p.Id,
		UserId:      p.UserId,
		Title:       p.Title,
		Description: p.Description,
		Slug:        p.Slug,
		Metadata:    p.Metadata,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *ProjectMapper) ToModel(p *entity.Project) *model.Project {
	if p == nil {
		return nil
	}
	return &model.Project{
		Id:          p.Id,
		UserId:      p.UserId,
		Title:       p.Title,
		Description: p.Description,
		Slug:        p.Slug,
		Metadata:    p.Metadata,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *ProjectMapper) ToEntities(projects []*model.Project) []*entity.Project {
	entities := make([]*entity.Project, len(projects))
	for i, p := range projects {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *ProjectMapper) CurrentProjectToEntity(c *model.CurrentProject) *entity.CurrentProject {
	if c == nil {
		return nil
	}
	return &entity.CurrentProject{
		Id:        c.Id,
		UserId:    c.UserId,
		ProjectId: c.ProjectId,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *ProjectMapper) CurrentProjectToModel(c *entity.CurrentProject) *model.CurrentProject {
	if c == nil {
		return nil
	}
	return &model.CurrentProject{
		Id:        c.Id,
		UserId:    c.UserId,
		ProjectId: c.ProjectId,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
