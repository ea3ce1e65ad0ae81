package mapper

import (
	"testinesia-be/internal/entity"
	"testinesia-be/internal/model"
)

type ShowcaseMapper struct{}

func NewShowcaseMapper() *ShowcaseMapper {
	return &ShowcaseMapper{}
}

func (m *ShowcaseMapper) ToEntity(s *model.Showcase) *entity.Showcase {
	if s == nil {
		return nil
	}
	return &entity.Showcase{
		Id:           s.Id,
		ProjectId:    s.ProjectId,
		Title:        s.Title,
		Slug:         s.Slug,
		Logo:         s.Logo,
		PrimaryColor: s.PrimaryColor,
		Content:      s.Content,
		HeroContent:  s.HeroContent,
		Navigation:   s.Navigation,
		Status:       entity.ShowcaseStatus(s.Status),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (m *ShowcaseMapper) ToModel(s *entity.Showcase) *model.Showcase {
	if s == nil {
		return nil
	}
	return &model.Showcase{
		Id:           s.Id,
		ProjectId:    s.ProjectId,
		Title:        s.Title,
		Slug:         s.Slug,
		Logo:         s.Logo,
		PrimaryColor: s.PrimaryColor,
		Content:      s.Content,
		HeroContent:  s.HeroContent,
		Navigation:   s.Navigation,
		Status:       string(s.Status),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (m *ShowcaseMapper) ToEntities(showcases []*model.Showcase) []*entity.Showcase {
	entities := make([]*entity.Showcase, len(showcases))
	for i, s := range showcases {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
