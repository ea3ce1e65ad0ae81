package mapper

import (
	"testinesia-be/internal/entity"
	"testinesia-be/internal/model"
)

type TestimonialMapper struct{}

func NewTestimonialMapper() *TestimonialMapper {
	return &TestimonialMapper{}
}

func (m *TestimonialMapper) ToEntity(t *model.Testimonial) *entity.Testimonial {
	if t == nil {
		return nil
	}
	var tags []string
	fromJSONColumn(t.Tags, &tags)
	var source *entity.TestimonialSource
	if t.Source != nil {
		s := entity.TestimonialSource(*t.Source)
		source = &s
	}
	return &entity.Testimonial{
		Id:            t.Id,
		ProjectId:     t.ProjectId,
		FormId:        t.FormId,
		AuthorName:    t.AuthorName,
		AuthorEmail:   t.AuthorEmail,
		AuthorTitle:   t.AuthorTitle,
		AuthorCompany: t.AuthorCompany,
		AuthorPhoto:   t.AuthorPhoto,
		Text:          t.Text,
		Rating:        t.Rating,
		Type:          entity.TestimonialType(t.Type),
		Source:        source,
		MediaURL:      t.MediaURL,
		Tags:          tags,
		Status:        entity.TestimonialStatus(t.Status),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func (m *TestimonialMapper) ToModel(t *entity.Testimonial) *model.Testimonial {
	if t == nil {
		return nil
	}
	var source *string
	if t.Source != nil {
		s := string(*t.Source)
		source = &s
	}
	return &model.Testimonial{
		Id:            t.Id,
		ProjectId:     t.ProjectId,
		FormId:        t.FormId,
		AuthorName:    t.AuthorName,
		AuthorEmail:   t.AuthorEmail,
		AuthorTitle:   t.AuthorTitle,
		AuthorCompany: t.AuthorCompany,
		AuthorPhoto:   t.AuthorPhoto,
		Text:          t.Text,
		Rating:        t.Rating,
		Type:          string(t.Type),
		Source:        source,
		MediaURL:      t.MediaURL,
		Tags:          toJSONColumn(t.Tags),
		Status:        string(t.Status),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func (m *TestimonialMapper) ToEntities(testimonials []*model.Testimonial) []*entity.Testimonial {
	entities := make([]*entity.Testimonial, len(testimonials))
	for i, t := range testimonials {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
