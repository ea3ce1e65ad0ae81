package mapper

import (
	"testinesia-be/internal/entity"
	"testinesia-be/internal/model"
)

type FormMapper struct{}

func NewFormMapper() *FormMapper {
	return &FormMapper{}
}

func (m *FormMapper) ToEntity(f *model.Form) *entity.Form {
	if f == nil {
		return nil
	}
	settings := entity.CollectionSettings{}
	fromJSONColumn(f.CollectionSettings, &settings)
	var tags []string
	fromJSONColumn(f.AutomaticTags, &tags)
	return &entity.Form{
		Id:                        f.Id,
		ProjectId:                 f.ProjectId,
		Slug:                      f.Slug,
		Name:                      f.Name,
		HeaderTitle:               f.HeaderTitle,
		HeaderMessage:             f.HeaderMessage,
		Logo:                      f.Logo,
		PrimaryColor:              f.PrimaryColor,
		BackgroundColor:           f.BackgroundColor,
		CollectionSettings:        settings,
		ThankYouTitle:             f.ThankYouTitle,
		ThankYouMessage:           f.ThankYouMessage,
		RemoveTestimonialBranding: f.RemoveTestimonialBranding,
		AutoApproveTestimonials:   f.AutoApproveTestimonials,
		StopNewSubmissions:        f.StopNewSubmissions,
		PauseMessage:              f.PauseMessage,
		AutomaticTags:             tags,
		Status:                    entity.FormStatus(f.Status),
		CreatedAt:                 f.CreatedAt,
		UpdatedAt:                 f.UpdatedAt,
	}
}

func (m *FormMapper) ToModel(f *entity.Form) *model.Form {
	if f == nil {
		return nil
	}
	return &model.Form{
		Id:                        f.Id,
		ProjectId:                 f.ProjectId,
		Slug:                      f.Slug,
		Name:                      f.Name,
		HeaderTitle:               f.HeaderTitle,
		HeaderMessage:             f.HeaderMessage,
		Logo:                      f.Logo,
		PrimaryColor:              f.PrimaryColor,
		BackgroundColor:           f.BackgroundColor,
		CollectionSettings:        toJSONColumn(f.CollectionSettings),
		ThankYouTitle:             f.ThankYouTitle,
		ThankYouMessage:           f.ThankYouMessage,
		RemoveTestimonialBranding: f.RemoveTestimonialBranding,
		AutoApproveTestimonials:   f.AutoApproveTestimonials,
		StopNewSubmissions:        f.StopNewSubmissions,
		PauseMessage:              f.PauseMessage,
		AutomaticTags:             toJSONColumn(f.AutomaticTags),
		Status:                    string(f.Status),
		CreatedAt:                 f.CreatedAt,
		UpdatedAt:                 f.UpdatedAt,
	}
}

func (m *FormMapper) ToEntities(forms []*model.Form) []*entity.Form {
	entities := make([]*entity.Form, len(forms))
	for i, f := range forms {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
