package mapper

import (
	"github.com/google/uuid"

	"testinesia-be/internal/entity"
	"testinesia-be/internal/model"
)

type WidgetMapper struct{}

func NewWidgetMapper() *WidgetMapper {
	return &WidgetMapper{}
}

func (m *WidgetMapper) ToEntity(w *model.Widget) *entity.Widget {
	if w == nil {
		return nil
	}
	var ids []uuid.UUID
	fromJSONColumn(w.ShowTestimonials, &ids)
	return &entity.Widget{
		Id:               w.Id,
		ProjectId:        w.ProjectId,
		Name:             w.Name,
		Type:             w.Type,
		ShowTestimonials: ids,
		CreatedAt:        w.CreatedAt,
		UpdatedAt:        w.UpdatedAt,
	}
}

func (m *WidgetMapper) ToModel(w *entity.Widget) *model.Widget {
	if w == nil {
		return nil
	}
	return &model.Widget{
		Id:               w.Id,
		ProjectId:        w.ProjectId,
		Name:             w.Name,
		Type:             w.Type,
		ShowTestimonials: toJSONColumn(w.ShowTestimonials),
		CreatedAt:        w.CreatedAt,
		UpdatedAt:        w.UpdatedAt,
	}
}

func (m *WidgetMapper) ToEntities(widgets []*model.Widget) []*entity.Widget {
	entities := make([]*entity.Widget, len(widgets))
	for i, w := range widgets {
		entities[i] = m.ToEntity(w)
	}
	return entities
}
