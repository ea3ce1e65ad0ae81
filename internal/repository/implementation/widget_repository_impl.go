package implementation

import (
	"context"
	"errors"

	"testinesia-be/internal/entity"
	"testinesia-be/internal/mapper"
	"testinesia-be/internal/model"
	"testinesia-be/internal/repository/contract"
	"testinesia-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WidgetRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WidgetMapper
}

func NewWidgetRepository(db *gorm.DB) contract.WidgetRepository {
	return &WidgetRepositoryImpl{
		db:     db,
		mapper: mapper.NewWidgetMapper(),
	}
}

func (r *WidgetRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WidgetRepositoryImpl) Create(ctx context.Context, widget *entity.Widget) error {
	m := r.mapper.ToModel(widget)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*widget = *r.mapper.ToEntity(m)
	return nil
}

func (r *WidgetRepositoryImpl) Update(ctx context.Context, widget *entity.Widget) error {
	m := r.mapper.ToModel(widget)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*widget = *r.mapper.ToEntity(m)
	return nil
}

func (r *WidgetRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Widget{}).Error
}

func (r *WidgetRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Widget, error) {
	var m model.Widget
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *WidgetRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Widget, error) {
	var models []*model.Widget
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}
