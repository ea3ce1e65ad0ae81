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

type FormRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FormMapper
}

func NewFormRepository(db *gorm.DB) contract.FormRepository {
	return &FormRepositoryImpl{
		db:     db,
		mapper: mapper.NewFormMapper(),
	}
}

func (r *FormRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FormRepositoryImpl) Create(ctx context.Context, form *entity.Form) error {
	m := r.mapper.ToModel(form)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*form = *r.mapper.ToEntity(m)
	return nil
}

func (r *FormRepositoryImpl) Update(ctx context.Context, form *entity.Form) error {
	m := r.mapper.ToModel(form)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*form = *r.mapper.ToEntity(m)
	return nil
}

func (r *FormRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Form{}).Error
}

func (r *FormRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Form, error) {
	var m model.Form
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *FormRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Form, error) {
	var models []*model.Form
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *FormRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Form{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *FormRepositoryImpl) DetachTestimonials(ctx context.Context, formId uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Testimonial{}).
		Where("form_id = ?", formId).
		Update("form_id", nil).Error
}
