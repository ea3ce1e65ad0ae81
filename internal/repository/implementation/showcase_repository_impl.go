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

type ShowcaseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ShowcaseMapper
}

func NewShowcaseRepository(db *gorm.DB) contract.ShowcaseRepository {
	return &ShowcaseRepositoryImpl{
		db:     db,
		mapper: mapper.NewShowcaseMapper(),
	}
}

func (r *ShowcaseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ShowcaseRepositoryImpl) Create(ctx context.Context, showcase *entity.Showcase) error {
	m := r.mapper.ToModel(showcase)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*showcase = *r.mapper.ToEntity(m)
	return nil
}

func (r *ShowcaseRepositoryImpl) Update(ctx context.Context, showcase *entity.Showcase) error {
	m := r.mapper.ToModel(showcase)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*showcase = *r.mapper.ToEntity(m)
	return nil
}

func (r *ShowcaseRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Showcase{}).Error
}

func (r *ShowcaseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Showcase, error) {
	var m model.Showcase
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *ShowcaseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Showcase, error) {
	var models []*model.Showcase
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *ShowcaseRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Showcase{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
