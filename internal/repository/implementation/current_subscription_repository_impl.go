package implementation

import (
	"context"
	"errors"

	"testinesia-be/internal/entity"
	"testinesia-be/internal/mapper"
	"testinesia-be/internal/model"
	"testinesia-be/internal/repository/contract"
	"testinesia-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CurrentSubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CurrentSubscriptionMapper
}

func NewCurrentSubscriptionRepository(db *gorm.DB) contract.CurrentSubscriptionRepository {
	return &CurrentSubscriptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewCurrentSubscriptionMapper(),
	}
}

func (r *CurrentSubscriptionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Upsert keys on user_id; the unique index keeps the one-row-per-user
// invariant even under concurrent registration.
func (r *CurrentSubscriptionRepositoryImpl) Upsert(ctx context.Context, sub *entity.CurrentSubscription) error {
	m := r.mapper.ToModel(sub)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"subscription_id", "order_subscription_id", "type",
			"feature_usage", "feature_limit",
			"start_date", "end_date", "next_billing_date",
			"is_active", "updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*sub = *r.mapper.ToEntity(m)
	return nil
}

func (r *CurrentSubscriptionRepositoryImpl) Update(ctx context.Context, sub *entity.CurrentSubscription) error {
	m := r.mapper.ToModel(sub)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*sub = *r.mapper.ToEntity(m)
	return nil
}

func (r *CurrentSubscriptionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CurrentSubscription, error) {
	var m model.CurrentSubscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *CurrentSubscriptionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CurrentSubscription, error) {
	var models []*model.CurrentSubscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *CurrentSubscriptionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CurrentSubscription{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
