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

type OrderSubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrderSubscriptionMapper
}

func NewOrderSubscriptionRepository(db *gorm.DB) contract.OrderSubscriptionRepository {
	return &OrderSubscriptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrderSubscriptionMapper(),
	}
}

func (r *OrderSubscriptionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *OrderSubscriptionRepositoryImpl) Create(ctx context.Context, order *entity.OrderSubscription) error {
	m := r.mapper.ToModel(order)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*order = *r.mapper.ToEntity(m)
	return nil
}

func (r *OrderSubscriptionRepositoryImpl) Update(ctx context.Context, order *entity.OrderSubscription) error {
	m := r.mapper.ToModel(order)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*order = *r.mapper.ToEntity(m)
	return nil
}

func (r *OrderSubscriptionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.OrderSubscription{}).Error
}

func (r *OrderSubscriptionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.OrderSubscription, error) {
	var m model.OrderSubscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *OrderSubscriptionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.OrderSubscription, error) {
	var models []*model.OrderSubscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *OrderSubscriptionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.OrderSubscription{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *OrderSubscriptionRepositoryImpl) FindTransactions(ctx context.Context, status string, limit, offset int) ([]*entity.OrderTransaction, int64, error) {
	base := r.db.WithContext(ctx).Table("order_subscriptions").
		Joins("JOIN users ON users.id = order_subscriptions.user_id").
		Joins("JOIN subscriptions ON subscriptions.id = order_subscriptions.subscription_id")

	if status != "" {
		base = base.Where("order_subscriptions.transaction_status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []*entity.OrderTransaction
	err := base.
		Select(`order_subscriptions.id, order_subscriptions.user_id,
			users.name AS user_name, users.email AS user_email,
			subscriptions.name AS plan_name,
			order_subscriptions.gross_amount, order_subscriptions.transaction_status,
			order_subscriptions.order_payment, order_subscriptions.created_at`).
		Order("order_subscriptions.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&results).Error
	if err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

func (r *OrderSubscriptionRepositoryImpl) SumSuccessfulAmount(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.OrderSubscription{}).
		Where("transaction_status = ?", string(entity.TransactionStatusSuccess)).
		Select("COALESCE(SUM(gross_amount), 0)").
		Scan(&total).Error
	return total, err
}
