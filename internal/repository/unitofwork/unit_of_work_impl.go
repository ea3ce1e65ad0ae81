package unitofwork

import (
	"context"
	"fmt"

	"testinesia-be/internal/repository/contract"
	"testinesia-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AdminRepository() contract.AdminRepository {
	return implementation.NewAdminRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SubscriptionRepository() contract.SubscriptionRepository {
	return implementation.NewSubscriptionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) OrderSubscriptionRepository() contract.OrderSubscriptionRepository {
	return implementation.NewOrderSubscriptionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CurrentSubscriptionRepository() contract.CurrentSubscriptionRepository {
	return implementation.NewCurrentSubscriptionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ProjectRepository() contract.ProjectRepository {
	return implementation.NewProjectRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FormRepository() contract.FormRepository {
	return implementation.NewFormRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TestimonialRepository() contract.TestimonialRepository {
	return implementation.NewTestimonialRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ShowcaseRepository() contract.ShowcaseRepository {
	return implementation.NewShowcaseRepository(u.getDB())
}

func (u *UnitOfWorkImpl) WidgetRepository() contract.WidgetRepository {
	return implementation.NewWidgetRepository(u.getDB())
}
