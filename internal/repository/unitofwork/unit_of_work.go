package unitofwork

import (
	"context"

	"testinesia-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	AdminRepository() contract.AdminRepository
	SubscriptionRepository() contract.SubscriptionRepository
	OrderSubscriptionRepository() contract.OrderSubscriptionRepository
	CurrentSubscriptionRepository() contract.CurrentSubscriptionRepository
	ProjectRepository() contract.ProjectRepository
	FormRepository() contract.FormRepository
	TestimonialRepository() contract.TestimonialRepository
	ShowcaseRepository() contract.ShowcaseRepository
	WidgetRepository() contract.WidgetRepository
}
