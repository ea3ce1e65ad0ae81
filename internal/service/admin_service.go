package service

import (
	"context"
	"time"

	"testinesia-be/internal/dto"
	"testinesia-be/internal/entity"
	"testinesia-be/internal/pkg/logger"
	"testinesia-be/internal/pkg/serverutils"
	"testinesia-be/internal/repository/specification"
	"testinesia-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAdminService interface {
	Create(ctx context.Context, req *dto.CreateAdminRequest) (*dto.AdminResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAdminRequest) (*dto.AdminResponse, error)
	Delete(ctx context.Context, actorId, id uuid.UUID) error
	FindOne(ctx context.Context, id uuid.UUID) (*dto.AdminResponse, error)
	FindAll(ctx context.Context) ([]*dto.AdminResponse, error)
	GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	GetLogs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error)
	GetLogById(ctx context.Context, id string) (*logger.LogEntry, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func toAdminResponse(admin *entity.Admin) *dto.AdminResponse {
	return &dto.AdminResponse{
		Id:        admin.Id,
		Name:      admin.Name,
		Email:     admin.Email,
		Role:      string(admin.Role),
		CreatedAt: admin.CreatedAt,
	}
}

func (s *adminService) Create(ctx context.Context, req *dto.CreateAdminRequest) (*dto.AdminResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.AdminRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewConflict("email is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	admin := &entity.Admin{
		Id:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         entity.AdminRole(req.Role),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uow.AdminRepository().Create(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info("admin", "admin created", map[string]interface{}{"admin_id": admin.Id, "role": admin.Role})

	return toAdminResponse(admin), nil
}

func (s *adminService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAdminRequest) (*dto.AdminResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, serverutils.NewNotFound("admin not found")
	}

	if req.Email != admin.Email {
		other, err := uow.AdminRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, serverutils.NewConflict("email is already registered")
		}
	}

	admin.Name = req.Name
	admin.Email = req.Email
	admin.Role = entity.AdminRole(req.Role)
	admin.UpdatedAt = time.Now()

	if err := uow.AdminRepository().Update(ctx, admin); err != nil {
		return nil, err
	}

	return toAdminResponse(admin), nil
}

func (s *adminService) Delete(ctx context.Context, actorId, id uuid.UUID) error {
	if actorId == id {
		return serverutils.NewBadRequest("an admin cannot delete their own account")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if admin == nil {
		return serverutils.NewNotFound("admin not found")
	}

	if err := uow.AdminRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Warn("admin", "admin deleted", map[string]interface{}{"admin_id": id, "actor_id": actorId})
	return nil
}

func (s *adminService) FindOne(ctx context.Context, id uuid.UUID) (*dto.AdminResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, serverutils.NewNotFound("admin not found")
	}

	return toAdminResponse(admin), nil
}

func (s *adminService) FindAll(ctx context.Context) ([]*dto.AdminResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admins, err := uow.AdminRepository().FindAll(ctx, specification.OrderBy{Field: "created_at"})
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.AdminResponse, 0, len(admins))
	for _, admin := range admins {
		responses = append(responses, toAdminResponse(admin))
	}
	return responses, nil
}

func (s *adminService) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	revenue, err := uow.OrderSubscriptionRepository().SumSuccessfulAmount(ctx)
	if err != nil {
		return nil, err
	}

	premium, err := uow.CurrentSubscriptionRepository().Count(ctx,
		specification.ActiveOnly{},
		specification.BySubscriptionType{Type: string(entity.SubscriptionTypePremium)},
	)
	if err != nil {
		return nil, err
	}

	users, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := uow.OrderSubscriptionRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalRevenue:       revenue,
		PremiumSubscribers: premium,
		TotalUsers:         users,
		TotalOrders:        orders,
	}, nil
}

func (s *adminService) GetLogs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error) {
	if limit < 1 || limit > 1000 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.logger.GetLogs(level, limit, offset)
}

func (s *adminService) GetLogById(ctx context.Context, id string) (*logger.LogEntry, error) {
	entry, err := s.logger.GetLogById(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, serverutils.NewNotFound("log entry not found")
	}
	return entry, nil
}
