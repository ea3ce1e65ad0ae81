package service

import (
	"context"

	"testinesia-be/internal/dto"
	"testinesia-be/internal/entity"
	"testinesia-be/internal/pkg/logger"
	"testinesia-be/internal/pkg/serverutils"
	"testinesia-be/internal/repository/specification"
	"testinesia-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.SignInResponse, error)
	SignOut(ctx context.Context, userId uuid.UUID) error
	AdminSignIn(ctx context.Context, req *dto.SignInRequest) (*dto.AdminSignInResponse, error)
	AdminSignOut(ctx context.Context, adminId uuid.UUID) error
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	jwtSecret      string
	jwtAdminSecret string
	logger         logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, jwtSecret, jwtAdminSecret string, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		jwtSecret:      jwtSecret,
		jwtAdminSecret: jwtAdminSecret,
		logger:         log,
	}
}

func (s *authService) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.SignInResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewUnauthorized("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.NewUnauthorized("invalid email or password")
	}

	if !user.IsVerified {
		return nil, serverutils.NewForbidden("email is not verified yet")
	}

	planType := string(entity.SubscriptionTypeFree)
	if current, cerr := uow.CurrentSubscriptionRepository().FindOne(ctx, specification.UserOwnedBy{UserID: user.Id}); cerr == nil && current != nil {
		planType = string(current.Type)
	}

	token, err := serverutils.GenerateUserToken(s.jwtSecret, user.Id, user.Email, user.Name, planType)
	if err != nil {
		return nil, err
	}

	// A fresh sign-in invalidates any previous session token.
	if err := uow.UserRepository().UpdateAccessToken(ctx, user.Id, &token); err != nil {
		return nil, err
	}

	s.logger.Info("auth", "user signed in", map[string]interface{}{"user_id": user.Id})

	return &dto.SignInResponse{
		Id:          user.Id,
		Name:        user.Name,
		Email:       user.Email,
		AccessToken: token,
	}, nil
}

func (s *authService) SignOut(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().UpdateAccessToken(ctx, userId, nil)
}

func (s *authService) AdminSignIn(ctx context.Context, req *dto.SignInRequest) (*dto.AdminSignInResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, serverutils.NewUnauthorized("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.NewUnauthorized("invalid email or password")
	}

	token, err := serverutils.GenerateAdminToken(s.jwtAdminSecret, admin.Id, admin.Email, string(admin.Role))
	if err != nil {
		return nil, err
	}

	if err := uow.AdminRepository().UpdateAccessToken(ctx, admin.Id, &token); err != nil {
		return nil, err
	}

	s.logger.Info("auth", "admin signed in", map[string]interface{}{"admin_id": admin.Id, "role": admin.Role})

	return &dto.AdminSignInResponse{
		Id:          admin.Id,
		Name:        admin.Name,
		Email:       admin.Email,
		Role:        string(admin.Role),
		AccessToken: token,
	}, nil
}

func (s *authService) AdminSignOut(ctx context.Context, adminId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.AdminRepository().UpdateAccessToken(ctx, adminId, nil)
}
