package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"testinesia-be/internal/dto"
	"testinesia-be/internal/entity"
	"testinesia-be/internal/pkg/logger"
	"testinesia-be/internal/pkg/mailer"
	"testinesia-be/internal/pkg/serverutils"
	"testinesia-be/internal/repository/specification"
	"testinesia-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
	UpdatePassword(ctx context.Context, userId uuid.UUID, req *dto.UpdatePasswordRequest) error
}

type userService struct {
	uowFactory    unitofwork.RepositoryFactory
	currentSubSvc ICurrentSubscriptionService
	emailSvc      mailer.IEmailService
	logger        logger.ILogger
}

func NewUserService(
	uowFactory unitofwork.RepositoryFactory,
	currentSubSvc ICurrentSubscriptionService,
	emailSvc mailer.IEmailService,
	log logger.ILogger,
) IUserService {
	return &userService{
		uowFactory:    uowFactory,
		currentSubSvc: currentSubSvc,
		emailSvc:      emailSvc,
		logger:        log,
	}
}

func generateVerificationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (s *userService) toProfileResponse(user *entity.User) *dto.UserProfileResponse {
	return &dto.UserProfileResponse{
		Id:         user.Id,
		Name:       user.Name,
		Email:      user.Email,
		Phone:      user.Phone,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}
}

func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	phone, err := serverutils.ValidateIndonesianPhone(req.Phone)
	if err != nil {
		return nil, serverutils.NewBadRequest("phone must be a valid Indonesian mobile number")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewConflict("email is already registered")
	}

	existing, err = uow.UserRepository().FindOne(ctx, specification.ByPhone{Phone: phone})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewConflict("phone number is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	token, err := generateVerificationToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		Id:                uuid.New(),
		Name:              req.Name,
		Email:             req.Email,
		Phone:             phone,
		PasswordHash:      string(hashed),
		VerificationToken: &token,
		IsVerified:        false,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	// The account only exists if the verification mail went out.
	if err := s.emailSvc.SendVerificationEmail(user.Email, user.Name, token); err != nil {
		s.logger.Error("user", "verification email failed, registration rolled back", map[string]interface{}{
			"email": user.Email,
			"error": err.Error(),
		})
		return nil, serverutils.NewInternal("could not send verification email, please try again")
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if err := s.currentSubSvc.SetDefault(ctx, user.Id); err != nil {
		s.logger.Error("user", "failed to attach free plan", map[string]interface{}{
			"user_id": user.Id,
			"error":   err.Error(),
		})
	}

	s.logger.Info("user", "user registered", map[string]interface{}{"user_id": user.Id, "email": user.Email})

	return &dto.RegisterResponse{
		Id:    user.Id,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}, nil
}

func (s *userService) VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByVerificationToken{Token: req.Token})
	if err != nil {
		return err
	}
	if user == nil {
		return serverutils.NewNotFound("invalid or expired verification token")
	}
	if user.IsVerified {
		return nil
	}

	if err := uow.UserRepository().MarkVerified(ctx, user.Id); err != nil {
		return err
	}

	s.logger.Info("user", "email verified", map[string]interface{}{"user_id": user.Id})
	return nil
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewNotFound("user not found")
	}

	return s.toProfileResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	phone, err := serverutils.ValidateIndonesianPhone(req.Phone)
	if err != nil {
		return nil, serverutils.NewBadRequest("phone must be a valid Indonesian mobile number")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewNotFound("user not found")
	}

	if req.Email != user.Email {
		other, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, serverutils.NewConflict("email is already registered")
		}
	}
	if phone != user.Phone {
		other, err := uow.UserRepository().FindOne(ctx, specification.ByPhone{Phone: phone})
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, serverutils.NewConflict("phone number is already registered")
		}
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Phone = phone
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	return s.toProfileResponse(user), nil
}

func (s *userService) UpdatePassword(ctx context.Context, userId uuid.UUID, req *dto.UpdatePasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return serverutils.NewNotFound("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return serverutils.NewUnauthorized("old password does not match")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := uow.UserRepository().UpdatePassword(ctx, user.Id, string(hashed)); err != nil {
		return err
	}

	s.logger.Info("user", "password updated", map[string]interface{}{"user_id": user.Id})
	return nil
}
