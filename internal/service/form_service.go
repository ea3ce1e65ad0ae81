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
)

// defaultCollectionSettings enables the basics on a fresh form.
func defaultCollectionSettings() entity.CollectionSettings {
	return entity.CollectionSettings{
		"name":        {Enabled: true, Required: true},
		"email":       {Enabled: true, Required: true},
		"title":       {Enabled: true, Required: false},
		"company":     {Enabled: true, Required: false},
		"social_link": {Enabled: false, Required: false},
		"photo":       {Enabled: false, Required: false},
	}
}

type IFormService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFormRequest) (*dto.FormResponse, error)
	Update(ctx context.Context, userId uuid.UUID, slug string, req *dto.UpdateFormRequest) (*dto.FormResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, slug string) error
	FindBySlug(ctx context.Context, userId uuid.UUID, slug string) (*dto.FormResponse, error)
	FindAll(ctx context.Context, userId uuid.UUID) ([]*dto.FormResponse, error)
	// GetPublic serves the submission page for a published or paused form.
	GetPublic(ctx context.Context, slug string) (*dto.PublicFormResponse, error)
}

type formService struct {
	uowFactory    unitofwork.RepositoryFactory
	currentSubSvc ICurrentSubscriptionService
	logger        logger.ILogger
}

func NewFormService(uowFactory unitofwork.RepositoryFactory, currentSubSvc ICurrentSubscriptionService, log logger.ILogger) IFormService {
	return &formService{
		uowFactory:    uowFactory,
		currentSubSvc: currentSubSvc,
		logger:        log,
	}
}

func toFormResponse(f *entity.Form) *dto.FormResponse {
	return &dto.FormResponse{
		Id:                        f.Id,
		ProjectId:                 f.ProjectId,
		Slug:                      f.Slug,
		Name:                      f.Name,
		HeaderTitle:               f.HeaderTitle,
		HeaderMessage:             f.HeaderMessage,
		Logo:                      f.Logo,
		PrimaryColor:              f.PrimaryColor,
		BackgroundColor:           f.BackgroundColor,
		CollectionSettings:        f.CollectionSettings,
		ThankYouTitle:             f.ThankYouTitle,
		ThankYouMessage:           f.ThankYouMessage,
		RemoveTestimonialBranding: f.RemoveTestimonialBranding,
		AutoApproveTestimonials:   f.AutoApproveTestimonials,
		StopNewSubmissions:        f.StopNewSubmissions,
		PauseMessage:              f.PauseMessage,
		AutomaticTags:             f.AutomaticTags,
		Status:                    string(f.Status),
		CreatedAt:                 f.CreatedAt,
	}
}

// findOwnedBySlug resolves a form through the owning project.
func (s *formService) findOwnedBySlug(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, slug string) (*entity.Form, error) {
	form, err := uow.FormRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, serverutils.NewNotFound("form not found")
	}

	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: form.ProjectId})
	if err != nil {
		return nil, err
	}
	if project == nil || project.UserId != userId {
		return nil, serverutils.NewNotFound("form not found")
	}
	return form, nil
}

func (s *formService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFormRequest) (*dto.FormResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Forms land in the working project.
	current, err := uow.ProjectRepository().FindCurrentProject(ctx, userId)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, serverutils.NewBadRequest("select a project before creating a form")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := s.currentSubSvc.Consume(ctx, uow, userId, entity.FeatureForm, -1); err != nil {
		return nil, err
	}

	now := time.Now()
	form := &entity.Form{
		Id:                 uuid.New(),
		ProjectId:          current.ProjectId,
		Slug:               randomSlug(8),
		Name:               req.Name,
		HeaderTitle:        "Share your experience",
		HeaderMessage:      "We would love to hear what you think about us.",
		PrimaryColor:       "#6C5CE7",
		BackgroundColor:    "#FFFFFF",
		CollectionSettings: defaultCollectionSettings(),
		ThankYouTitle:      "Thank you!",
		ThankYouMessage:    "Your testimonial means a lot to us.",
		Status:             entity.FormStatusDraft,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := uow.FormRepository().Create(ctx, form); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("form", "form created", map[string]interface{}{"form_id": form.Id, "slug": form.Slug})

	return toFormResponse(form), nil
}

func (s *formService) Update(ctx context.Context, userId uuid.UUID, slug string, req *dto.UpdateFormRequest) (*dto.FormResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	form, err := s.findOwnedBySlug(ctx, uow, userId, slug)
	if err != nil {
		return nil, err
	}

	if req.RemoveTestimonialBranding && !s.currentSubSvc.IsPremium(ctx, userId) {
		return nil, serverutils.NewForbidden("removing branding requires a premium plan")
	}

	form.Name = req.Name
	form.HeaderTitle = req.HeaderTitle
	form.HeaderMessage = req.HeaderMessage
	form.Logo = req.Logo
	form.PrimaryColor = req.PrimaryColor
	form.BackgroundColor = req.BackgroundColor
	if req.CollectionSettings != nil {
		form.CollectionSettings = req.CollectionSettings
	}
	form.ThankYouTitle = req.ThankYouTitle
	form.ThankYouMessage = req.ThankYouMessage
	form.RemoveTestimonialBranding = req.RemoveTestimonialBranding
	form.AutoApproveTestimonials = req.AutoApproveTestimonials
	form.StopNewSubmissions = req.StopNewSubmissions
	form.PauseMessage = req.PauseMessage
	form.AutomaticTags = req.AutomaticTags
	if req.Status != "" {
		form.Status = entity.FormStatus(req.Status)
	}
	form.UpdatedAt = time.Now()

	if err := uow.FormRepository().Update(ctx, form); err != nil {
		return nil, err
	}

	return toFormResponse(form), nil
}

func (s *formService) Delete(ctx context.Context, userId uuid.UUID, slug string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	form, err := s.findOwnedBySlug(ctx, uow, userId, slug)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	// Submitted testimonials survive the form; they just lose the link.
	if err := uow.FormRepository().DetachTestimonials(ctx, form.Id); err != nil {
		return err
	}

	if err := uow.FormRepository().Delete(ctx, form.Id); err != nil {
		return err
	}

	if err := s.currentSubSvc.Consume(ctx, uow, userId, entity.FeatureForm, 1); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.logger.Info("form", "form deleted", map[string]interface{}{"form_id": form.Id, "slug": slug})
	return nil
}

func (s *formService) FindBySlug(ctx context.Context, userId uuid.UUID, slug string) (*dto.FormResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	form, err := s.findOwnedBySlug(ctx, uow, userId, slug)
	if err != nil {
		return nil, err
	}

	return toFormResponse(form), nil
}

func (s *formService) FindAll(ctx context.Context, userId uuid.UUID) ([]*dto.FormResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	current, err := uow.ProjectRepository().FindCurrentProject(ctx, userId)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return []*dto.FormResponse{}, nil
	}

	forms, err := uow.FormRepository().FindAll(ctx,
		specification.ProjectOwnedBy{ProjectID: current.ProjectId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.FormResponse, 0, len(forms))
	for _, f := range forms {
		responses = append(responses, toFormResponse(f))
	}
	return responses, nil
}

func (s *formService) GetPublic(ctx context.Context, slug string) (*dto.PublicFormResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	form, err := uow.FormRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if form == nil || form.Status == entity.FormStatusDraft {
		return nil, serverutils.NewNotFound("form not found")
	}

	paused := form.Status == entity.FormStatusPaused || form.StopNewSubmissions
	if paused {
		return &dto.PublicFormResponse{
			Slug:         form.Slug,
			Name:         form.Name,
			Paused:       true,
			PauseMessage: form.PauseMessage,
		}, nil
	}

	return &dto.PublicFormResponse{
		Slug:               form.Slug,
		Name:               form.Name,
		HeaderTitle:        form.HeaderTitle,
		HeaderMessage:      form.HeaderMessage,
		Logo:               form.Logo,
		PrimaryColor:       form.PrimaryColor,
		BackgroundColor:    form.BackgroundColor,
		CollectionSettings: form.CollectionSettings,
		ThankYouTitle:      form.ThankYouTitle,
		ThankYouMessage:    form.ThankYouMessage,
		RemoveBranding:     form.RemoveTestimonialBranding,
		Paused:             false,
	}, nil
}
