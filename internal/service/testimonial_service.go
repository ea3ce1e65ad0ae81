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

type ITestimonialService interface {
	// Submit handles the public submission page; the form slug scopes it.
	Submit(ctx context.Context, formSlug string, req *dto.SubmitTestimonialRequest) (*dto.TestimonialResponse, error)
	// Import pulls a social media testimonial straight into a project.
	Import(ctx context.Context, userId uuid.UUID, req *dto.ImportTestimonialRequest) (*dto.TestimonialResponse, error)
	UpdateStatus(ctx context.Context, userId, testimonialId uuid.UUID, req *dto.UpdateTestimonialStatusRequest) error
	Delete(ctx context.Context, userId, testimonialId uuid.UUID) error
	FindAll(ctx context.Context, userId, projectId uuid.UUID, testimonialType string, page, limit int) (*dto.PaginatedResponse[*dto.TestimonialResponse], error)
	// FindApproved feeds public showcases and widgets.
	FindApproved(ctx context.Context, projectId uuid.UUID) ([]*dto.TestimonialResponse, error)
}

type testimonialService struct {
	uowFactory    unitofwork.RepositoryFactory
	currentSubSvc ICurrentSubscriptionService
	logger        logger.ILogger
}

func NewTestimonialService(uowFactory unitofwork.RepositoryFactory, currentSubSvc ICurrentSubscriptionService, log logger.ILogger) ITestimonialService {
	return &testimonialService{
		uowFactory:    uowFactory,
		currentSubSvc: currentSubSvc,
		logger:        log,
	}
}

func toTestimonialResponse(t *entity.Testimonial) *dto.TestimonialResponse {
	var source *string
	if t.Source != nil {
		s := string(*t.Source)
		source = &s
	}
	return &dto.TestimonialResponse{
		Id:            t.Id,
		ProjectId:     t.ProjectId,
		FormId:        t.FormId,
		AuthorName:    t.AuthorName,
		AuthorEmail:   t.AuthorEmail,
		AuthorTitle:   t.AuthorTitle,
		AuthorCompany: t.AuthorCompany,
		AuthorPhoto:   t.AuthorPhoto,
		Text:          t.Text,
		Rating:        t.Rating,
		Type:          string(t.Type),
		Source:        source,
		MediaURL:      t.MediaURL,
		Tags:          t.Tags,
		Status:        string(t.Status),
		CreatedAt:     t.CreatedAt,
	}
}

func buildTestimonial(projectId uuid.UUID, formId *uuid.UUID, req *dto.SubmitTestimonialRequest) *entity.Testimonial {
	now := time.Now()
	var source *entity.TestimonialSource
	if req.Source != nil {
		s := entity.TestimonialSource(*req.Source)
		source = &s
	}
	return &entity.Testimonial{
		Id:            uuid.New(),
		ProjectId:     projectId,
		FormId:        formId,
		AuthorName:    req.AuthorName,
		AuthorEmail:   req.AuthorEmail,
		AuthorTitle:   req.AuthorTitle,
		AuthorCompany: req.AuthorCompany,
		AuthorPhoto:   req.AuthorPhoto,
		Text:          req.Text,
		Rating:        req.Rating,
		Type:          entity.TestimonialType(req.Type),
		Source:        source,
		MediaURL:      req.MediaURL,
		Status:        entity.TestimonialStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (s *testimonialService) Submit(ctx context.Context, formSlug string, req *dto.SubmitTestimonialRequest) (*dto.TestimonialResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	form, err := uow.FormRepository().FindOne(ctx, specification.BySlug{Slug: formSlug})
	if err != nil {
		return nil, err
	}
	if form == nil || form.Status == entity.FormStatusDraft {
		return nil, serverutils.NewNotFound("form not found")
	}
	if form.Status == entity.FormStatusPaused || form.StopNewSubmissions {
		return nil, serverutils.NewForbidden("this form is not accepting submissions")
	}
	if entity.TestimonialType(req.Type) == entity.TestimonialTypeImport {
		return nil, serverutils.NewBadRequest("imports cannot be submitted through a form")
	}

	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: form.ProjectId})
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, serverutils.NewNotFound("form not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// The form owner's quota pays for public submissions.
	key := entity.FeatureKeyForTestimonialType(entity.TestimonialType(req.Type))
	if err := s.currentSubSvc.Consume(ctx, uow, project.UserId, key, -1); err != nil {
		return nil, err
	}

	testimonial := buildTestimonial(form.ProjectId, &form.Id, req)
	testimonial.Tags = form.AutomaticTags
	if form.AutoApproveTestimonials {
		testimonial.Status = entity.TestimonialStatusApproved
	}

	if err := uow.TestimonialRepository().Create(ctx, testimonial); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("testimonial", "testimonial submitted", map[string]interface{}{
		"testimonial_id": testimonial.Id,
		"form_slug":      formSlug,
		"type":           testimonial.Type,
	})

	return toTestimonialResponse(testimonial), nil
}

func (s *testimonialService) Import(ctx context.Context, userId uuid.UUID, req *dto.ImportTestimonialRequest) (*dto.TestimonialResponse, error) {
	projectId, err := uuid.Parse(req.ProjectId)
	if err != nil {
		return nil, serverutils.NewBadRequest("invalid project id")
	}
	if entity.TestimonialType(req.Type) != entity.TestimonialTypeImport {
		return nil, serverutils.NewBadRequest("import requests must have type import")
	}
	if req.Source == nil {
		return nil, serverutils.NewBadRequest("imports must name their source")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: projectId})
	if err != nil {
		return nil, err
	}
	if project == nil || project.UserId != userId {
		return nil, serverutils.NewNotFound("project not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := s.currentSubSvc.Consume(ctx, uow, userId, entity.FeatureImportSocialMedia, -1); err != nil {
		return nil, err
	}

	testimonial := buildTestimonial(projectId, nil, &req.SubmitTestimonialRequest)
	// Imports come from the owner, no moderation round trip needed.
	testimonial.Status = entity.TestimonialStatusApproved

	if err := uow.TestimonialRepository().Create(ctx, testimonial); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toTestimonialResponse(testimonial), nil
}

// findOwned loads a testimonial and checks the caller owns its project.
func (s *testimonialService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, testimonialId uuid.UUID) (*entity.Testimonial, error) {
	testimonial, err := uow.TestimonialRepository().FindOne(ctx, specification.ByID{ID: testimonialId})
	if err != nil {
		return nil, err
	}
	if testimonial == nil {
		return nil, serverutils.NewNotFound("testimonial not found")
	}

	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: testimonial.ProjectId})
	if err != nil {
		return nil, err
	}
	if project == nil || project.UserId != userId {
		return nil, serverutils.NewNotFound("testimonial not found")
	}
	return testimonial, nil
}

func (s *testimonialService) UpdateStatus(ctx context.Context, userId, testimonialId uuid.UUID, req *dto.UpdateTestimonialStatusRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwned(ctx, uow, userId, testimonialId); err != nil {
		return err
	}

	return uow.TestimonialRepository().UpdateStatus(ctx, testimonialId, entity.TestimonialStatus(req.Status))
}

func (s *testimonialService) Delete(ctx context.Context, userId, testimonialId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	testimonial, err := s.findOwned(ctx, uow, userId, testimonialId)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.TestimonialRepository().Delete(ctx, testimonialId); err != nil {
		return err
	}

	key := entity.FeatureKeyForTestimonialType(testimonial.Type)
	if err := s.currentSubSvc.Consume(ctx, uow, userId, key, 1); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.logger.Info("testimonial", "testimonial deleted", map[string]interface{}{"testimonial_id": testimonialId})
	return nil
}

func (s *testimonialService) FindAll(ctx context.Context, userId, projectId uuid.UUID, testimonialType string, page, limit int) (*dto.PaginatedResponse[*dto.TestimonialResponse], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: projectId})
	if err != nil {
		return nil, err
	}
	if project == nil || project.UserId != userId {
		return nil, serverutils.NewNotFound("project not found")
	}

	specs := []specification.Specification{
		specification.ProjectOwnedBy{ProjectID: projectId},
	}
	if testimonialType != "" {
		specs = append(specs, specification.ByTestimonialType{Type: testimonialType})
	}

	total, err := uow.TestimonialRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	specs = append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	testimonials, err := uow.TestimonialRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.TestimonialResponse, 0, len(testimonials))
	for _, t := range testimonials {
		items = append(items, toTestimonialResponse(t))
	}

	return &dto.PaginatedResponse[*dto.TestimonialResponse]{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (s *testimonialService) FindApproved(ctx context.Context, projectId uuid.UUID) ([]*dto.TestimonialResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	testimonials, err := uow.TestimonialRepository().FindAll(ctx,
		specification.ProjectOwnedBy{ProjectID: projectId},
		specification.ByStatus{Status: string(entity.TestimonialStatusApproved)},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.TestimonialResponse, 0, len(testimonials))
	for _, t := range testimonials {
		responses = append(responses, toTestimonialResponse(t))
	}
	return responses, nil
}
