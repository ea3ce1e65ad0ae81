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

type IWidgetService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateWidgetRequest) (*dto.WidgetResponse, error)
	Update(ctx context.Context, userId, widgetId uuid.UUID, req *dto.UpdateWidgetRequest) (*dto.WidgetResponse, error)
	Delete(ctx context.Context, userId, widgetId uuid.UUID) error
	FindAll(ctx context.Context, userId uuid.UUID) ([]*dto.WidgetResponse, error)
	// GetPublic hydrates the selected testimonials for the embed script.
	GetPublic(ctx context.Context, widgetId uuid.UUID) (*dto.PublicWidgetResponse, error)
}

type widgetService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewWidgetService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IWidgetService {
	return &widgetService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func toWidgetResponse(w *entity.Widget) *dto.WidgetResponse {
	return &dto.WidgetResponse{
		Id:               w.Id,
		ProjectId:        w.ProjectId,
		Name:             w.Name,
		Type:             w.Type,
		ShowTestimonials: w.ShowTestimonials,
		CreatedAt:        w.CreatedAt,
	}
}

func parseTestimonialIds(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, serverutils.NewBadRequest("invalid testimonial id in show_testimonials")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *widgetService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, widgetId uuid.UUID) (*entity.Widget, error) {
	widget, err := uow.WidgetRepository().FindOne(ctx, specification.ByID{ID: widgetId})
	if err != nil {
		return nil, err
	}
	if widget == nil {
		return nil, serverutils.NewNotFound("widget not found")
	}

	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: widget.ProjectId})
	if err != nil {
		return nil, err
	}
	if project == nil || project.UserId != userId {
		return nil, serverutils.NewNotFound("widget not found")
	}
	return widget, nil
}

func (s *widgetService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateWidgetRequest) (*dto.WidgetResponse, error) {
	ids, err := parseTestimonialIds(req.ShowTestimonials)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	current, err := uow.ProjectRepository().FindCurrentProject(ctx, userId)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, serverutils.NewBadRequest("select a project before creating a widget")
	}

	now := time.Now()
	widget := &entity.Widget{
		Id:               uuid.New(),
		ProjectId:        current.ProjectId,
		Name:             req.Name,
		Type:             req.Type,
		ShowTestimonials: ids,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := uow.WidgetRepository().Create(ctx, widget); err != nil {
		return nil, err
	}

	s.logger.Info("widget", "widget created", map[string]interface{}{"widget_id": widget.Id})

	return toWidgetResponse(widget), nil
}

func (s *widgetService) Update(ctx context.Context, userId, widgetId uuid.UUID, req *dto.UpdateWidgetRequest) (*dto.WidgetResponse, error) {
	ids, err := parseTestimonialIds(req.ShowTestimonials)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	widget, err := s.findOwned(ctx, uow, userId, widgetId)
	if err != nil {
		return nil, err
	}

	widget.Name = req.Name
	widget.Type = req.Type
	widget.ShowTestimonials = ids
	widget.UpdatedAt = time.Now()

	if err := uow.WidgetRepository().Update(ctx, widget); err != nil {
		return nil, err
	}

	return toWidgetResponse(widget), nil
}

func (s *widgetService) Delete(ctx context.Context, userId, widgetId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwned(ctx, uow, userId, widgetId); err != nil {
		return err
	}

	return uow.WidgetRepository().Delete(ctx, widgetId)
}

func (s *widgetService) FindAll(ctx context.Context, userId uuid.UUID) ([]*dto.WidgetResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	current, err := uow.ProjectRepository().FindCurrentProject(ctx, userId)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return []*dto.WidgetResponse{}, nil
	}

	widgets, err := uow.WidgetRepository().FindAll(ctx,
		specification.ProjectOwnedBy{ProjectID: current.ProjectId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.WidgetResponse, 0, len(widgets))
	for _, w := range widgets {
		responses = append(responses, toWidgetResponse(w))
	}
	return responses, nil
}

func (s *widgetService) GetPublic(ctx context.Context, widgetId uuid.UUID) (*dto.PublicWidgetResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	widget, err := uow.WidgetRepository().FindOne(ctx, specification.ByID{ID: widgetId})
	if err != nil {
		return nil, err
	}
	if widget == nil {
		return nil, serverutils.NewNotFound("widget not found")
	}

	testimonials := make([]dto.TestimonialResponse, 0, len(widget.ShowTestimonials))
	if len(widget.ShowTestimonials) > 0 {
		found, err := uow.TestimonialRepository().FindAll(ctx,
			specification.ByIDs{IDs: widget.ShowTestimonials},
			specification.ByStatus{Status: string(entity.TestimonialStatusApproved)},
		)
		if err != nil {
			return nil, err
		}

		// Preserve the order the owner arranged.
		byId := make(map[uuid.UUID]*entity.Testimonial, len(found))
		for _, t := range found {
			byId[t.Id] = t
		}
		for _, id := range widget.ShowTestimonials {
			if t, ok := byId[id]; ok {
				testimonials = append(testimonials, *toTestimonialResponse(t))
			}
		}
	}

	return &dto.PublicWidgetResponse{
		Id:           widget.Id,
		Name:         widget.Name,
		Type:         widget.Type,
		Testimonials: testimonials,
	}, nil
}
