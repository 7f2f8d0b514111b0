package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"event-management-be/internal/dto"
	"event-management-be/internal/entity"
	"event-management-be/internal/pkg/apperror"
	"event-management-be/internal/pkg/logger"
	"event-management-be/internal/repository/contract"
	"event-management-be/internal/repository/specification"
	"event-management-be/internal/repository/unitofwork"
	"event-management-be/pkg/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var eventSortable = map[string]bool{
	"created_at": true,
	"name_event": true,
	"start_date": true,
	"end_date":   true,
	"price":      true,
}

type IEventService interface {
	Create(ctx context.Context, req *dto.CreateEventRequest, image *multipart.FileHeader) (*dto.EventResponse, error)
	List(ctx context.Context, req *dto.ListEventRequest) (*dto.PaginatedResponse[*dto.EventResponse], error)
	Show(ctx context.Context, id uuid.UUID) (*dto.EventResponse, error)
	Update(ctx context.Context, req *dto.UpdateEventRequest, image *multipart.FileHeader) (*dto.EventResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventService struct {
	uowFactory unitofwork.RepositoryFactory
	media      storage.MediaStore
	log        logger.ILogger
}

func NewEventService(uowFactory unitofwork.RepositoryFactory, media storage.MediaStore, log logger.ILogger) IEventService {
	return &eventService{
		uowFactory: uowFactory,
		media:      media,
		log:        log,
	}
}

type eventFields struct {
	start time.Time
	end   time.Time
	price decimal.Decimal
}

// parseEventFields checks the date range and price beyond what the validate tags cover.
func parseEventFields(req *dto.CreateEventRequest) (*eventFields, error) {
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, apperror.NewValidationError("Validation error", map[string]string{
			"end_date": "End date must be equal to or after start date",
		})
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, apperror.NewValidationError("Validation error", map[string]string{
			"price": "Price must be a numeric value",
		})
	}
	return &eventFields{start: start, end: end, price: price}, nil
}

func (s *eventService) Create(ctx context.Context, req *dto.CreateEventRequest, image *multipart.FileHeader) (*dto.EventResponse, error) {
	fields, err := parseEventFields(req)
	if err != nil {
		return nil, err
	}
	if err := checkImage(image); err != nil {
		return nil, err
	}

	stored, err := saveImage(ctx, s.media, storage.KindEvents, image)
	if err != nil {
		return nil, err
	}

	event := &entity.Event{
		Id:          uuid.New(),
		NameEvent:   req.NameEvent,
		Description: req.Description,
		StartDate:   fields.start,
		EndDate:     fields.end,
		Price:       fields.price,
		Image:       stored,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.EventRepository().Create(ctx, event); err != nil {
		discardImage(s.media, s.log, "EVENT", stored)
		return nil, fmt.Errorf("create event: %w", err)
	}

	return toEventResponse(event), nil
}

func (s *eventService) List(ctx context.Context, req *dto.ListEventRequest) (*dto.PaginatedResponse[*dto.EventResponse], error) {
	var filters []specification.Specification
	if req.NameEvent != "" {
		filters = append(filters, specification.Contains{Field: "name_event", Value: req.NameEvent})
	}

	paging, err := pageSpecs(&req.ListQuery, eventSortable, "created_at")
	if err != nil {
		return nil, err
	}

	repo := s.uowFactory.NewUnitOfWork(ctx).EventRepository()
	total, err := repo.Count(ctx, filters...)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	evts, err := repo.FindAll(ctx, append(filters, paging...)...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	data := make([]*dto.EventResponse, 0, len(evts))
	for _, e := range evts {
		data = append(data, toEventResponse(e))
	}
	return dto.NewPaginatedResponse(req.ListQuery, total, data), nil
}

func (s *eventService) Show(ctx context.Context, id uuid.UUID) (*dto.EventResponse, error) {
	event, err := s.find(ctx, s.uowFactory.NewUnitOfWork(ctx), id)
	if err != nil {
		return nil, err
	}
	return toEventResponse(event), nil
}

func (s *eventService) Update(ctx context.Context, req *dto.UpdateEventRequest, image *multipart.FileHeader) (*dto.EventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	event, err := s.find(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}
	fields, err := parseEventFields(&req.CreateEventRequest)
	if err != nil {
		return nil, err
	}
	if err := checkImage(image); err != nil {
		return nil, err
	}

	stored, err := saveImage(ctx, s.media, storage.KindEvents, image)
	if err != nil {
		return nil, err
	}

	previous := event.Image
	event.NameEvent = req.NameEvent
	event.Description = req.Description
	event.StartDate = fields.start
	event.EndDate = fields.end
	event.Price = fields.price
	if stored != nil {
		event.Image = stored
	}

	if err := uow.EventRepository().Update(ctx, event); err != nil {
		discardImage(s.media, s.log, "EVENT", stored)
		return nil, fmt.Errorf("update event: %w", err)
	}
	if stored != nil && (previous == nil || *previous != *stored) {
		discardImage(s.media, s.log, "EVENT", previous)
	}

	return toEventResponse(event), nil
}

func (s *eventService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	event, err := s.find(ctx, uow, id)
	if err != nil {
		return err
	}

	if err := uow.EventRepository().Delete(ctx, id); err != nil {
		if errors.Is(err, contract.ErrReferenced) {
			return apperror.NewConflictError("Cannot delete event with associated transactions")
		}
		return fmt.Errorf("delete event: %w", err)
	}
	discardImage(s.media, s.log, "EVENT", event.Image)
	return nil
}

func (s *eventService) find(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Event, error) {
	event, err := uow.EventRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, fmt.Errorf("find event: %w", err)
	}
	if event == nil {
		return nil, apperror.NewNotFoundError("event not found")
	}
	return event, nil
}

func toEventResponse(e *entity.Event) *dto.EventResponse {
	return &dto.EventResponse{
		Id:          e.Id,
		NameEvent:   e.NameEvent,
		Description: e.Description,
		StartDate:   e.StartDate.Format(dateLayout),
		EndDate:     e.EndDate.Format(dateLayout),
		Price:       e.Price,
		Image:       e.Image,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
