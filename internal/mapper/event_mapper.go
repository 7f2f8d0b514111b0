package mapper

import (
	"event-management-be/internal/entity"
	"event-management-be/internal/model"
)

type EventMapper struct{}

func NewEventMapper() *EventMapper {
	return &EventMapper{}
}

func (m *EventMapper) ToEntity(e *model.Event) *entity.Event {
	if e == nil {
		return nil
	}
	return &entity.Event{
		Id:          e.Id,
		NameEvent:   e.NameEvent,
		Description: e.Description,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Price:       e.Price,
		Image:       e.Image,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (m *EventMapper) ToModel(e *entity.Event) *model.Event {
	if e == nil {
		return nil
	}
	return &model.Event{
		Id:          e.Id,
		NameEvent:   e.NameEvent,
		Description: e.Description,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Price:       e.Price,
		Image:       e.Image,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (m *EventMapper) ToEntities(events []*model.Event) []*entity.Event {
	entities := make([]*entity.Event, len(events))
	for i, e := range events {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
