package mapper

import (
	"encoding/json"

	"event-management-be/internal/entity"
	"event-management-be/internal/model"

	"gorm.io/datatypes"
)

type ActivityLogMapper struct{}

func NewActivityLogMapper() *ActivityLogMapper {
	return &ActivityLogMapper{}
}

func (m *ActivityLogMapper) ToEntity(l *model.ActivityLog) *entity.ActivityLog {
	if l == nil {
		return nil
	}
	details := make(map[string]interface{})
	if len(l.Details) > 0 {
		// Unreadable details are dropped rather than failing the whole read.
		_ = json.Unmarshal(l.Details, &details)
	}
	return &entity.ActivityLog{
		Id:         l.Id,
		EventType:  l.EventType,
		EntityId:   l.EntityId,
		Details:    details,
		OccurredAt: l.OccurredAt,
	}
}

func (m *ActivityLogMapper) ToModel(l *entity.ActivityLog) (*model.ActivityLog, error) {
	if l == nil {
		return nil, nil
	}
	raw, err := json.Marshal(l.Details)
	if err != nil {
		return nil, err
	}
	return &model.ActivityLog{
		Id:         l.Id,
		EventType:  l.EventType,
		EntityId:   l.EntityId,
		Details:    datatypes.JSON(raw),
		OccurredAt: l.OccurredAt,
	}, nil
}
