package specification

import (
	"event-management-be/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActiveOrderFor matches the open order of a customer for an event.
type ActiveOrderFor struct {
	CustomerID uuid.UUID
	EventID    uuid.UUID
}

func (s ActiveOrderFor) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("customer_id = ? AND event_id = ? AND status_ordered = ?",
		s.CustomerID, s.EventID, string(entity.OrderStatusOrder))
}
