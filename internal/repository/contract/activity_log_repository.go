package contract

import (
	"context"

	"event-management-be/internal/entity"
)

type ActivityLogRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error
}
