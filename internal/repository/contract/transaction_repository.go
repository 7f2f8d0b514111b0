package contract

import (
	"context"

	"event-management-be/internal/entity"
	"event-management-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	Update(ctx context.Context, transaction *entity.Transaction) error
	// UpdateState writes the lifecycle columns (statuses, payment and return dates) in one statement.
	UpdateState(ctx context.Context, transaction *entity.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Transaction, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
