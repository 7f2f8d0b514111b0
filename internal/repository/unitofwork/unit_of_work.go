package unitofwork

import (
	"context"

	"event-management-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ArticleRepository() contract.ArticleRepository
	EventRepository() contract.EventRepository
	CustomerRepository() contract.CustomerRepository
	TransactionRepository() contract.TransactionRepository
	ActivityLogRepository() contract.ActivityLogRepository
}
