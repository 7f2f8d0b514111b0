package implementation_test

import (
	"context"
	"os"
	"testing"
	"time"

	"event-management-be/internal/entity"
	"event-management-be/internal/model"
	"event-management-be/internal/repository/contract"
	"event-management-be/internal/repository/specification"
	"event-management-be/internal/repository/unitofwork"
	"event-management-be/pkg/database"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormTransactionConstraints(t *testing.T) {
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, true)
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	customer := &entity.Customer{
		Id:           uuid.New(),
		Username:     "integration",
		Email:        "integration-" + uuid.NewString() + "@example.com",
		PasswordHash: "x",
		Phone:        "0800",
		Ttl:          time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		City:         "Bandung",
		Company:      "ACME",
		Gender:       entity.GenderFemale,
	}
	require.NoError(t, uow.CustomerRepository().Create(ctx, customer))

	event := &entity.Event{
		Id:          uuid.New(),
		NameEvent:   "Integration Fest",
		Description: "db test",
		StartDate:   time.Now().UTC(),
		EndDate:     time.Now().UTC().AddDate(0, 0, 2),
		Price:       decimal.RequireFromString("150000.00"),
	}
	require.NoError(t, uow.EventRepository().Create(ctx, event))

	t.Cleanup(func() {
		_ = db.Exec("DELETE FROM transactions WHERE customer_id = ?", customer.Id).Error
		_ = uow.EventRepository().Delete(ctx, event.Id)
		_ = uow.CustomerRepository().Delete(ctx, customer.Id)
	})

	newOrder := func() *entity.Transaction {
		return &entity.Transaction{
			Id:              uuid.New(),
			CustomerId:      customer.Id,
			EventId:         event.Id,
			TransactionDate: time.Now().UTC(),
			StatusOrdered:   entity.OrderStatusOrder,
			StatusPayment:   entity.PaymentStatusWaiting,
		}
	}

	first := newOrder()
	require.NoError(t, uow.TransactionRepository().Create(ctx, first))

	t.Run("second active order is a duplicate", func(t *testing.T) {
		err := uow.TransactionRepository().Create(ctx, newOrder())
		assert.ErrorIs(t, err, contract.ErrDuplicate)
	})

	t.Run("active order is found", func(t *testing.T) {
		found, err := uow.TransactionRepository().FindOne(ctx,
			specification.ActiveOrderFor{CustomerID: customer.Id, EventID: event.Id})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, first.Id, found.Id)
	})

	t.Run("referenced event cannot be deleted", func(t *testing.T) {
		err := uow.EventRepository().Delete(ctx, event.Id)
		assert.ErrorIs(t, err, contract.ErrReferenced)
	})

	t.Run("finished order frees the slot", func(t *testing.T) {
		first.StatusOrdered = entity.OrderStatusFinished
		require.NoError(t, uow.TransactionRepository().UpdateState(ctx, first))
		assert.NoError(t, uow.TransactionRepository().Create(ctx, newOrder()))
	})
}
