package entity

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusProcess   OrderStatus = "process"
	OrderStatusOrder     OrderStatus = "order"
	OrderStatusFinished  OrderStatus = "finished"
	OrderStatusCancelled OrderStatus = "cancelled"

	PaymentStatusWaiting PaymentStatus = "waiting"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Transaction is a customer's order for an event.
type Transaction struct {
	Id              uuid.UUID
	CustomerId      uuid.UUID
	EventId         uuid.UUID
	TransactionDate time.Time
	PaymentDate     *time.Time
	ReturnDate      *time.Time
	StatusOrdered   OrderStatus
	StatusPayment   PaymentStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsActive reports whether the transaction holds the customer's single open order slot for its event.
func (t *Transaction) IsActive() bool {
	return t.StatusOrdered == OrderStatusOrder
}
