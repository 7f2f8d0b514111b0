package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTransactionRequest struct {
	CustomerId string `form:"customer_id" json:"customer_id" validate:"required,uuid"`
	EventId    string `form:"event_id" json:"event_id" validate:"required,uuid"`
}

// UpdateTransactionRequest holds the optional lifecycle overrides. Absent fields fall back to
// the derived defaults.
type UpdateTransactionRequest struct {
	Id            uuid.UUID `form:"-" json:"-"`
	StatusOrdered *string   `form:"status_ordered" json:"status_ordered" validate:"omitempty,oneof=process finished cancelled"`
	StatusPayment *string   `form:"status_payment" json:"status_payment" validate:"omitempty,oneof=waiting paid"`
	PaymentDate   *string   `form:"payment_date" json:"payment_date" validate:"omitempty,datetime=2006-01-02"`
}

type ListTransactionRequest struct {
	ListQuery
	CustomerId    string `query:"customer_id" validate:"omitempty,uuid"`
	EventId       string `query:"event_id" validate:"omitempty,uuid"`
	StatusOrdered string `query:"status_ordered" validate:"omitempty,oneof=process order finished cancelled"`
	StatusPayment string `query:"status_payment" validate:"omitempty,oneof=waiting paid"`
}

type TransactionResponse struct {
	Id              uuid.UUID  `json:"id"`
	CustomerId      uuid.UUID  `json:"customer_id"`
	EventId         uuid.UUID  `json:"event_id"`
	TransactionDate string     `json:"transaction_date"`
	PaymentDate     *string    `json:"payment_date"`
	ReturnDate      *time.Time `json:"return_date"`
	StatusOrdered   string     `json:"status_ordered"`
	StatusPayment   string     `json:"status_payment"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type CheckoutResponse struct {
	TransactionId uuid.UUID `json:"transaction_id"`
	Token         string    `json:"token"`
	RedirectURL   string    `json:"redirect_url"`
	GrossAmount   int64     `json:"gross_amount"`
}
