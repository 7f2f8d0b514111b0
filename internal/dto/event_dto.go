package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateEventRequest struct {
	NameEvent   string `form:"name_event" json:"name_event" validate:"required"`
	Description string `form:"description" json:"description" validate:"required"`
	StartDate   string `form:"start_date" json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `form:"end_date" json:"end_date" validate:"required,datetime=2006-01-02"`
	Price       string `form:"price" json:"price" validate:"required,numeric"`
}

type UpdateEventRequest struct {
	Id uuid.UUID `form:"-" json:"-"`
	CreateEventRequest
}

type ListEventRequest struct {
	ListQuery
	NameEvent string `query:"name_event"`
}

type EventResponse struct {
	Id          uuid.UUID       `json:"id"`
	NameEvent   string          `json:"name_event"`
	Description string          `json:"description"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	Price       decimal.Decimal `json:"price"`
	Image       *string         `json:"image"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
