package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Event struct {
	Id          uuid.UUID
	NameEvent   string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Price       decimal.Decimal
	Image       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
