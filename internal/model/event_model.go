package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Event struct {
	Id          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NameEvent   string          `gorm:"type:varchar(255);not null;index"`
	Description string          `gorm:"type:text;not null"`
	StartDate   time.Time       `gorm:"type:date;not null"`
	EndDate     time.Time       `gorm:"type:date;not null"`
	Price       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Image       *string         `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime"`
}

func (Event) TableName() string {
	return "events"
}
