package model

import (
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerId      uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_transactions_active_order,where:status_ordered = 'order'"`
	EventId         uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_transactions_active_order,where:status_ordered = 'order'"`
	TransactionDate time.Time  `gorm:"type:date;not null"`
	PaymentDate     *time.Time `gorm:"type:date"`
	ReturnDate      *time.Time
	StatusOrdered   string    `gorm:"type:varchar(20);not null;default:'process';index"`
	StatusPayment   string    `gorm:"type:varchar(20);not null;default:'waiting'"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (Transaction) TableName() string {
	return "transactions"
}
