package model

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(255);not null;index"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password;type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(50);not null"`
	Ttl          time.Time `gorm:"type:date;not null"`
	City         string    `gorm:"type:varchar(255);not null"`
	Company      string    `gorm:"type:varchar(255);not null"`
	Gender       string    `gorm:"type:varchar(10);not null"`
	Image        *string   `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Customer) TableName() string {
	return "customers"
}
