package model

import (
	"time"

	"github.com/google/uuid"
)

type Article struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Author      string    `gorm:"type:varchar(255);not null"`
	Title       string    `gorm:"type:varchar(255);not null;index"`
	Description string    `gorm:"type:text;not null"`
	Image       *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Article) TableName() string {
	return "articles"
}
