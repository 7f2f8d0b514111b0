package entity

import (
	"time"

	"github.com/google/uuid"
)

type Article struct {
	Id          uuid.UUID
	Author      string
	Title       string
	Description string
	Image       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
