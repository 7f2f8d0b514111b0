package entity

import (
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Customer struct {
	Id           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Phone        string
	Ttl          time.Time // date of birth
	City         string
	Company      string
	Gender       Gender
	Image        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
