package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCustomerRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
	Phone    string `form:"phone" json:"phone" validate:"required"`
	Ttl      string `form:"ttl" json:"ttl" validate:"required,datetime=2006-01-02"`
	City     string `form:"city" json:"city" validate:"required"`
	Company  string `form:"company" json:"company" validate:"required"`
	Gender   string `form:"gender" json:"gender" validate:"required,oneof=male female"`
}

type UpdateCustomerRequest struct {
	Id uuid.UUID `form:"-" json:"-"`
	CreateCustomerRequest
}

type ListCustomerRequest struct {
	ListQuery
	Username string `query:"username"`
}

// CustomerResponse never carries the password hash.
type CustomerResponse struct {
	Id        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Ttl       string    `json:"ttl"`
	City      string    `json:"city"`
	Company   string    `json:"company"`
	Gender    string    `json:"gender"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
