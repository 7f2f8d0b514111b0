package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateArticleRequest struct {
	Author      string `form:"author" json:"author" validate:"required"`
	Title       string `form:"title" json:"title" validate:"required"`
	Description string `form:"description" json:"description" validate:"required"`
}

type UpdateArticleRequest struct {
	Id          uuid.UUID `form:"-" json:"-"`
	Author      string    `form:"author" json:"author" validate:"required"`
	Title       string    `form:"title" json:"title" validate:"required"`
	Description string    `form:"description" json:"description" validate:"required"`
}

type ListArticleRequest struct {
	ListQuery
	Title string `query:"title"`
}

type ArticleResponse struct {
	Id          uuid.UUID `json:"id"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
