package dto

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// ListQuery carries the paging and sorting parameters shared by every list endpoint.
type ListQuery struct {
	Page      int    `query:"page" validate:"omitempty,min=1"`
	PerPage   int    `query:"per_page" validate:"omitempty,min=1,max=100"`
	SortBy    string `query:"sort_by"`
	SortOrder string `query:"sort_order" validate:"omitempty,oneof=asc desc"`
}

// Normalize fills in defaults for missing values.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultPerPage
	}
	if q.PerPage > MaxPerPage {
		q.PerPage = MaxPerPage
	}
}

func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PerPage
}

func (q ListQuery) Desc() bool {
	return q.SortOrder == "desc"
}

type PaginatedResponse[T any] struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
	Data        []T   `json:"data"`
}

func NewPaginatedResponse[T any](q ListQuery, total int64, data []T) *PaginatedResponse[T] {
	lastPage := int((total + int64(q.PerPage) - 1) / int64(q.PerPage))
	if lastPage < 1 {
		lastPage = 1
	}
	if data == nil {
		data = []T{}
	}
	return &PaginatedResponse[T]{
		CurrentPage: q.Page,
		PerPage:     q.PerPage,
		Total:       total,
		LastPage:    lastPage,
		Data:        data,
	}
}
