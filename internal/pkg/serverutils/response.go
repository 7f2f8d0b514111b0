package serverutils

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// BaseResponse is the envelope every endpoint answers with.
type BaseResponse[T any] struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    T                 `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) *BaseResponse[T] {
	return &BaseResponse[T]{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(message string) *BaseResponse[any] {
	return &BaseResponse[any]{
		Status:  StatusError,
		Message: message,
	}
}
