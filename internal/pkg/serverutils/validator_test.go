package serverutils

import (
	"testing"

	"event-management-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Id     string `form:"-" validate:"omitempty,uuid"`
	Name   string `form:"name_event" validate:"required,max=10"`
	Gender string `json:"gender" validate:"required,oneof=male female"`
	Born   string `query:"ttl" validate:"omitempty,datetime=2006-01-02"`
}

func TestValidateRequest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(&sampleRequest{Name: "Jazz", Gender: "male"}))
	})

	t.Run("field messages use wire names", func(t *testing.T) {
		err := ValidateRequest(&sampleRequest{Gender: "other", Born: "01-01-1990"})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.KindValidation, appErr.Kind)
		assert.Equal(t, map[string]string{
			"name_event": "name_event is required",
			"gender":     "gender must be one of: male, female",
			"ttl":        "ttl must be in the format Y-m-d",
		}, appErr.Fields)
	})

	t.Run("max length", func(t *testing.T) {
		err := ValidateRequest(&sampleRequest{Name: "a very long event name", Gender: "female"})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "name_event may not be greater than 10", appErr.Fields["name_event"])
	})
}
