package implementation

import (
	"errors"
	"testing"

	"event-management-be/internal/repository/contract"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))

	dup := translateError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_transactions_active_order"})
	assert.ErrorIs(t, dup, contract.ErrDuplicate)
	assert.Contains(t, dup.Error(), "idx_transactions_active_order")

	ref := translateError(&pgconn.PgError{Code: "23503", ConstraintName: "fk_transactions_event"})
	assert.ErrorIs(t, ref, contract.ErrReferenced)

	other := errors.New("connection reset")
	assert.Equal(t, other, translateError(other))
}
