package authtoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	m := NewManager("secret", time.Hour)
	userId := uuid.New()

	signed, issued, err := m.Issue(userId, "admin", time.Now())
	require.NoError(t, err)

	claims, err := m.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, userId.String(), claims.UserId)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, issued.ID, claims.ID)
	assert.NotEmpty(t, claims.ID)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	signed, _, err := NewManager("one", time.Hour).Issue(uuid.New(), "user", time.Now())
	require.NoError(t, err)

	_, err = NewManager("two", time.Hour).Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := NewManager("secret", time.Minute)
	signed, _, err := m.Issue(uuid.New(), "user", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = m.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
