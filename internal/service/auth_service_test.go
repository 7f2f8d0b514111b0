package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"event-management-be/internal/dto"
	"event-management-be/internal/pkg/apperror"
	"event-management-be/internal/pkg/authtoken"
	"event-management-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(db *fakeDB) (*authService, *authtoken.Manager) {
	tokens := authtoken.NewManager("test-secret", time.Hour)
	svc := NewAuthService(db, tokens, memory.NewTokenDenylist()).(*authService)
	return svc, tokens
}

func TestAuthService_RegisterLoginMe(t *testing.T) {
	db := newFakeDB()
	svc, tokens := newTestAuthService(db)
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{Name: "Admin", Email: "admin@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "user", user.Role)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Name: "Again", Email: "admin@example.com", Password: "secret1"})
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	res, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, user.Id, res.User.Id)

	claims, err := tokens.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, user.Id.String(), claims.UserId)
	assert.True(t, res.ExpiresAt.Equal(claims.ExpiresAt.Time))

	me, err := svc.Me(ctx, user.Id)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", me.Email)

	_, err = svc.Me(ctx, uuid.New())
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	db := newFakeDB()
	svc, _ := newTestAuthService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Name: "A", Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "a@example.com", Password: "wrong"})
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized))

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized))
}

func TestAuthService_Logout(t *testing.T) {
	db := newFakeDB()
	svc, _ := newTestAuthService(db)
	ctx := context.Background()

	require.NoError(t, svc.Logout(ctx, "jti-1", time.Now().Add(time.Hour)))
	revoked, err := svc.denylist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	assert.True(t, apperror.Is(svc.Logout(ctx, "", time.Now()), apperror.KindUnauthorized))
}

func TestAuthService_RegisterIgnoresClientRole(t *testing.T) {
	db := newFakeDB()
	svc, _ := newTestAuthService(db)

	var req dto.RegisterRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Eve","email":"eve@example.com","password":"secret1","role":"admin"}`), &req))

	user, err := svc.Register(context.Background(), &req)
	require.NoError(t, err)
	assert.Equal(t, "user", user.Role)
	require.Len(t, db.users, 1)
	assert.Equal(t, "user", string(db.users[0].Role))
}
