// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"event-management-be/internal/dto"
	"event-management-be/internal/entity"
	"event-management-be/internal/pkg/apperror"
	"event-management-be/internal/pkg/authtoken"
	"event-management-be/internal/repository/contract"
	"event-management-be/internal/repository/specification"
	"event-management-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
	Logout(ctx context.Context, tokenId string, expiresAt time.Time) error
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	tokens     *authtoken.Manager
	denylist   contract.TokenDenylist
	now        func() time.Time
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, tokens *authtoken.Manager, denylist contract.TokenDenylist) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		tokens:     tokens,
		denylist:   denylist,
		now:        time.Now,
	}
}

var errInvalidCredentials = apperror.NewUnauthorizedError("Email / Password is incorrect")

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if existing != nil {
		return nil, apperror.NewValidationError("Validation error", map[string]string{
			"email": "Email is already taken",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Id:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         entity.UserRoleUser,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		if errors.Is(err, contract.ErrDuplicate) {
			return nil, apperror.NewValidationError("Validation error", map[string]string{
				"email": "Email is already taken",
			})
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return toUserResponse(user), nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if user == nil {
		return nil, errInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errInvalidCredentials
	}

	signed, claims, err := s.tokens.Issue(user.Id, string(user.Role), s.now())
	if err != nil {
		return nil, fmt.Errorf("could not create token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     signed,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      toUserResponse(user),
	}, nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("user_not_found")
	}
	return toUserResponse(user), nil
}

// Logout revokes the token until it would have expired anyway.
func (s *authService) Logout(ctx context.Context, tokenId string, expiresAt time.Time) error {
	if tokenId == "" {
		return apperror.NewUnauthorizedError("token_invalid")
	}
	if err := s.denylist.Revoke(ctx, tokenId, expiresAt); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:        u.Id,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
