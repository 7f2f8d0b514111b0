// FILE: internal/pkg/serverutils/jwt_middleware.go
package serverutils

import (
	"strings"

	"event-management-be/internal/pkg/apperror"
	"event-management-be/internal/pkg/authtoken"
	"event-management-be/internal/repository/contract"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalUserId   = "user_id"
	LocalRole     = "role"
	LocalTokenId  = "token_id"
	LocalTokenExp = "token_exp"
)

// NewJwtMiddleware checks the bearer token and stores its claims in the request locals.
func NewJwtMiddleware(tokens *authtoken.Manager, denylist contract.TokenDenylist) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return apperror.NewUnauthorizedError("Missing token")
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			return apperror.NewUnauthorizedError("Invalid token")
		}

		if denylist != nil {
			revoked, err := denylist.IsRevoked(ctx.UserContext(), claims.ID)
			if err != nil {
				return err
			}
			if revoked {
				return apperror.NewUnauthorizedError("Token has been revoked")
			}
		}

		ctx.Locals(LocalUserId, claims.UserId)
		ctx.Locals(LocalRole, claims.Role)
		ctx.Locals(LocalTokenId, claims.ID)
		if claims.ExpiresAt != nil {
			ctx.Locals(LocalTokenExp, claims.ExpiresAt.Time)
		}
		return ctx.Next()
	}
}
