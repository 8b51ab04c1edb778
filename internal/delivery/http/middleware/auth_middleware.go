package middleware

import (
	"errors"
	"strings"

	"jobport/internal/domain/user"
	"jobport/internal/pkg/authz"
	"jobport/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const CtxActorKey = "actor"

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// Middleware resolves the bearer token to an actor and stores it in the
// request context. Absent or invalid credentials are a hard 401.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		role, ok := user.ParseRole(claims.Role)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, nil)
		}

		c.Locals(CtxActorKey, authz.Actor{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   role,
		})

		return c.Next()
	}
}

// RequireAction gates a route on the authorization policy for one action.
// Must run after the auth middleware.
func RequireAction(action authz.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		actor := ActorFromCtx(c)
		if err := authz.Authorize(actor, action); err != nil {
			if errors.Is(err, authz.ErrUnauthenticated) {
				return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
			}
			return NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
		}
		return c.Next()
	}
}

func ActorFromCtx(c fiber.Ctx) authz.Actor {
	actor, _ := c.Locals(CtxActorKey).(authz.Actor)
	return actor
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
