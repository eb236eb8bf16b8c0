package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/raash-api/internal/application/dto"
	"github.com/jhoicas/raash-api/internal/domain/entity"
)

// LocalSessionUser key de c.Locals con el *entity.SessionUser de la petición.
const LocalSessionUser = "session_user"

// SessionResolver resuelve el token de la cookie en el usuario de la sesión (nil si no hay sesión válida).
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*entity.SessionUser, error)
}

// LoadSession lee la cookie de sesión y deja el usuario en c.Locals. Nunca rechaza la petición
// por falta de sesión; eso lo decide RequireSession en cada ruta.
func LoadSession(resolver SessionResolver, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return c.Next()
		}
		user, err := resolver.Resolve(c.UserContext(), token)
		if err != nil {
			return respondError(c, err)
		}
		if user != nil {
			c.Locals(LocalSessionUser, user)
		}
		return c.Next()
	}
}

// RequireSession responde 401 si no hay sesión. El handler protegido no llega a ejecutarse.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetSessionUser(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeUnauthorized, Message: "no autenticado"})
		}
		return c.Next()
	}
}

// RequireRole autoriza solo a los tipos de usuario indicados. Debe ir después de RequireSession.
func RequireRole(userTypes ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(userTypes))
	for _, t := range userTypes {
		allowed[t] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		user := GetSessionUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeUnauthorized, Message: "no autenticado"})
		}
		if _, ok := allowed[user.UserType]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: CodeForbidden, Message: "acceso denegado para el rol " + user.UserType})
		}
		return c.Next()
	}
}

// GetSessionUser devuelve el usuario de la sesión o nil.
func GetSessionUser(c *fiber.Ctx) *entity.SessionUser {
	u, _ := c.Locals(LocalSessionUser).(*entity.SessionUser)
	return u
}
