package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/medimarket-api/internal/application/dto"
)

// RequireRole devuelve un middleware Fiber que exige que el rol del token
// pertenezca al conjunto permitido de la ruta. Debe usarse DESPUÉS de
// AuthMiddleware (necesita LocalRole).
//
// Comportamiento:
//   - 401 → el token no traía claim de rol.
//   - 403 → rol presente pero fuera del conjunto permitido.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "el token no incluye rol",
			})
		}
		for _, r := range allowed {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "Access denied",
		})
	}
}
