package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dicastrol/Sistema-acv/internal/application"
)

// NewAuthMiddleware valida el token Bearer y deja el ID de la cuenta en los
// locals del contexto bajo "user_id"
func NewAuthMiddleware(authService *application.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		encabezado := c.Get("Authorization")
		if encabezado == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token requerido"})
		}

		partes := strings.SplitN(encabezado, " ", 2)
		if len(partes) != 2 || !strings.EqualFold(partes[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "formato de autorización inválido"})
		}

		usuarioID, err := authService.ValidarToken(partes[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token inválido o expirado"})
		}

		c.Locals("user_id", usuarioID)
		return c.Next()
	}
}
