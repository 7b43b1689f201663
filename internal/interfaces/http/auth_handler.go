package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dicastrol/Sistema-acv/internal/application"
)

type AuthHandler struct {
	service *application.AuthService
}

func NewAuthHandler(service *application.AuthService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

type registerRequest struct {
	Nombre   string `json:"nombre"`
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

type loginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo inválido"})
	}

	cuenta, token, err := h.service.Register(req.Nombre, req.Usuario, req.Password)
	if err != nil {
		return responderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"usuario": cuenta,
		"token":   token,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo inválido"})
	}

	token, err := h.service.Login(req.Usuario, req.Password)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"token": token})
}

func (h *AuthHandler) Perfil(c *fiber.Ctx) error {
	usuarioID, ok := c.Locals("user_id").(int)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token requerido"})
	}

	cuenta, err := h.service.Perfil(usuarioID)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(cuenta)
}
