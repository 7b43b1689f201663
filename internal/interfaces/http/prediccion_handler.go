package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dicastrol/Sistema-acv/internal/application"
)

type PrediccionHandler struct {
	service *application.PrediccionService
}

func NewPrediccionHandler(service *application.PrediccionService) *PrediccionHandler {
	return &PrediccionHandler{
		service: service,
	}
}

// Predecir estima el riesgo de ACV de un paciente sobre su última historia
func (h *PrediccionHandler) Predecir(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	resultado, err := h.service.Predecir(id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(resultado)
}

// Listado clasifica a todos los pacientes con historial según el umbral
func (h *PrediccionHandler) Listado(c *fiber.Ctx) error {
	listado, err := h.service.Listado()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(listado)
}
