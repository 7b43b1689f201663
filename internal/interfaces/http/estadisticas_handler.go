package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dicastrol/Sistema-acv/internal/application"
)

type EstadisticasHandler struct {
	service *application.EstadisticasService
}

func NewEstadisticasHandler(service *application.EstadisticasService) *EstadisticasHandler {
	return &EstadisticasHandler{
		service: service,
	}
}

// Get retorna los indicadores poblacionales del tablero
func (h *EstadisticasHandler) Get(c *fiber.Ctx) error {
	stats, err := h.service.Get()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(stats)
}
