package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dicastrol/Sistema-acv/internal/application"
	"github.com/dicastrol/Sistema-acv/internal/domain"
)

type ServicioHandler struct {
	service *application.ServicioService
}

func NewServicioHandler(service *application.ServicioService) *ServicioHandler {
	return &ServicioHandler{
		service: service,
	}
}

// GetActivos retorna el catálogo de servicios disponibles para agendar
func (h *ServicioHandler) GetActivos(c *fiber.Ctx) error {
	servicios, err := h.service.GetActivos()
	if err != nil {
		return responderError(c, err)
	}
	if servicios == nil {
		servicios = []domain.Servicio{}
	}
	return c.JSON(servicios)
}
