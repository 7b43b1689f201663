package http

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dicastrol/Sistema-acv/internal/application"
	"github.com/dicastrol/Sistema-acv/internal/domain"
)

// responderError traduce los errores de dominio y de validación al status
// HTTP correspondiente; cualquier error no clasificado es un 500 genérico
func responderError(c *fiber.Ctx, err error) error {
	var validacion *application.ErrorValidacion
	if errors.As(err, &validacion) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validacion.Mensaje})
	}

	switch {
	case errors.Is(err, domain.ErrNoEncontrado),
		errors.Is(err, domain.ErrSinHistorias):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrDocumentoDuplicado),
		errors.Is(err, domain.ErrUsuarioDuplicado),
		errors.Is(err, domain.ErrSexoNoSoportado):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrCredencialesInvalidas):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	log.Printf("Error interno: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error interno del servidor"})
}

// parseID parsea el parámetro de ruta "id"
func parseID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, errors.New("id inválido")
	}
	return id, nil
}

// parseFecha parsea una fecha en formato YYYY-MM-DD
func parseFecha(valor string) (time.Time, error) {
	return time.Parse("2006-01-02", valor)
}
