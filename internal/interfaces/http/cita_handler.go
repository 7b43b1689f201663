package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dicastrol/Sistema-acv/internal/application"
	"github.com/dicastrol/Sistema-acv/internal/domain"
)

type CitaHandler struct {
	service *application.CitaService
}

func NewCitaHandler(service *application.CitaService) *CitaHandler {
	return &CitaHandler{
		service: service,
	}
}

// citaRequest recibe la fecha y hora como "YYYY-MM-DD HH:MM"
type citaRequest struct {
	PacienteID    *int    `json:"paciente_id"`
	FechaHora     *string `json:"fecha_hora"`
	Servicio      *string `json:"servicio"`
	PersonalSalud *string `json:"personal_salud"`
	Estado        *string `json:"estado"`
	Notas         *string `json:"notas"`
}

func (req *citaRequest) aplicar(cita *domain.Cita) error {
	if req.PacienteID != nil {
		cita.PacienteID = *req.PacienteID
	}
	if req.FechaHora != nil {
		fechaHora, err := time.Parse("2006-01-02 15:04", *req.FechaHora)
		if err != nil {
			return err
		}
		cita.FechaHora = fechaHora
	}
	if req.Servicio != nil {
		cita.Servicio = *req.Servicio
	}
	if req.PersonalSalud != nil {
		cita.PersonalSalud = req.PersonalSalud
	}
	if req.Estado != nil {
		cita.Estado = domain.EstadoCita(*req.Estado)
	}
	if req.Notas != nil {
		cita.Notas = req.Notas
	}
	return nil
}

func (h *CitaHandler) GetAll(c *fiber.Ctx) error {
	citas, err := h.service.GetAll()
	if err != nil {
		return responderError(c, err)
	}
	if citas == nil {
		citas = []domain.Cita{}
	}
	return c.JSON(citas)
}

// GetHoy retorna las citas del día actual ordenadas por hora
func (h *CitaHandler) GetHoy(c *fiber.Ctx) error {
	citas, err := h.service.GetHoy()
	if err != nil {
		return responderError(c, err)
	}
	if citas == nil {
		citas = []domain.Cita{}
	}
	return c.JSON(citas)
}

func (h *CitaHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	cita, err := h.service.GetByID(id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(cita)
}

func (h *CitaHandler) Create(c *fiber.Ctx) error {
	var req citaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo inválido"})
	}

	var cita domain.Cita
	if err := req.aplicar(&cita); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "fecha_hora inválida, use YYYY-MM-DD HH:MM"})
	}

	if err := h.service.Create(&cita); err != nil {
		return responderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(cita)
}

func (h *CitaHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	var req citaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo inválido"})
	}

	cita, err := h.service.GetByID(id)
	if err != nil {
		return responderError(c, err)
	}

	if err := req.aplicar(cita); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "fecha_hora inválida, use YYYY-MM-DD HH:MM"})
	}

	if err := h.service.Update(cita); err != nil {
		return responderError(c, err)
	}

	return c.JSON(cita)
}

func (h *CitaHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	if err := h.service.Delete(id); err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"mensaje": "cita eliminada"})
}
