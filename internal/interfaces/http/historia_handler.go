package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dicastrol/Sistema-acv/internal/application"
	"github.com/dicastrol/Sistema-acv/internal/domain"
)

type HistoriaHandler struct {
	service *application.HistoriaService
}

func NewHistoriaHandler(service *application.HistoriaService) *HistoriaHandler {
	return &HistoriaHandler{
		service: service,
	}
}

// historiaRequest usa punteros para distinguir campo ausente de valor en
// cero; las fechas llegan como YYYY-MM-DD
type historiaRequest struct {
	PacienteID    *int    `json:"paciente_id"`
	FechaConsulta *string `json:"fecha_consulta"`

	Temperatura            *float64 `json:"temperatura"`
	PresionSistolica       *float64 `json:"presion_sistolica"`
	PresionDiastolica      *float64 `json:"presion_diastolica"`
	FrecuenciaCardiaca     *int     `json:"frecuencia_cardiaca"`
	FrecuenciaRespiratoria *int     `json:"frecuencia_respiratoria"`
	Arritmia               *bool    `json:"arritmia"`
	NotasSignos            *string  `json:"notas_signos"`

	Hipertension *bool `json:"hipertension"`
	Diabetes     *bool `json:"diabetes"`

	Peso   *float64 `json:"peso"`
	Altura *float64 `json:"altura"`

	Obesidad                  *bool `json:"obesidad"`
	Tabaquismo                *bool `json:"tabaquismo"`
	Alcohol                   *bool `json:"alcohol"`
	DrogasEstimulantes        *bool `json:"drogas_estimulantes"`
	Sedentarismo              *bool `json:"sedentarismo"`
	EnfermedadCardiacaPrevia  *bool `json:"enfermedad_cardiaca_previa"`
	Estres                    *bool `json:"estres"`
	AntecedentesFamiliaresACV *bool `json:"antecedentes_familiares_acv"`

	MotivoConsulta     *string `json:"motivo_consulta"`
	FechaAparicion     *string `json:"fecha_aparicion"`
	CondicionesPrevias *string `json:"condiciones_previas"`
	HistorialFamiliar  *string `json:"historial_familiar"`
	Medicamentos       *string `json:"medicamentos"`
	Diagnostico        *string `json:"diagnostico"`

	EventoACV *bool `json:"evento_acv"`
}

func (req *historiaRequest) aplicar(h *domain.HistoriaClinica) error {
	if req.PacienteID != nil {
		h.PacienteID = *req.PacienteID
	}
	if req.FechaConsulta != nil {
		fecha, err := parseFecha(*req.FechaConsulta)
		if err != nil {
			return err
		}
		h.FechaConsulta = fecha
	}

	if req.Temperatura != nil {
		h.Temperatura = req.Temperatura
	}
	if req.PresionSistolica != nil {
		h.PresionSistolica = *req.PresionSistolica
	}
	if req.PresionDiastolica != nil {
		h.PresionDiastolica = *req.PresionDiastolica
	}
	if req.FrecuenciaCardiaca != nil {
		h.FrecuenciaCardiaca = req.FrecuenciaCardiaca
	}
	if req.FrecuenciaRespiratoria != nil {
		h.FrecuenciaRespiratoria = req.FrecuenciaRespiratoria
	}
	if req.Arritmia != nil {
		h.Arritmia = *req.Arritmia
	}
	if req.NotasSignos != nil {
		h.NotasSignos = req.NotasSignos
	}

	if req.Hipertension != nil {
		h.Hipertension = *req.Hipertension
	}
	if req.Diabetes != nil {
		h.Diabetes = *req.Diabetes
	}

	if req.Peso != nil {
		h.Peso = *req.Peso
	}
	if req.Altura != nil {
		h.Altura = *req.Altura
	}

	if req.Obesidad != nil {
		h.Obesidad = *req.Obesidad
	}
	if req.Tabaquismo != nil {
		h.Tabaquismo = *req.Tabaquismo
	}
	if req.Alcohol != nil {
		h.Alcohol = *req.Alcohol
	}
	if req.DrogasEstimulantes != nil {
		h.DrogasEstimulantes = *req.DrogasEstimulantes
	}
	if req.Sedentarismo != nil {
		h.Sedentarismo = *req.Sedentarismo
	}
	if req.EnfermedadCardiacaPrevia != nil {
		h.EnfermedadCardiacaPrevia = *req.EnfermedadCardiacaPrevia
	}
	if req.Estres != nil {
		h.Estres = *req.Estres
	}
	if req.AntecedentesFamiliaresACV != nil {
		h.AntecedentesFamiliaresACV = *req.AntecedentesFamiliaresACV
	}

	if req.MotivoConsulta != nil {
		h.MotivoConsulta = req.MotivoConsulta
	}
	if req.FechaAparicion != nil {
		fecha, err := parseFecha(*req.FechaAparicion)
		if err != nil {
			return err
		}
		h.FechaAparicion = &fecha
	}
	if req.CondicionesPrevias != nil {
		h.CondicionesPrevias = req.CondicionesPrevias
	}
	if req.HistorialFamiliar != nil {
		h.HistorialFamiliar = req.HistorialFamiliar
	}
	if req.Medicamentos != nil {
		h.Medicamentos = req.Medicamentos
	}
	if req.Diagnostico != nil {
		h.Diagnostico = req.Diagnostico
	}

	if req.EventoACV != nil {
		h.EventoACV = *req.EventoACV
	}

	return nil
}

func (h *HistoriaHandler) GetAll(c *fiber.Ctx) error {
	var desde, hasta *time.Time

	if valor := c.Query("desde"); valor != "" {
		fecha, err := parseFecha(valor)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "desde inválido, use YYYY-MM-DD"})
		}
		desde = &fecha
	}
	if valor := c.Query("hasta"); valor != "" {
		fecha, err := parseFecha(valor)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "hasta inválido, use YYYY-MM-DD"})
		}
		hasta = &fecha
	}

	historias, err := h.service.GetAll(desde, hasta)
	if err != nil {
		return responderError(c, err)
	}
	if historias == nil {
		historias = []domain.HistoriaClinica{}
	}
	return c.JSON(historias)
}

func (h *HistoriaHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	historia, err := h.service.GetByID(id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(historia)
}

func (h *HistoriaHandler) Create(c *fiber.Ctx) error {
	var req historiaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo inválido"})
	}

	var historia domain.HistoriaClinica
	if err := req.aplicar(&historia); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "fecha inválida, use YYYY-MM-DD"})
	}

	if err := h.service.Create(&historia); err != nil {
		return responderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(historia)
}

func (h *HistoriaHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	var req historiaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo inválido"})
	}

	historia, err := h.service.GetByID(id)
	if err != nil {
		return responderError(c, err)
	}

	if err := req.aplicar(historia); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "fecha inválida, use YYYY-MM-DD"})
	}

	if err := h.service.Update(historia); err != nil {
		return responderError(c, err)
	}

	return c.JSON(historia)
}

func (h *HistoriaHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	if err := h.service.Delete(id); err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"mensaje": "historia eliminada"})
}

// GetPorPaciente retorna el listado ligero del historial de un paciente
func (h *HistoriaHandler) GetPorPaciente(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	resumen, err := h.service.GetPorPaciente(id)
	if err != nil {
		return responderError(c, err)
	}
	if resumen == nil {
		resumen = []domain.ResumenHistoria{}
	}
	return c.JSON(resumen)
}

// GetResumen retorna el historial completo con su análisis estadístico
func (h *HistoriaHandler) GetResumen(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	resumen, err := h.service.GetResumen(id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(resumen)
}
