package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dicastrol/Sistema-acv/internal/application"
	"github.com/dicastrol/Sistema-acv/internal/domain"
)

type PacienteHandler struct {
	service *application.PacienteService
}

func NewPacienteHandler(service *application.PacienteService) *PacienteHandler {
	return &PacienteHandler{
		service: service,
	}
}

// pacienteRequest usa punteros en todos los campos para distinguir entre
// campo ausente y valor en cero; el PUT solo pisa lo que llega
type pacienteRequest struct {
	Nombre          *string `json:"nombre"`
	TipoDocumento   *string `json:"tipo_documento"`
	Documento       *string `json:"documento"`
	FechaNacimiento *string `json:"fecha_nacimiento"`
	Sexo            *string `json:"sexo"`

	Telefono       *string `json:"telefono"`
	Direccion      *string `json:"direccion"`
	Email          *string `json:"email"`
	EstadoCivil    *string `json:"estado_civil"`
	Ocupacion      *string `json:"ocupacion"`
	GrupoSanguineo *string `json:"grupo_sanguineo"`
	Aseguradora    *string `json:"aseguradora"`

	ContactoEmergencia           *string `json:"contacto_emergencia"`
	ContactoEmergenciaTelefono   *string `json:"contacto_emergencia_telefono"`
	ContactoEmergenciaParentesco *string `json:"contacto_emergencia_parentesco"`

	Hipertension              *bool `json:"hipertension"`
	Diabetes                  *bool `json:"diabetes"`
	Tabaquismo                *bool `json:"tabaquismo"`
	Sedentarismo              *bool `json:"sedentarismo"`
	ColesterolAlto            *bool `json:"colesterol_alto"`
	AntecedentesFamiliaresACV *bool `json:"antecedentes_familiares_acv"`
	TuvoACV                   *bool `json:"tuvo_acv"`
}

// aplicar vuelca los campos presentes del request sobre el paciente
func (req *pacienteRequest) aplicar(p *domain.Paciente) error {
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.TipoDocumento != nil {
		p.TipoDocumento = *req.TipoDocumento
	}
	if req.Documento != nil {
		p.Documento = *req.Documento
	}
	if req.FechaNacimiento != nil {
		fecha, err := parseFecha(*req.FechaNacimiento)
		if err != nil {
			return err
		}
		p.FechaNacimiento = fecha
	}
	if req.Sexo != nil {
		p.Sexo = *req.Sexo
	}

	if req.Telefono != nil {
		p.Telefono = req.Telefono
	}
	if req.Direccion != nil {
		p.Direccion = req.Direccion
	}
	if req.Email != nil {
		p.Email = req.Email
	}
	if req.EstadoCivil != nil {
		p.EstadoCivil = req.EstadoCivil
	}
	if req.Ocupacion != nil {
		p.Ocupacion = req.Ocupacion
	}
	if req.GrupoSanguineo != nil {
		p.GrupoSanguineo = req.GrupoSanguineo
	}
	if req.Aseguradora != nil {
		p.Aseguradora = req.Aseguradora
	}

	if req.ContactoEmergencia != nil {
		p.ContactoEmergencia = req.ContactoEmergencia
	}
	if req.ContactoEmergenciaTelefono != nil {
		p.ContactoEmergenciaTelefono = req.ContactoEmergenciaTelefono
	}
	if req.ContactoEmergenciaParentesco != nil {
		p.ContactoEmergenciaParentesco = req.ContactoEmergenciaParentesco
	}

	if req.Hipertension != nil {
		p.Hipertension = *req.Hipertension
	}
	if req.Diabetes != nil {
		p.Diabetes = *req.Diabetes
	}
	if req.Tabaquismo != nil {
		p.Tabaquismo = *req.Tabaquismo
	}
	if req.Sedentarismo != nil {
		p.Sedentarismo = *req.Sedentarismo
	}
	if req.ColesterolAlto != nil {
		p.ColesterolAlto = *req.ColesterolAlto
	}
	if req.AntecedentesFamiliaresACV != nil {
		p.AntecedentesFamiliaresACV = *req.AntecedentesFamiliaresACV
	}
	if req.TuvoACV != nil {
		p.TuvoACV = *req.TuvoACV
	}

	return nil
}

func (h *PacienteHandler) GetAll(c *fiber.Ctx) error {
	pacientes, err := h.service.GetAll()
	if err != nil {
		return responderError(c, err)
	}
	if pacientes == nil {
		pacientes = []domain.Paciente{}
	}
	return c.JSON(pacientes)
}

func (h *PacienteHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	paciente, err := h.service.GetByID(id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(paciente)
}

func (h *PacienteHandler) Create(c *fiber.Ctx) error {
	var req pacienteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo inválido"})
	}

	var paciente domain.Paciente
	if err := req.aplicar(&paciente); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "fecha_nacimiento inválida, use YYYY-MM-DD"})
	}

	if err := h.service.Create(&paciente); err != nil {
		return responderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(paciente)
}

func (h *PacienteHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	var req pacienteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo inválido"})
	}

	// Actualización parcial: se parte del registro actual y se pisa solo
	// lo que la petición trae
	paciente, err := h.service.GetByID(id)
	if err != nil {
		return responderError(c, err)
	}

	if err := req.aplicar(paciente); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "fecha_nacimiento inválida, use YYYY-MM-DD"})
	}

	if err := h.service.Update(paciente); err != nil {
		return responderError(c, err)
	}

	return c.JSON(paciente)
}

func (h *PacienteHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}

	if err := h.service.Delete(id); err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"mensaje": "paciente eliminado"})
}
