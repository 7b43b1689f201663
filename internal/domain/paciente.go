package domain

import "time"

// Paciente representa un paciente del sistema
type Paciente struct {
	ID              int       `json:"id"`
	Nombre          string    `json:"nombre"`
	TipoDocumento   string    `json:"tipo_documento"` // CC, TI, CE
	Documento       string    `json:"documento"`
	FechaNacimiento time.Time `json:"fecha_nacimiento"`
	Sexo            string    `json:"sexo"`

	// Datos de contacto
	Telefono       *string `json:"telefono,omitempty"`
	Direccion      *string `json:"direccion,omitempty"`
	Email          *string `json:"email,omitempty"`
	EstadoCivil    *string `json:"estado_civil,omitempty"`
	Ocupacion      *string `json:"ocupacion,omitempty"`
	GrupoSanguineo *string `json:"grupo_sanguineo,omitempty"`
	Aseguradora    *string `json:"aseguradora,omitempty"`

	// Contacto de emergencia
	ContactoEmergencia           *string `json:"contacto_emergencia,omitempty"`
	ContactoEmergenciaTelefono   *string `json:"contacto_emergencia_telefono,omitempty"`
	ContactoEmergenciaParentesco *string `json:"contacto_emergencia_parentesco,omitempty"`

	// Factores de riesgo
	Hipertension              bool `json:"hipertension"`
	Diabetes                  bool `json:"diabetes"`
	Tabaquismo                bool `json:"tabaquismo"`
	Sedentarismo              bool `json:"sedentarismo"`
	ColesterolAlto            bool `json:"colesterol_alto"`
	AntecedentesFamiliaresACV bool `json:"antecedentes_familiares_acv"`

	// Indica si el paciente ya sufrió un ACV
	TuvoACV bool `json:"tuvo_acv"`
}

// PacienteRepository define las operaciones con pacientes
type PacienteRepository interface {
	// GetAll retorna todos los pacientes
	GetAll() ([]Paciente, error)
	// GetByID obtiene un paciente por su ID
	GetByID(id int) (*Paciente, error)
	// FindByDocumento busca un paciente por su número de documento.
	// Retorna nil sin error cuando no existe.
	FindByDocumento(documento string) (*Paciente, error)
	// Create crea un nuevo paciente
	Create(paciente *Paciente) error
	// Update actualiza los datos de un paciente existente
	Update(paciente *Paciente) error
	// Delete elimina un paciente; sus historias y citas caen en cascada
	Delete(id int) error
}
