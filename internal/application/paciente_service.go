package application

import (
	"fmt"

	"github.com/dicastrol/Sistema-acv/internal/domain"
)

// ErrorValidacion agrupa los mensajes de validación de una petición;
// los handlers lo traducen a un 400 con el detalle por campo
type ErrorValidacion struct {
	Mensaje string
}

func (e *ErrorValidacion) Error() string {
	return e.Mensaje
}

func nuevoErrorValidacion(v *Validator, errores []error) error {
	return &ErrorValidacion{Mensaje: v.FormatValidationErrors(errores)}
}

type PacienteService struct {
	pacienteRepo domain.PacienteRepository
	validator    *Validator
}

// NewPacienteService crea una nueva instancia del servicio de pacientes
func NewPacienteService(pacienteRepo domain.PacienteRepository) *PacienteService {
	return &PacienteService{
		pacienteRepo: pacienteRepo,
		validator:    &Validator{},
	}
}

// GetAll retorna todos los pacientes
func (s *PacienteService) GetAll() ([]domain.Paciente, error) {
	pacientes, err := s.pacienteRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("error al listar pacientes: %w", err)
	}
	return pacientes, nil
}

// GetByID obtiene un paciente por su ID
func (s *PacienteService) GetByID(id int) (*domain.Paciente, error) {
	return s.pacienteRepo.GetByID(id)
}

// Create registra un nuevo paciente validando sus datos y la unicidad
// del documento
func (s *PacienteService) Create(p *domain.Paciente) error {
	if errores := s.validator.ValidatePaciente(p); len(errores) > 0 {
		return nuevoErrorValidacion(s.validator, errores)
	}

	// Verificación explícita de unicidad antes de insertar; la restricción
	// UNIQUE de la base cubre la carrera restante
	existente, err := s.pacienteRepo.FindByDocumento(p.Documento)
	if err != nil {
		return fmt.Errorf("error al verificar documento: %w", err)
	}
	if existente != nil {
		return domain.ErrDocumentoDuplicado
	}

	return s.pacienteRepo.Create(p)
}

// Update actualiza un paciente existente
func (s *PacienteService) Update(p *domain.Paciente) error {
	if errores := s.validator.ValidatePaciente(p); len(errores) > 0 {
		return nuevoErrorValidacion(s.validator, errores)
	}

	// Si el documento cambió, no debe chocar con otro paciente
	existente, err := s.pacienteRepo.FindByDocumento(p.Documento)
	if err != nil {
		return fmt.Errorf("error al verificar documento: %w", err)
	}
	if existente != nil && existente.ID != p.ID {
		return domain.ErrDocumentoDuplicado
	}

	return s.pacienteRepo.Update(p)
}

// Delete elimina un paciente junto con sus historias y citas
func (s *PacienteService) Delete(id int) error {
	return s.pacienteRepo.Delete(id)
}
