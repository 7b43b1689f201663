package application

import (
	"fmt"
	"log"
	"time"

	"github.com/dicastrol/Sistema-acv/internal/domain"
)

// CorreoCitas abstrae el envío de correos de citas; nil deshabilita el envío
type CorreoCitas interface {
	EnviarConfirmacionCita(destinatario, nombrePaciente string, cita *domain.Cita) error
	EnviarRecordatorioCita(destinatario, nombrePaciente string, cita *domain.Cita) error
}

type CitaService struct {
	citaRepo     domain.CitaRepository
	pacienteRepo domain.PacienteRepository
	correo       CorreoCitas
}

// NewCitaService crea una nueva instancia del servicio de citas
func NewCitaService(citaRepo domain.CitaRepository, pacienteRepo domain.PacienteRepository, correo CorreoCitas) *CitaService {
	return &CitaService{
		citaRepo:     citaRepo,
		pacienteRepo: pacienteRepo,
		correo:       correo,
	}
}

// GetAll retorna todas las citas
func (s *CitaService) GetAll() ([]domain.Cita, error) {
	return s.citaRepo.GetAll()
}

// GetHoy retorna las citas del día de hoy ordenadas por hora
func (s *CitaService) GetHoy() ([]domain.Cita, error) {
	return s.citaRepo.GetPorDia(time.Now())
}

// GetByID obtiene una cita por su ID
func (s *CitaService) GetByID(id int) (*domain.Cita, error) {
	return s.citaRepo.GetByID(id)
}

// Create agenda una nueva cita para un paciente existente y, si el paciente
// tiene email registrado, envía la confirmación
func (s *CitaService) Create(cita *domain.Cita) error {
	if err := s.validar(cita); err != nil {
		return err
	}

	paciente, err := s.pacienteRepo.GetByID(cita.PacienteID)
	if err != nil {
		return err
	}

	if cita.Estado == "" {
		cita.Estado = domain.CitaEsperada
	}

	if err := s.citaRepo.Create(cita); err != nil {
		return err
	}
	cita.PacienteNombre = paciente.Nombre

	// El correo no debe demorar ni hacer fallar el agendamiento
	if s.correo != nil && paciente.Email != nil && *paciente.Email != "" {
		destinatario := *paciente.Email
		citaCopia := *cita
		go func() {
			if err := s.correo.EnviarConfirmacionCita(destinatario, paciente.Nombre, &citaCopia); err != nil {
				log.Printf("Error enviando confirmación de cita %d: %v", citaCopia.ID, err)
			}
		}()
	}

	return nil
}

// Update actualiza una cita existente
func (s *CitaService) Update(cita *domain.Cita) error {
	if err := s.validar(cita); err != nil {
		return err
	}

	return s.citaRepo.Update(cita)
}

// Delete elimina una cita
func (s *CitaService) Delete(id int) error {
	return s.citaRepo.Delete(id)
}

// EnviarRecordatorios envía el recordatorio de las citas esperadas del día
// dado. Retorna cuántos correos se enviaron.
func (s *CitaService) EnviarRecordatorios(dia time.Time) (int, error) {
	if s.correo == nil {
		return 0, nil
	}

	citas, err := s.citaRepo.GetPorDia(dia)
	if err != nil {
		return 0, err
	}

	enviados := 0
	for i := range citas {
		cita := citas[i]
		if cita.Estado != domain.CitaEsperada {
			continue
		}

		paciente, err := s.pacienteRepo.GetByID(cita.PacienteID)
		if err != nil {
			log.Printf("Recordatorio de cita %d: paciente %d no disponible: %v", cita.ID, cita.PacienteID, err)
			continue
		}
		if paciente.Email == nil || *paciente.Email == "" {
			continue
		}

		if err := s.correo.EnviarRecordatorioCita(*paciente.Email, paciente.Nombre, &cita); err != nil {
			log.Printf("Error enviando recordatorio de cita %d: %v", cita.ID, err)
			continue
		}
		enviados++
	}

	return enviados, nil
}

func (s *CitaService) validar(cita *domain.Cita) error {
	var errores []error

	if cita.PacienteID <= 0 {
		errores = append(errores, fmt.Errorf("el paciente_id es requerido"))
	}
	if cita.FechaHora.IsZero() {
		errores = append(errores, fmt.Errorf("la fecha y hora son requeridas"))
	}
	if cita.Servicio == "" {
		errores = append(errores, fmt.Errorf("el servicio es requerido"))
	}
	if cita.Estado != "" && !domain.EstadoCitaValido(cita.Estado) {
		errores = append(errores, fmt.Errorf("estado de cita inválido: %s", cita.Estado))
	}

	if len(errores) > 0 {
		return nuevoErrorValidacion(&Validator{}, errores)
	}
	return nil
}
