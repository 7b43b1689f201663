package application

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicastrol/Sistema-acv/internal/domain"
)

func citaValida() *domain.Cita {
	return &domain.Cita{
		PacienteID: 1,
		FechaHora:  time.Date(2026, 9, 10, 9, 30, 0, 0, time.UTC),
		Servicio:   "Consulta general",
	}
}

func TestCitaCreateEstadoPorDefecto(t *testing.T) {
	var guardada *domain.Cita
	citaRepo := &citaRepoMock{
		CreateFn: func(cita *domain.Cita) error {
			guardada = cita
			cita.ID = 4
			return nil
		},
	}

	service := NewCitaService(citaRepo, pacienteRepoExistente(), nil)
	cita := citaValida()

	require.NoError(t, service.Create(cita))
	require.NotNil(t, guardada)
	assert.Equal(t, domain.CitaEsperada, guardada.Estado)
	assert.Equal(t, "Ana Torres", cita.PacienteNombre)
}

func TestCitaCreatePacienteInexistente(t *testing.T) {
	pacienteRepo := &pacienteRepoMock{
		GetByIDFn: func(id int) (*domain.Paciente, error) {
			return nil, domain.ErrNoEncontrado
		},
	}

	service := NewCitaService(&citaRepoMock{}, pacienteRepo, nil)

	err := service.Create(citaValida())
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

func TestCitaCreateEstadoInvalido(t *testing.T) {
	service := NewCitaService(&citaRepoMock{}, pacienteRepoExistente(), nil)

	cita := citaValida()
	cita.Estado = "pendiente"

	err := service.Create(cita)
	var validacion *ErrorValidacion
	require.ErrorAs(t, err, &validacion)
	assert.Contains(t, validacion.Mensaje, "estado")
}

func TestCitaCreateCamposFaltantes(t *testing.T) {
	service := NewCitaService(&citaRepoMock{}, pacienteRepoExistente(), nil)

	err := service.Create(&domain.Cita{})
	var validacion *ErrorValidacion
	require.ErrorAs(t, err, &validacion)
	assert.Contains(t, validacion.Mensaje, "paciente_id")
	assert.Contains(t, validacion.Mensaje, "servicio")
}

func TestEnviarRecordatorios(t *testing.T) {
	email := "ana@correo.com"
	pacienteRepo := &pacienteRepoMock{
		GetByIDFn: func(id int) (*domain.Paciente, error) {
			if id == 2 {
				// Paciente sin email registrado
				return &domain.Paciente{ID: id, Nombre: "Luis"}, nil
			}
			return &domain.Paciente{ID: id, Nombre: "Ana Torres", Email: &email}, nil
		},
	}

	citaRepo := &citaRepoMock{
		GetPorDiaFn: func(dia time.Time) ([]domain.Cita, error) {
			return []domain.Cita{
				{ID: 1, PacienteID: 1, Estado: domain.CitaEsperada},
				{ID: 2, PacienteID: 2, Estado: domain.CitaEsperada},
				{ID: 3, PacienteID: 1, Estado: domain.CitaCancelada},
			}, nil
		},
	}

	recordatorios := 0
	correo := &correoCitasMock{
		RecordatorioFn: func(destinatario, nombrePaciente string, cita *domain.Cita) error {
			recordatorios++
			assert.Equal(t, email, destinatario)
			return nil
		},
	}

	service := NewCitaService(citaRepo, pacienteRepo, correo)

	enviados, err := service.EnviarRecordatorios(time.Now())
	require.NoError(t, err)
	// Solo la cita esperada de un paciente con email
	assert.Equal(t, 1, enviados)
	assert.Equal(t, 1, recordatorios)
}

func TestEnviarRecordatoriosSinCorreo(t *testing.T) {
	service := NewCitaService(&citaRepoMock{}, pacienteRepoExistente(), nil)

	enviados, err := service.EnviarRecordatorios(time.Now())
	require.NoError(t, err)
	assert.Zero(t, enviados)
}

func TestEnviarRecordatoriosErrorDeEnvio(t *testing.T) {
	email := "ana@correo.com"
	pacienteRepo := &pacienteRepoMock{
		GetByIDFn: func(id int) (*domain.Paciente, error) {
			return &domain.Paciente{ID: id, Nombre: "Ana Torres", Email: &email}, nil
		},
	}
	citaRepo := &citaRepoMock{
		GetPorDiaFn: func(dia time.Time) ([]domain.Cita, error) {
			return []domain.Cita{{ID: 1, PacienteID: 1, Estado: domain.CitaEsperada}}, nil
		},
	}
	correo := &correoCitasMock{
		RecordatorioFn: func(destinatario, nombrePaciente string, cita *domain.Cita) error {
			return errors.New("smtp caído")
		},
	}

	service := NewCitaService(citaRepo, pacienteRepo, correo)

	// El fallo de un envío no tumba la pasada, solo no cuenta
	enviados, err := service.EnviarRecordatorios(time.Now())
	require.NoError(t, err)
	assert.Zero(t, enviados)
}
