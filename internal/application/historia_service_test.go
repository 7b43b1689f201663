package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicastrol/Sistema-acv/internal/domain"
)

func historiaValida() *domain.HistoriaClinica {
	return &domain.HistoriaClinica{
		PacienteID:        1,
		FechaConsulta:     time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		PresionSistolica:  120,
		PresionDiastolica: 80,
		Peso:              70,
		Altura:            1.75,
	}
}

func pacienteRepoExistente() *pacienteRepoMock {
	return &pacienteRepoMock{
		GetByIDFn: func(id int) (*domain.Paciente, error) {
			return &domain.Paciente{ID: id, Nombre: "Ana Torres"}, nil
		},
	}
}

func TestHistoriaCreateCalculaIMC(t *testing.T) {
	var guardada *domain.HistoriaClinica
	repo := &historiaRepoMock{
		CreateFn: func(h *domain.HistoriaClinica) error {
			guardada = h
			return nil
		},
	}

	service := NewHistoriaService(repo, pacienteRepoExistente())
	historia := historiaValida()

	require.NoError(t, service.Create(historia))
	require.NotNil(t, guardada)
	require.NotNil(t, guardada.IMC)
	// 70 / 1.75² = 22.86
	assert.InDelta(t, 22.86, *guardada.IMC, 0.01)
}

func TestHistoriaCreatePacienteInexistente(t *testing.T) {
	pacienteRepo := &pacienteRepoMock{
		GetByIDFn: func(id int) (*domain.Paciente, error) {
			return nil, domain.ErrNoEncontrado
		},
	}

	service := NewHistoriaService(&historiaRepoMock{}, pacienteRepo)

	err := service.Create(historiaValida())
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

func TestHistoriaCreateFechaFutura(t *testing.T) {
	service := NewHistoriaService(&historiaRepoMock{}, pacienteRepoExistente())

	historia := historiaValida()
	historia.FechaConsulta = time.Now().AddDate(0, 0, 2)

	err := service.Create(historia)
	var validacion *ErrorValidacion
	require.ErrorAs(t, err, &validacion)
	assert.Contains(t, validacion.Mensaje, "futura")
}

func TestHistoriaUpdateRecalculaIMC(t *testing.T) {
	var actualizada *domain.HistoriaClinica
	repo := &historiaRepoMock{
		UpdateFn: func(h *domain.HistoriaClinica) error {
			actualizada = h
			return nil
		},
	}

	service := NewHistoriaService(repo, pacienteRepoExistente())

	historia := historiaValida()
	historia.ID = 5
	historia.Peso = 90
	imcViejo := 22.86
	historia.IMC = &imcViejo

	require.NoError(t, service.Update(historia))
	require.NotNil(t, actualizada.IMC)
	// 90 / 1.75² = 29.39
	assert.InDelta(t, 29.39, *actualizada.IMC, 0.01)
}

func TestHistoriaGetResumenSinHistorias(t *testing.T) {
	repo := &historiaRepoMock{
		GetByPacienteFn: func(pacienteID int) ([]domain.HistoriaClinica, error) {
			return nil, nil
		},
	}

	service := NewHistoriaService(repo, pacienteRepoExistente())

	_, err := service.GetResumen(1)
	assert.ErrorIs(t, err, domain.ErrSinHistorias)
}

func TestHistoriaGetResumen(t *testing.T) {
	temp1, temp2 := 36.5, 37.5
	fc1, fc2 := 80, 90
	imc1, imc2 := 24.0, 26.0
	motivo1 := "dolor de cabeza"
	motivo2 := "Dolor de Cabeza" // se normaliza a minúsculas
	motivo3 := "mareo"
	condiciones := "Hipertensión, diabetes"

	historias := []domain.HistoriaClinica{
		{Temperatura: &temp1, FrecuenciaCardiaca: &fc1, IMC: &imc1, MotivoConsulta: &motivo1, CondicionesPrevias: &condiciones},
		{Temperatura: &temp2, FrecuenciaCardiaca: &fc2, IMC: &imc2, MotivoConsulta: &motivo2},
		{MotivoConsulta: &motivo3},
	}

	repo := &historiaRepoMock{
		GetByPacienteFn: func(pacienteID int) ([]domain.HistoriaClinica, error) {
			return historias, nil
		},
	}

	service := NewHistoriaService(repo, pacienteRepoExistente())

	resumen, err := service.GetResumen(1)
	require.NoError(t, err)

	analisis := resumen.AnalisisResumen
	assert.Equal(t, 3, analisis.TotalConsultas)
	// Los promedios dividen sobre el total de consultas
	assert.InDelta(t, 24.67, analisis.PromedioTemperatura, 0.01)
	assert.InDelta(t, 56.67, analisis.PromedioFrecuenciaCardiaca, 0.01)
	assert.InDelta(t, 16.67, analisis.PromedioIMC, 0.01)

	require.NotEmpty(t, analisis.MotivosFrecuentes)
	assert.Equal(t, "dolor de cabeza", analisis.MotivosFrecuentes[0].Texto)
	assert.Equal(t, 2, analisis.MotivosFrecuentes[0].Cuenta)

	require.Len(t, analisis.CondicionesFrecuentes, 2)
	assert.Equal(t, "hipertensión", analisis.CondicionesFrecuentes[0].Texto)
}

func TestHistoriaGetPorPaciente(t *testing.T) {
	motivo := "control"
	imc := 23.5
	repo := &historiaRepoMock{
		GetByPacienteFn: func(pacienteID int) ([]domain.HistoriaClinica, error) {
			return []domain.HistoriaClinica{
				{ID: 8, FechaConsulta: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), MotivoConsulta: &motivo, IMC: &imc},
			}, nil
		},
	}

	service := NewHistoriaService(repo, pacienteRepoExistente())

	resumen, err := service.GetPorPaciente(1)
	require.NoError(t, err)
	require.Len(t, resumen, 1)
	assert.Equal(t, 8, resumen[0].ID)
	assert.Equal(t, "2024-02-01", resumen[0].FechaConsulta)
}
