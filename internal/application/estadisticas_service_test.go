package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicastrol/Sistema-acv/internal/domain"
)

func estadisticasRepoVacio() *estadisticasRepoMock {
	return &estadisticasRepoMock{
		TotalPacientesFn:  func() (int, error) { return 0, nil },
		TotalEventosACVFn: func() (int, error) { return 0, nil },
		EventosACVPorMesFn: func(desde time.Time) (map[string]int, error) {
			return map[string]int{}, nil
		},
		ConteoFactorFn:     func(factor string) (int, error) { return 0, nil },
		PacientesPorSexoFn: func() ([]domain.ConteoSexo, error) { return nil, nil },
		FechasNacimientoFn: func() ([]time.Time, error) { return nil, nil },
	}
}

func TestEstadisticasPoblacionVacia(t *testing.T) {
	service := NewEstadisticasService(estadisticasRepoVacio())

	stats, err := service.Get()
	require.NoError(t, err)

	assert.Zero(t, stats.TotalPacientes)
	assert.Zero(t, stats.TotalACV)
	// Sin división por cero
	assert.Zero(t, stats.TasaACV)

	require.Len(t, stats.IncidenciaMensual, 12)
	for _, mes := range stats.IncidenciaMensual {
		assert.Zero(t, mes.ACV)
	}

	require.Len(t, stats.PrevalenciaFactores, 6)
	for factor, prevalencia := range stats.PrevalenciaFactores {
		assert.Zero(t, prevalencia, factor)
	}

	assert.Empty(t, stats.DistribucionSexo)
	for _, rango := range stats.DistribucionEdad {
		assert.Zero(t, rango.Cuenta)
	}
}

func TestEstadisticasTasaYPrevalencia(t *testing.T) {
	repo := estadisticasRepoVacio()
	repo.TotalPacientesFn = func() (int, error) { return 8, nil }
	repo.TotalEventosACVFn = func() (int, error) { return 2, nil }
	repo.ConteoFactorFn = func(factor string) (int, error) {
		if factor == "hipertension" {
			return 4, nil
		}
		return 0, nil
	}

	service := NewEstadisticasService(repo)

	stats, err := service.Get()
	require.NoError(t, err)

	assert.InDelta(t, 0.25, stats.TasaACV, 1e-9)
	assert.InDelta(t, 0.5, stats.PrevalenciaFactores["hipertension"], 1e-9)
	assert.Zero(t, stats.PrevalenciaFactores["diabetes"])
}

func TestEstadisticasIncidenciaMensual(t *testing.T) {
	ahora := time.Now()
	mesActual := ahora.Format("2006-01")
	mesAnterior := ahora.AddDate(0, -1, 0).Format("2006-01")

	repo := estadisticasRepoVacio()
	repo.EventosACVPorMesFn = func(desde time.Time) (map[string]int, error) {
		return map[string]int{
			mesActual:   3,
			mesAnterior: 1,
		}, nil
	}

	service := NewEstadisticasService(repo)

	stats, err := service.Get()
	require.NoError(t, err)

	require.Len(t, stats.IncidenciaMensual, 12)
	// Ascendente: el mes actual cierra la serie
	assert.Equal(t, mesActual, stats.IncidenciaMensual[11].Mes)
	assert.Equal(t, 3, stats.IncidenciaMensual[11].ACV)
	assert.Equal(t, mesAnterior, stats.IncidenciaMensual[10].Mes)
	assert.Equal(t, 1, stats.IncidenciaMensual[10].ACV)
	// El resto queda relleno con cero
	for _, mes := range stats.IncidenciaMensual[:10] {
		assert.Zero(t, mes.ACV)
	}

	for i := 1; i < 12; i++ {
		assert.Less(t, stats.IncidenciaMensual[i-1].Mes, stats.IncidenciaMensual[i].Mes)
	}
}

func TestEstadisticasDistribucionEdad(t *testing.T) {
	ahora := time.Now()
	repo := estadisticasRepoVacio()
	repo.TotalPacientesFn = func() (int, error) { return 4, nil }
	repo.FechasNacimientoFn = func() ([]time.Time, error) {
		return []time.Time{
			ahora.AddDate(-25, 0, 0), // 18-29
			ahora.AddDate(-10, 0, 0), // menor de 18, cae en el primer rango
			ahora.AddDate(-45, 0, 0), // 40-49
			ahora.AddDate(-85, 0, 0), // 80+
		}, nil
	}

	service := NewEstadisticasService(repo)

	stats, err := service.Get()
	require.NoError(t, err)

	cuentas := make(map[string]int)
	total := 0
	for _, rango := range stats.DistribucionEdad {
		cuentas[rango.Rango] = rango.Cuenta
		total += rango.Cuenta
	}

	assert.Equal(t, 2, cuentas["18-29"])
	assert.Equal(t, 1, cuentas["40-49"])
	assert.Equal(t, 1, cuentas["80+"])
	// Los rangos particionan la población completa
	assert.Equal(t, 4, total)
}

func TestEstadisticasDistribucionEdadFechaFutura(t *testing.T) {
	// Una fecha de nacimiento futura solo puede venir de filas insertadas por
	// fuera del API; la edad negativa cae en el primer rango y no se pierde
	ahora := time.Now()
	repo := estadisticasRepoVacio()
	repo.TotalPacientesFn = func() (int, error) { return 2, nil }
	repo.FechasNacimientoFn = func() ([]time.Time, error) {
		return []time.Time{
			ahora.AddDate(2, 0, 0),
			ahora.AddDate(-35, 0, 0), // 30-39
		}, nil
	}

	service := NewEstadisticasService(repo)

	stats, err := service.Get()
	require.NoError(t, err)

	cuentas := make(map[string]int)
	total := 0
	for _, rango := range stats.DistribucionEdad {
		cuentas[rango.Rango] = rango.Cuenta
		total += rango.Cuenta
	}

	assert.Equal(t, 1, cuentas["18-29"])
	assert.Equal(t, 1, cuentas["30-39"])
	assert.Equal(t, 2, total)
}

func TestEstadisticasCache(t *testing.T) {
	llamadas := 0
	repo := estadisticasRepoVacio()
	repo.TotalPacientesFn = func() (int, error) {
		llamadas++
		return 5, nil
	}

	service := NewEstadisticasService(repo)

	_, err := service.Get()
	require.NoError(t, err)
	_, err = service.Get()
	require.NoError(t, err)

	// La segunda lectura sale del caché
	assert.Equal(t, 1, llamadas)

	service.Invalidar()
	_, err = service.Get()
	require.NoError(t, err)
	assert.Equal(t, 2, llamadas)
}
