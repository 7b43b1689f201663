package ml

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicastrol/Sistema-acv/internal/domain"
)

func TestCalcularEdad(t *testing.T) {
	nacimiento := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	consulta := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.InDelta(t, 54.0, CalcularEdad(nacimiento, consulta), 0.05)
}

func TestCalcularEdadFraccionaria(t *testing.T) {
	nacimiento := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	consulta := time.Date(2000, 7, 1, 0, 0, 0, 0, time.UTC)

	// Medio año, con un decimal
	assert.InDelta(t, 0.5, CalcularEdad(nacimiento, consulta), 0.05)
}

func TestCodificarSexo(t *testing.T) {
	m, err := CodificarSexo("M")
	require.NoError(t, err)
	assert.Equal(t, 0.0, m)

	f, err := CodificarSexo("F")
	require.NoError(t, err)
	assert.Equal(t, 1.0, f)
}

func TestCodificarSexoNoSoportado(t *testing.T) {
	_, err := CodificarSexo("X")
	assert.ErrorIs(t, err, domain.ErrSexoNoSoportado)

	_, err = CodificarSexo("")
	assert.ErrorIs(t, err, domain.ErrSexoNoSoportado)
}

func TestNuevoVector(t *testing.T) {
	fila := domain.FilaPrediccion{
		PacienteID:               1,
		Sexo:                     "F",
		FechaNacimiento:          time.Date(1960, 6, 15, 0, 0, 0, 0, time.UTC),
		FechaConsulta:            time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		Temperatura:              36.8,
		PresionSistolica:         150,
		PresionDiastolica:        95,
		FrecuenciaCardiaca:       88,
		FrecuenciaRespiratoria:   18,
		Peso:                     82,
		Altura:                   1.65,
		IMC:                      30.12,
		Arritmia:                 true,
		Tabaquismo:               true,
		EnfermedadCardiacaPrevia: true,
	}

	x, err := NuevoVector(fila)
	require.NoError(t, err)
	require.Len(t, x, NumCaracteristicas)

	assert.InDelta(t, 64.0, x[idxEdad], 0.05)
	assert.Equal(t, 1.0, x[idxSexo])
	assert.Equal(t, 36.8, x[idxTemperatura])
	assert.Equal(t, 150.0, x[idxPresionSistolica])
	assert.Equal(t, 95.0, x[idxPresionDiastolica])
	assert.Equal(t, 30.12, x[idxIMC])
	assert.Equal(t, 1.0, x[idxArritmia])
	assert.Equal(t, 1.0, x[idxTabaquismo])
	assert.Equal(t, 1.0, x[idxEnfermedadCardiacaPrevia])
	assert.Equal(t, 0.0, x[idxObesidad])

	// Las características de tendencia van con sus valores fijos
	assert.Equal(t, 0.0, x[idxDeltaPA])
	assert.Equal(t, 1.0, x[idxConsultasUltimoAno])
	assert.Equal(t, 0.0, x[idxStdFCUltimoAno])
}

func TestNuevoVectorSexoInvalido(t *testing.T) {
	fila := domain.FilaPrediccion{Sexo: "otro"}

	_, err := NuevoVector(fila)
	assert.ErrorIs(t, err, domain.ErrSexoNoSoportado)
}

func TestIndicesExplicablesExcluyenDemografiaYTendencias(t *testing.T) {
	excluidos := map[int]bool{
		idxEdad: true, idxSexo: true,
		idxDeltaPA: true, idxConsultasUltimoAno: true, idxStdFCUltimoAno: true,
	}

	assert.Len(t, IndicesExplicables, 16)
	for _, idx := range IndicesExplicables {
		assert.False(t, excluidos[idx], "índice %d no debería ser explicable", idx)
	}
}
