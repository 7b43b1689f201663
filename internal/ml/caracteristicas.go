package ml

import (
	"math"
	"time"

	"github.com/dicastrol/Sistema-acv/internal/domain"
)

// El modelo es sensible al orden: este bloque fija el contrato de las 21
// características exactamente como se entrenó el clasificador. Cualquier
// cambio aquí invalida el artefacto.
const (
	idxEdad = iota
	idxSexo
	idxTemperatura
	idxPresionSistolica
	idxPresionDiastolica
	idxFrecuenciaCardiaca
	idxFrecuenciaRespiratoria
	idxPeso
	idxAltura
	idxIMC
	idxArritmia
	idxObesidad
	idxTabaquismo
	idxAlcohol
	idxDrogasEstimulantes
	idxSedentarismo
	idxEnfermedadCardiacaPrevia
	idxEstres
	idxDeltaPA
	idxConsultasUltimoAno
	idxStdFCUltimoAno

	// NumCaracteristicas es el ancho del vector de entrada del modelo
	NumCaracteristicas = idxStdFCUltimoAno + 1
)

// NombresCaracteristicas lista los nombres en el orden del vector
var NombresCaracteristicas = [NumCaracteristicas]string{
	"edad",
	"sexo",
	"temperatura",
	"presion_sistolica",
	"presion_diastolica",
	"frecuencia_cardiaca",
	"frecuencia_respiratoria",
	"peso",
	"altura",
	"imc",
	"arritmia",
	"obesidad",
	"tabaquismo",
	"alcohol",
	"drogas_estimulantes",
	"sedentarismo",
	"enfermedad_cardiaca_previa",
	"estres",
	"delta_pa",
	"consultas_ultimo_ano",
	"std_fc_ultimo_ano",
}

// IndicesExplicables son las características clínicas que pueden citarse como
// explicación de un riesgo alto. Excluye la demografía (edad, sexo) y las
// características de tendencia, que no son accionables en consulta.
var IndicesExplicables = []int{
	idxTemperatura,
	idxPresionSistolica,
	idxPresionDiastolica,
	idxFrecuenciaCardiaca,
	idxFrecuenciaRespiratoria,
	idxPeso,
	idxAltura,
	idxIMC,
	idxArritmia,
	idxObesidad,
	idxTabaquismo,
	idxAlcohol,
	idxDrogasEstimulantes,
	idxSedentarismo,
	idxEnfermedadCardiacaPrevia,
	idxEstres,
}

// Valores por defecto de las características de tendencia en predicción
// individual. En entrenamiento se calculan sobre el historial completo del
// paciente; al servir una sola historia se fijan igual que lo hacía el
// pipeline original. Ver DESIGN.md.
const (
	deltaPADefecto            = 0.0
	consultasUltimoAnoDefecto = 1.0
	stdFCUltimoAnoDefecto     = 0.0
)

// CalcularEdad retorna la edad en años a la fecha de consulta,
// redondeada a 1 decimal
func CalcularEdad(fechaNacimiento, fechaConsulta time.Time) float64 {
	dias := fechaConsulta.Sub(fechaNacimiento).Hours() / 24
	return math.Round(dias/365.25*10) / 10
}

// CodificarSexo mapea 'M'->0 y 'F'->1, la codificación usada al entrenar.
// Cualquier otro valor es un error explícito, no un código indefinido.
func CodificarSexo(sexo string) (float64, error) {
	switch sexo {
	case "M":
		return 0, nil
	case "F":
		return 1, nil
	}
	return 0, domain.ErrSexoNoSoportado
}

// NuevoVector arma el vector de 21 características a partir de la última
// historia del paciente unida con sus datos demográficos
func NuevoVector(fila domain.FilaPrediccion) ([]float64, error) {
	sexo, err := CodificarSexo(fila.Sexo)
	if err != nil {
		return nil, err
	}

	x := make([]float64, NumCaracteristicas)
	x[idxEdad] = CalcularEdad(fila.FechaNacimiento, fila.FechaConsulta)
	x[idxSexo] = sexo
	x[idxTemperatura] = fila.Temperatura
	x[idxPresionSistolica] = fila.PresionSistolica
	x[idxPresionDiastolica] = fila.PresionDiastolica
	x[idxFrecuenciaCardiaca] = fila.FrecuenciaCardiaca
	x[idxFrecuenciaRespiratoria] = fila.FrecuenciaRespiratoria
	x[idxPeso] = fila.Peso
	x[idxAltura] = fila.Altura
	x[idxIMC] = fila.IMC
	x[idxArritmia] = bool01(fila.Arritmia)
	x[idxObesidad] = bool01(fila.Obesidad)
	x[idxTabaquismo] = bool01(fila.Tabaquismo)
	x[idxAlcohol] = bool01(fila.Alcohol)
	x[idxDrogasEstimulantes] = bool01(fila.DrogasEstimulantes)
	x[idxSedentarismo] = bool01(fila.Sedentarismo)
	x[idxEnfermedadCardiacaPrevia] = bool01(fila.EnfermedadCardiacaPrevia)
	x[idxEstres] = bool01(fila.Estres)
	x[idxDeltaPA] = deltaPADefecto
	x[idxConsultasUltimoAno] = consultasUltimoAnoDefecto
	x[idxStdFCUltimoAno] = stdFCUltimoAnoDefecto
	return x, nil
}

func bool01(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
