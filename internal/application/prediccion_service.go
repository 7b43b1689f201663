package application

import (
	"fmt"
	"log"
	"sort"

	"github.com/dicastrol/Sistema-acv/internal/domain"
	"github.com/dicastrol/Sistema-acv/internal/ml"
)

// Explicacion es una característica clínica que sustenta un riesgo alto
type Explicacion struct {
	Caracteristica string  `json:"nombre"`
	Valor          float64 `json:"valor"`
	Importancia    float64 `json:"importancia"`
}

// ResultadoPrediccion es la respuesta de la predicción individual
type ResultadoPrediccion struct {
	PacienteID      int           `json:"paciente_id"`
	Nombre          string        `json:"nombre"`
	Probabilidad    float64       `json:"probabilidad"`
	Riesgo          string        `json:"riesgo"`
	Explicaciones   []Explicacion `json:"factores"`
	Contexto        []string      `json:"contexto"`
	Recomendaciones []string      `json:"recomendaciones"`
}

// EntradaListado es un paciente dentro del listado global de riesgo
type EntradaListado struct {
	PacienteID   int     `json:"paciente_id"`
	Nombre       string  `json:"nombre"`
	Probabilidad float64 `json:"probabilidad"`
}

// ListadoRiesgo particiona a los pacientes con historial según el umbral
type ListadoRiesgo struct {
	AltoRiesgo []EntradaListado `json:"alto_riesgo"`
	BajoRiesgo []EntradaListado `json:"bajo_riesgo"`
}

// El contexto y las recomendaciones son texto fijo de apoyo clínico; la
// parte variable de la respuesta es la probabilidad y sus explicaciones
var (
	contextoPrediccion = []string{
		"La probabilidad se estima con un modelo entrenado sobre historias clínicas previas y se calcula sobre la última consulta registrada del paciente.",
		"El resultado es una herramienta de apoyo y no reemplaza el criterio médico.",
	}

	recomendacionesAlto = []string{
		"Remitir al paciente a valoración prioritaria por medicina especializada.",
		"Controlar la presión arterial y la frecuencia cardíaca en cada consulta.",
		"Revisar la adherencia a los medicamentos ya formulados.",
		"Indicar suspensión de tabaco, alcohol y sustancias estimulantes.",
		"Agendar una cita de control en un plazo no mayor a un mes.",
	}

	recomendacionesBajo = []string{
		"Mantener controles médicos periódicos de rutina.",
		"Promover actividad física regular y una dieta balanceada.",
		"Vigilar el peso y el índice de masa corporal.",
		"Evitar el consumo de tabaco y moderar el alcohol.",
		"Consultar de inmediato ante síntomas neurológicos súbitos.",
	}
)

type PrediccionService struct {
	historiaRepo domain.HistoriaRepository
	pacienteRepo domain.PacienteRepository
	modelo       *ml.ModeloACV
}

// NewPrediccionService crea una nueva instancia del servicio de predicción
func NewPrediccionService(historiaRepo domain.HistoriaRepository, pacienteRepo domain.PacienteRepository, modelo *ml.ModeloACV) *PrediccionService {
	return &PrediccionService{
		historiaRepo: historiaRepo,
		pacienteRepo: pacienteRepo,
		modelo:       modelo,
	}
}

// Predecir estima el riesgo de ACV de un paciente sobre su última historia
func (s *PrediccionService) Predecir(pacienteID int) (*ResultadoPrediccion, error) {
	paciente, err := s.pacienteRepo.GetByID(pacienteID)
	if err != nil {
		return nil, err
	}

	fila, err := s.historiaRepo.UltimaPorPaciente(pacienteID)
	if err != nil {
		return nil, fmt.Errorf("error al cargar la última historia: %w", err)
	}
	if fila == nil {
		return nil, domain.ErrSinHistorias
	}

	x, err := ml.NuevoVector(*fila)
	if err != nil {
		return nil, err
	}

	prob, err := s.modelo.PredictProba(x)
	if err != nil {
		return nil, err
	}

	riesgo := ml.Clasificar(prob)

	resultado := &ResultadoPrediccion{
		PacienteID:      paciente.ID,
		Nombre:          paciente.Nombre,
		Probabilidad:    prob,
		Riesgo:          riesgo,
		Explicaciones:   []Explicacion{},
		Contexto:        contextoPrediccion,
		Recomendaciones: recomendacionesBajo,
	}
	if riesgo == ml.RiesgoAlto {
		resultado.Explicaciones = s.explicar(x)
		resultado.Recomendaciones = recomendacionesAlto
	}

	return resultado, nil
}

// explicar arma las 5 características clínicas más importantes del modelo
// con el valor del paciente; solo se calcula para riesgo alto
func (s *PrediccionService) explicar(x []float64) []Explicacion {
	indices := append([]int(nil), ml.IndicesExplicables...)
	sort.SliceStable(indices, func(i, j int) bool {
		return s.modelo.Importancia(indices[i]) > s.modelo.Importancia(indices[j])
	})

	if len(indices) > 5 {
		indices = indices[:5]
	}

	explicaciones := make([]Explicacion, 0, len(indices))
	for _, idx := range indices {
		explicaciones = append(explicaciones, Explicacion{
			Caracteristica: ml.NombresCaracteristicas[idx],
			Valor:          x[idx],
			Importancia:    s.modelo.Importancia(idx),
		})
	}
	return explicaciones
}

// Listado clasifica a todos los pacientes con al menos una historia. Los
// pacientes cuya última historia no se puede codificar se omiten del listado
// sin tumbar la operación completa.
func (s *PrediccionService) Listado() (*ListadoRiesgo, error) {
	filas, err := s.historiaRepo.UltimasDeTodos()
	if err != nil {
		return nil, fmt.Errorf("error al cargar las últimas historias: %w", err)
	}

	listado := &ListadoRiesgo{
		AltoRiesgo: []EntradaListado{},
		BajoRiesgo: []EntradaListado{},
	}

	for _, fila := range filas {
		x, err := ml.NuevoVector(fila)
		if err != nil {
			log.Printf("Listado de riesgo: paciente %d omitido: %v", fila.PacienteID, err)
			continue
		}

		prob, err := s.modelo.PredictProba(x)
		if err != nil {
			log.Printf("Listado de riesgo: paciente %d omitido: %v", fila.PacienteID, err)
			continue
		}

		entrada := EntradaListado{
			PacienteID:   fila.PacienteID,
			Nombre:       fila.Nombre,
			Probabilidad: prob,
		}
		if ml.Clasificar(prob) == ml.RiesgoAlto {
			listado.AltoRiesgo = append(listado.AltoRiesgo, entrada)
		} else {
			listado.BajoRiesgo = append(listado.BajoRiesgo, entrada)
		}
	}

	// Alto riesgo de mayor a menor probabilidad; bajo riesgo de menor a mayor
	sort.SliceStable(listado.AltoRiesgo, func(i, j int) bool {
		return listado.AltoRiesgo[i].Probabilidad > listado.AltoRiesgo[j].Probabilidad
	})
	sort.SliceStable(listado.BajoRiesgo, func(i, j int) bool {
		return listado.BajoRiesgo[i].Probabilidad < listado.BajoRiesgo[j].Probabilidad
	})

	return listado, nil
}
