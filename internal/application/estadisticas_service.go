package application

import (
	"math"
	"sync"
	"time"

	"github.com/dicastrol/Sistema-acv/internal/domain"
	"github.com/dicastrol/Sistema-acv/internal/ml"
)

// ttlEstadisticas es la vigencia del tablero en memoria; los agregados
// poblacionales toleran este desfase
const ttlEstadisticas = 5 * time.Minute

// factoresRiesgo son los factores cuya prevalencia reporta el tablero
var factoresRiesgo = []string{
	"hipertension",
	"diabetes",
	"tabaquismo",
	"sedentarismo",
	"colesterol_alto",
	"antecedentes_familiares_acv",
}

// rangosEdad define los cortes del tablero; las edades menores al primer
// corte se cuentan en el primer rango para que los rangos sumen el total
var rangosEdad = []struct {
	etiqueta string
	desde    float64
	hasta    float64 // exclusivo; math.Inf(1) para el rango abierto
}{
	{"18-29", 0, 30},
	{"30-39", 30, 40},
	{"40-49", 40, 50},
	{"50-59", 50, 60},
	{"60-69", 60, 70},
	{"70-79", 70, 80},
	{"80+", 80, math.Inf(1)},
}

type EstadisticasService struct {
	repo domain.EstadisticasRepository

	mu       sync.RWMutex
	cacheado *domain.Estadisticas
	cacheTS  time.Time
}

// NewEstadisticasService crea una nueva instancia del servicio de estadísticas
func NewEstadisticasService(repo domain.EstadisticasRepository) *EstadisticasService {
	return &EstadisticasService{repo: repo}
}

// Get retorna los indicadores del tablero, sirviéndolos del caché mientras
// no hayan expirado
func (s *EstadisticasService) Get() (*domain.Estadisticas, error) {
	s.mu.RLock()
	if s.cacheado != nil && time.Since(s.cacheTS) < ttlEstadisticas {
		defer s.mu.RUnlock()
		return s.cacheado, nil
	}
	s.mu.RUnlock()

	stats, err := s.calcular()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cacheado = stats
	s.cacheTS = time.Now()
	s.mu.Unlock()

	return stats, nil
}

// Invalidar descarta el caché; el próximo Get recalcula
func (s *EstadisticasService) Invalidar() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cacheado = nil
}

func (s *EstadisticasService) calcular() (*domain.Estadisticas, error) {
	totalPacientes, err := s.repo.TotalPacientes()
	if err != nil {
		return nil, err
	}

	totalACV, err := s.repo.TotalEventosACV()
	if err != nil {
		return nil, err
	}

	// Con población vacía todos los indicadores derivados quedan en cero
	var tasa float64
	if totalPacientes > 0 {
		tasa = redondear2(float64(totalACV) / float64(totalPacientes))
	}

	incidencia, err := s.incidenciaMensual()
	if err != nil {
		return nil, err
	}

	prevalencia := make(map[string]float64, len(factoresRiesgo))
	for _, factor := range factoresRiesgo {
		cuenta, err := s.repo.ConteoFactor(factor)
		if err != nil {
			return nil, err
		}
		if totalPacientes > 0 {
			prevalencia[factor] = redondear2(float64(cuenta) / float64(totalPacientes))
		} else {
			prevalencia[factor] = 0
		}
	}

	porSexo, err := s.repo.PacientesPorSexo()
	if err != nil {
		return nil, err
	}
	if porSexo == nil {
		porSexo = []domain.ConteoSexo{}
	}

	porEdad, err := s.distribucionEdad()
	if err != nil {
		return nil, err
	}

	return &domain.Estadisticas{
		TotalPacientes:      totalPacientes,
		TotalACV:            totalACV,
		TasaACV:             tasa,
		IncidenciaMensual:   incidencia,
		PrevalenciaFactores: prevalencia,
		DistribucionSexo:    porSexo,
		DistribucionEdad:    porEdad,
	}, nil
}

// incidenciaMensual arma los últimos 12 meses calendario en orden ascendente,
// rellenando con cero los meses sin eventos
func (s *EstadisticasService) incidenciaMensual() ([]domain.IncidenciaMes, error) {
	ahora := time.Now()
	inicio := time.Date(ahora.Year(), ahora.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -11, 0)

	conteos, err := s.repo.EventosACVPorMes(inicio)
	if err != nil {
		return nil, err
	}

	meses := make([]domain.IncidenciaMes, 0, 12)
	for i := 0; i < 12; i++ {
		mes := inicio.AddDate(0, i, 0).Format("2006-01")
		meses = append(meses, domain.IncidenciaMes{Mes: mes, ACV: conteos[mes]})
	}

	return meses, nil
}

func (s *EstadisticasService) distribucionEdad() ([]domain.ConteoEdad, error) {
	fechas, err := s.repo.FechasNacimiento()
	if err != nil {
		return nil, err
	}

	cuentas := make([]int, len(rangosEdad))
	ahora := time.Now()
	for _, nacimiento := range fechas {
		edad := ml.CalcularEdad(nacimiento, ahora)
		// Una fecha de nacimiento futura (fila insertada por fuera del API)
		// da edad negativa; cae en el primer rango para no perder la fila
		if edad < 0 {
			edad = 0
		}
		for i, rango := range rangosEdad {
			if edad >= rango.desde && edad < rango.hasta {
				cuentas[i]++
				break
			}
		}
	}

	distribucion := make([]domain.ConteoEdad, 0, len(rangosEdad))
	for i, rango := range rangosEdad {
		distribucion = append(distribucion, domain.ConteoEdad{Rango: rango.etiqueta, Cuenta: cuentas[i]})
	}

	return distribucion, nil
}
