package application

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/dicastrol/Sistema-acv/internal/domain"
)

// FrecuenciaTexto es un término libre con su cantidad de apariciones
type FrecuenciaTexto struct {
	Texto  string `json:"texto"`
	Cuenta int    `json:"cuenta"`
}

// AnalisisHistorial resume los indicadores del historial de un paciente
type AnalisisHistorial struct {
	TotalConsultas                 int               `json:"total_consultas"`
	PromedioTemperatura            float64           `json:"promedio_temperatura"`
	PromedioFrecuenciaCardiaca     float64           `json:"promedio_frecuencia_cardiaca"`
	PromedioFrecuenciaRespiratoria float64           `json:"promedio_frecuencia_respiratoria"`
	PromedioIMC                    float64           `json:"promedio_imc"`
	CondicionesFrecuentes          []FrecuenciaTexto `json:"condiciones_frecuentes"`
	MotivosFrecuentes              []FrecuenciaTexto `json:"motivos_frecuentes"`
}

// ResumenPaciente es el historial completo más su análisis
type ResumenPaciente struct {
	ResumenClinico  []domain.HistoriaClinica `json:"resumen_clinico"`
	AnalisisResumen AnalisisHistorial        `json:"analisis_resumen"`
}

type HistoriaService struct {
	historiaRepo domain.HistoriaRepository
	pacienteRepo domain.PacienteRepository
	validator    *Validator
}

// NewHistoriaService crea una nueva instancia del servicio de historias clínicas
func NewHistoriaService(historiaRepo domain.HistoriaRepository, pacienteRepo domain.PacienteRepository) *HistoriaService {
	return &HistoriaService{
		historiaRepo: historiaRepo,
		pacienteRepo: pacienteRepo,
		validator:    &Validator{},
	}
}

// GetAll retorna las historias, opcionalmente filtradas por rango de fechas
func (s *HistoriaService) GetAll(desde, hasta *time.Time) ([]domain.HistoriaClinica, error) {
	return s.historiaRepo.GetAll(desde, hasta)
}

// GetByID obtiene una historia por su ID
func (s *HistoriaService) GetByID(id int) (*domain.HistoriaClinica, error) {
	return s.historiaRepo.GetByID(id)
}

// Create registra una nueva historia clínica para un paciente existente
func (s *HistoriaService) Create(h *domain.HistoriaClinica) error {
	if errores := s.validator.ValidateHistoria(h); len(errores) > 0 {
		return nuevoErrorValidacion(s.validator, errores)
	}

	if _, err := s.pacienteRepo.GetByID(h.PacienteID); err != nil {
		return err
	}

	s.calcularIMC(h)

	return s.historiaRepo.Create(h)
}

// Update actualiza una historia recalculando el IMC con el peso y la
// altura vigentes
func (s *HistoriaService) Update(h *domain.HistoriaClinica) error {
	if errores := s.validator.ValidateHistoria(h); len(errores) > 0 {
		return nuevoErrorValidacion(s.validator, errores)
	}

	s.calcularIMC(h)

	return s.historiaRepo.Update(h)
}

// Delete elimina una historia
func (s *HistoriaService) Delete(id int) error {
	return s.historiaRepo.Delete(id)
}

// GetPorPaciente retorna el resumen ligero del historial de un paciente
func (s *HistoriaService) GetPorPaciente(pacienteID int) ([]domain.ResumenHistoria, error) {
	historias, err := s.historiaRepo.GetByPaciente(pacienteID)
	if err != nil {
		return nil, err
	}

	resumen := make([]domain.ResumenHistoria, 0, len(historias))
	for _, h := range historias {
		resumen = append(resumen, domain.ResumenHistoria{
			ID:             h.ID,
			FechaConsulta:  h.FechaConsulta.Format("2006-01-02"),
			MotivoConsulta: h.MotivoConsulta,
			IMC:            h.IMC,
		})
	}

	return resumen, nil
}

// GetResumen arma el resumen estadístico del historial de un paciente
func (s *HistoriaService) GetResumen(pacienteID int) (*ResumenPaciente, error) {
	historias, err := s.historiaRepo.GetByPaciente(pacienteID)
	if err != nil {
		return nil, err
	}
	if len(historias) == 0 {
		return nil, domain.ErrSinHistorias
	}

	total := len(historias)
	var sumaTemp, sumaFC, sumaFR, sumaIMC float64
	condiciones := nuevoContador()
	motivos := nuevoContador()

	for _, h := range historias {
		if h.Temperatura != nil {
			sumaTemp += *h.Temperatura
		}
		if h.FrecuenciaCardiaca != nil {
			sumaFC += float64(*h.FrecuenciaCardiaca)
		}
		if h.FrecuenciaRespiratoria != nil {
			sumaFR += float64(*h.FrecuenciaRespiratoria)
		}
		if h.IMC != nil {
			sumaIMC += *h.IMC
		}
		if h.CondicionesPrevias != nil {
			for _, c := range strings.Split(*h.CondicionesPrevias, ",") {
				condiciones.agregar(strings.ToLower(strings.TrimSpace(c)))
			}
		}
		if h.MotivoConsulta != nil {
			motivos.agregar(strings.ToLower(strings.TrimSpace(*h.MotivoConsulta)))
		}
	}

	analisis := AnalisisHistorial{
		TotalConsultas:                 total,
		PromedioTemperatura:            redondear2(sumaTemp / float64(total)),
		PromedioFrecuenciaCardiaca:     redondear2(sumaFC / float64(total)),
		PromedioFrecuenciaRespiratoria: redondear2(sumaFR / float64(total)),
		PromedioIMC:                    redondear2(sumaIMC / float64(total)),
		CondicionesFrecuentes:          condiciones.masComunes(3),
		MotivosFrecuentes:              motivos.masComunes(3),
	}

	return &ResumenPaciente{
		ResumenClinico:  historias,
		AnalisisResumen: analisis,
	}, nil
}

func (s *HistoriaService) calcularIMC(h *domain.HistoriaClinica) {
	if h.Peso > 0 && h.Altura > 0 {
		imc := redondear2(h.Peso / (h.Altura * h.Altura))
		h.IMC = &imc
	}
}

func redondear2(v float64) float64 {
	return math.Round(v*100) / 100
}

// contador cuenta términos libres conservando el orden de aparición
// para desempatar de forma estable
type contador struct {
	cuentas map[string]int
	orden   []string
}

func nuevoContador() *contador {
	return &contador{cuentas: make(map[string]int)}
}

func (c *contador) agregar(termino string) {
	if termino == "" {
		return
	}
	if _, visto := c.cuentas[termino]; !visto {
		c.orden = append(c.orden, termino)
	}
	c.cuentas[termino]++
}

func (c *contador) masComunes(n int) []FrecuenciaTexto {
	posicion := make(map[string]int, len(c.orden))
	for i, t := range c.orden {
		posicion[t] = i
	}

	terminos := append([]string(nil), c.orden...)
	sort.SliceStable(terminos, func(i, j int) bool {
		if c.cuentas[terminos[i]] != c.cuentas[terminos[j]] {
			return c.cuentas[terminos[i]] > c.cuentas[terminos[j]]
		}
		return posicion[terminos[i]] < posicion[terminos[j]]
	})

	if len(terminos) > n {
		terminos = terminos[:n]
	}

	resultado := make([]FrecuenciaTexto, 0, len(terminos))
	for _, t := range terminos {
		resultado = append(resultado, FrecuenciaTexto{Texto: t, Cuenta: c.cuentas[t]})
	}
	return resultado
}
