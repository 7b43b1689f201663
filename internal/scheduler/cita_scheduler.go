package scheduler

import (
	"log"
	"time"

	"github.com/dicastrol/Sistema-acv/internal/application"
	"github.com/dicastrol/Sistema-acv/internal/domain"
)

type CitaScheduler struct {
	citaRepo    domain.CitaRepository
	citaService *application.CitaService
	ticker      *time.Ticker
}

// NewCitaScheduler crea una nueva instancia del scheduler de citas
func NewCitaScheduler(citaRepo domain.CitaRepository, citaService *application.CitaService) *CitaScheduler {
	return &CitaScheduler{
		citaRepo:    citaRepo,
		citaService: citaService,
	}
}

// Start inicia el scheduler que mantiene las citas cada 24 horas
func (s *CitaScheduler) Start() {
	log.Println("🕐 Scheduler de citas iniciado - Se ejecutará cada 24 horas")

	// Ejecutar inmediatamente al iniciar
	s.MantenerCitas()

	// Programar ejecución cada 24 horas a las 00:01 AM
	now := time.Now()
	nextRun := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 1, 0, 0, now.Location())
	durationUntilNextRun := time.Until(nextRun)

	log.Printf("⏰ Próxima ejecución programada: %s", nextRun.Format("2006-01-02 15:04:05"))

	time.AfterFunc(durationUntilNextRun, func() {
		s.MantenerCitas()

		s.ticker = time.NewTicker(24 * time.Hour)
		go func() {
			for range s.ticker.C {
				s.MantenerCitas()
			}
		}()
	})
}

// Stop detiene el scheduler
func (s *CitaScheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		log.Println("🛑 Scheduler de citas detenido")
	}
}

// MantenerCitas cancela las citas esperadas cuya fecha ya pasó y envía los
// recordatorios de las citas de mañana
func (s *CitaScheduler) MantenerCitas() {
	log.Println("🔄 Ejecutando mantenimiento de citas...")

	canceladas, err := s.citaRepo.CancelarVencidas(time.Now())
	if err != nil {
		log.Printf("❌ Error cancelando citas vencidas: %v", err)
	} else if canceladas > 0 {
		log.Printf("✅ %d cita(s) vencida(s) cancelada(s)", canceladas)
	}

	manana := time.Now().AddDate(0, 0, 1)
	enviados, err := s.citaService.EnviarRecordatorios(manana)
	if err != nil {
		log.Printf("❌ Error enviando recordatorios: %v", err)
	} else if enviados > 0 {
		log.Printf("✅ %d recordatorio(s) de cita enviado(s)", enviados)
	}
}
