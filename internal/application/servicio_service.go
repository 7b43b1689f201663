package application

import (
	"github.com/dicastrol/Sistema-acv/internal/domain"
)

type ServicioService struct {
	servicioRepo domain.ServicioRepository
}

// NewServicioService crea una nueva instancia del servicio del catálogo
func NewServicioService(servicioRepo domain.ServicioRepository) *ServicioService {
	return &ServicioService{servicioRepo: servicioRepo}
}

// GetActivos retorna los servicios disponibles para agendar
func (s *ServicioService) GetActivos() ([]domain.Servicio, error) {
	return s.servicioRepo.GetActivos()
}
