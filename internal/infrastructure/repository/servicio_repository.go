package repository

import (
	"database/sql"
	"fmt"

	"github.com/dicastrol/Sistema-acv/internal/domain"
)

type servicioRepository struct {
	db *sql.DB
}

// NewServicioRepository crea una nueva instancia del repositorio de servicios
func NewServicioRepository(db *sql.DB) domain.ServicioRepository {
	return &servicioRepository{db: db}
}

// GetActivos retorna los servicios disponibles para agendar citas
func (r *servicioRepository) GetActivos() ([]domain.Servicio, error) {
	query := `
		SELECT id, nombre, descripcion, duracion_minutos, activo
		FROM servicios
		WHERE activo = TRUE
		ORDER BY nombre
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error al listar servicios: %w", err)
	}
	defer rows.Close()

	var servicios []domain.Servicio
	for rows.Next() {
		var s domain.Servicio
		if err := rows.Scan(&s.ID, &s.Nombre, &s.Descripcion, &s.DuracionMinutos, &s.Activo); err != nil {
			return nil, fmt.Errorf("error al leer servicio: %w", err)
		}
		servicios = append(servicios, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al recorrer servicios: %w", err)
	}

	return servicios, nil
}
