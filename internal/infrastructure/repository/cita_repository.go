package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dicastrol/Sistema-acv/internal/domain"
)

// consultaCita une cada cita con el nombre de su paciente
const consultaCita = `
	SELECT
		c.id,
		c.paciente_id,
		p.nombre,
		c.fecha_hora,
		c.servicio,
		c.personal_salud,
		c.estado,
		c.notas
	FROM citas c
	JOIN pacientes p ON p.id = c.paciente_id`

type citaRepository struct {
	db *sql.DB
}

// NewCitaRepository crea una nueva instancia del repositorio de citas
func NewCitaRepository(db *sql.DB) domain.CitaRepository {
	return &citaRepository{db: db}
}

// GetAll retorna todas las citas con el nombre del paciente
func (r *citaRepository) GetAll() ([]domain.Cita, error) {
	return r.consultarCitas(consultaCita + ` ORDER BY c.fecha_hora DESC`)
}

// GetByID obtiene una cita por su ID
func (r *citaRepository) GetByID(id int) (*domain.Cita, error) {
	c, err := escanearCita(r.db.QueryRow(consultaCita+` WHERE c.id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error al obtener cita: %w", err)
	}

	return c, nil
}

// Create crea una nueva cita
func (r *citaRepository) Create(c *domain.Cita) error {
	query := `
		INSERT INTO citas (paciente_id, fecha_hora, servicio, personal_salud, estado, notas)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(
		query,
		c.PacienteID,
		c.FechaHora,
		c.Servicio,
		nullStr(c.PersonalSalud),
		c.Estado,
		nullStr(c.Notas),
	).Scan(&c.ID)

	if err != nil {
		return fmt.Errorf("error al crear cita: %w", err)
	}

	return nil
}

// Update actualiza una cita existente
func (r *citaRepository) Update(c *domain.Cita) error {
	query := `
		UPDATE citas
		SET
			fecha_hora = $1,
			servicio = $2,
			personal_salud = $3,
			estado = $4,
			notas = $5
		WHERE id = $6
	`

	result, err := r.db.Exec(
		query,
		c.FechaHora,
		c.Servicio,
		nullStr(c.PersonalSalud),
		c.Estado,
		nullStr(c.Notas),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("error al actualizar cita: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar actualización: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNoEncontrado
	}

	return nil
}

// Delete elimina una cita
func (r *citaRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM citas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar cita: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar eliminación: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNoEncontrado
	}

	return nil
}

// GetPorDia retorna las citas de un día calendario, ordenadas por hora
func (r *citaRepository) GetPorDia(dia time.Time) ([]domain.Cita, error) {
	inicio := time.Date(dia.Year(), dia.Month(), dia.Day(), 0, 0, 0, 0, dia.Location())
	fin := inicio.AddDate(0, 0, 1)

	query := consultaCita + `
		WHERE c.fecha_hora >= $1 AND c.fecha_hora < $2
		ORDER BY c.fecha_hora ASC`

	return r.consultarCitas(query, inicio, fin)
}

// CancelarVencidas marca como canceladas las citas esperadas cuya fecha ya pasó
func (r *citaRepository) CancelarVencidas(ahora time.Time) (int64, error) {
	result, err := r.db.Exec(
		`UPDATE citas SET estado = $1 WHERE estado = $2 AND fecha_hora < $3`,
		domain.CitaCancelada,
		domain.CitaEsperada,
		ahora,
	)
	if err != nil {
		return 0, fmt.Errorf("error al cancelar citas vencidas: %w", err)
	}

	return result.RowsAffected()
}

func (r *citaRepository) consultarCitas(query string, args ...any) ([]domain.Cita, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al listar citas: %w", err)
	}
	defer rows.Close()

	var citas []domain.Cita
	for rows.Next() {
		c, err := escanearCita(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer cita: %w", err)
		}
		citas = append(citas, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al recorrer citas: %w", err)
	}

	return citas, nil
}

func escanearCita(fila escaneador) (*domain.Cita, error) {
	c := &domain.Cita{}
	var personalSalud, notas sql.NullString

	err := fila.Scan(
		&c.ID,
		&c.PacienteID,
		&c.PacienteNombre,
		&c.FechaHora,
		&c.Servicio,
		&personalSalud,
		&c.Estado,
		&notas,
	)
	if err != nil {
		return nil, err
	}

	c.PersonalSalud = strPtr(personalSalud)
	c.Notas = strPtr(notas)

	return c, nil
}
