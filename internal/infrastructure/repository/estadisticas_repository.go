package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dicastrol/Sistema-acv/internal/domain"
)

// factoresPermitidos evita interpolar nombres de columna arbitrarios
var factoresPermitidos = map[string]bool{
	"hipertension":                true,
	"diabetes":                    true,
	"tabaquismo":                  true,
	"sedentarismo":                true,
	"colesterol_alto":             true,
	"antecedentes_familiares_acv": true,
}

type estadisticasRepository struct {
	db *sql.DB
}

// NewEstadisticasRepository crea una nueva instancia del repositorio de estadísticas
func NewEstadisticasRepository(db *sql.DB) domain.EstadisticasRepository {
	return &estadisticasRepository{db: db}
}

// TotalPacientes cuenta todos los pacientes registrados
func (r *estadisticasRepository) TotalPacientes() (int, error) {
	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM pacientes`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error al contar pacientes: %w", err)
	}
	return total, nil
}

// TotalEventosACV cuenta las historias con evento de ACV
func (r *estadisticasRepository) TotalEventosACV() (int, error) {
	var total int
	query := `SELECT COUNT(*) FROM historias_clinicas WHERE evento_acv = TRUE`
	if err := r.db.QueryRow(query).Scan(&total); err != nil {
		return 0, fmt.Errorf("error al contar eventos de ACV: %w", err)
	}
	return total, nil
}

// EventosACVPorMes agrupa los eventos de ACV por mes desde la fecha dada
func (r *estadisticasRepository) EventosACVPorMes(desde time.Time) (map[string]int, error) {
	query := `
		SELECT to_char(fecha_consulta, 'YYYY-MM') AS mes, COUNT(*)
		FROM historias_clinicas
		WHERE evento_acv = TRUE AND fecha_consulta >= $1
		GROUP BY mes
	`

	rows, err := r.db.Query(query, desde)
	if err != nil {
		return nil, fmt.Errorf("error al agrupar eventos por mes: %w", err)
	}
	defer rows.Close()

	conteos := make(map[string]int)
	for rows.Next() {
		var mes string
		var cuenta int
		if err := rows.Scan(&mes, &cuenta); err != nil {
			return nil, fmt.Errorf("error al leer conteo mensual: %w", err)
		}
		conteos[mes] = cuenta
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al recorrer conteos mensuales: %w", err)
	}

	return conteos, nil
}

// ConteoFactor cuenta los pacientes con el factor de riesgo marcado
func (r *estadisticasRepository) ConteoFactor(factor string) (int, error) {
	if !factoresPermitidos[factor] {
		return 0, fmt.Errorf("factor de riesgo desconocido: %s", factor)
	}

	var total int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM pacientes WHERE %s = TRUE`, factor)
	if err := r.db.QueryRow(query).Scan(&total); err != nil {
		return 0, fmt.Errorf("error al contar factor %s: %w", factor, err)
	}
	return total, nil
}

// PacientesPorSexo retorna los conteos agrupados por sexo
func (r *estadisticasRepository) PacientesPorSexo() ([]domain.ConteoSexo, error) {
	rows, err := r.db.Query(`SELECT sexo, COUNT(*) FROM pacientes GROUP BY sexo ORDER BY sexo`)
	if err != nil {
		return nil, fmt.Errorf("error al agrupar por sexo: %w", err)
	}
	defer rows.Close()

	var conteos []domain.ConteoSexo
	for rows.Next() {
		var c domain.ConteoSexo
		if err := rows.Scan(&c.Sexo, &c.Cuenta); err != nil {
			return nil, fmt.Errorf("error al leer conteo por sexo: %w", err)
		}
		conteos = append(conteos, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al recorrer conteos por sexo: %w", err)
	}

	return conteos, nil
}

// FechasNacimiento retorna la fecha de nacimiento de cada paciente
func (r *estadisticasRepository) FechasNacimiento() ([]time.Time, error) {
	rows, err := r.db.Query(`SELECT fecha_nacimiento FROM pacientes`)
	if err != nil {
		return nil, fmt.Errorf("error al listar fechas de nacimiento: %w", err)
	}
	defer rows.Close()

	var fechas []time.Time
	for rows.Next() {
		var f time.Time
		if err := rows.Scan(&f); err != nil {
			return nil, fmt.Errorf("error al leer fecha de nacimiento: %w", err)
		}
		fechas = append(fechas, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al recorrer fechas de nacimiento: %w", err)
	}

	return fechas, nil
}
