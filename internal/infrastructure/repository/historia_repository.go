package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dicastrol/Sistema-acv/internal/domain"
)

const columnasHistoria = `
	id,
	paciente_id,
	fecha_consulta,
	temperatura,
	presion_sistolica,
	presion_diastolica,
	frecuencia_cardiaca,
	frecuencia_respiratoria,
	arritmia,
	notas_signos,
	hipertension,
	diabetes,
	peso,
	altura,
	imc,
	obesidad,
	tabaquismo,
	alcohol,
	drogas_estimulantes,
	sedentarismo,
	enfermedad_cardiaca_previa,
	estres,
	antecedentes_familiares_acv,
	motivo_consulta,
	fecha_aparicion,
	condiciones_previas,
	historial_familiar,
	medicamentos,
	diagnostico,
	evento_acv`

// consultaFilaPrediccion une la historia con el sexo y la fecha de
// nacimiento del paciente; los vitales opcionales se resuelven a 0
const consultaFilaPrediccion = `
	SELECT
		h.paciente_id,
		p.nombre,
		p.sexo,
		p.fecha_nacimiento,
		h.fecha_consulta,
		COALESCE(h.temperatura, 0),
		h.presion_sistolica,
		h.presion_diastolica,
		COALESCE(h.frecuencia_cardiaca, 0),
		COALESCE(h.frecuencia_respiratoria, 0),
		h.peso,
		h.altura,
		COALESCE(h.imc, 0),
		h.arritmia,
		h.obesidad,
		h.tabaquismo,
		h.alcohol,
		h.drogas_estimulantes,
		h.sedentarismo,
		h.enfermedad_cardiaca_previa,
		h.estres
	FROM historias_clinicas h
	JOIN pacientes p ON p.id = h.paciente_id`

type historiaRepository struct {
	db *sql.DB
}

// NewHistoriaRepository crea una nueva instancia del repositorio de historias clínicas
func NewHistoriaRepository(db *sql.DB) domain.HistoriaRepository {
	return &historiaRepository{db: db}
}

// GetAll retorna las historias, opcionalmente filtradas por rango de fechas
func (r *historiaRepository) GetAll(desde, hasta *time.Time) ([]domain.HistoriaClinica, error) {
	query := `SELECT ` + columnasHistoria + ` FROM historias_clinicas WHERE 1=1`
	var args []any

	if desde != nil {
		args = append(args, *desde)
		query += fmt.Sprintf(" AND fecha_consulta >= $%d", len(args))
	}
	if hasta != nil {
		args = append(args, *hasta)
		query += fmt.Sprintf(" AND fecha_consulta <= $%d", len(args))
	}
	query += " ORDER BY fecha_consulta DESC, id DESC"

	return r.consultarHistorias(query, args...)
}

// GetByID obtiene una historia por su ID
func (r *historiaRepository) GetByID(id int) (*domain.HistoriaClinica, error) {
	query := `SELECT ` + columnasHistoria + ` FROM historias_clinicas WHERE id = $1`

	h, err := escanearHistoria(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error al obtener historia: %w", err)
	}

	return h, nil
}

// Create crea una nueva historia clínica
func (r *historiaRepository) Create(h *domain.HistoriaClinica) error {
	query := `
		INSERT INTO historias_clinicas (
			paciente_id,
			fecha_consulta,
			temperatura,
			presion_sistolica,
			presion_diastolica,
			frecuencia_cardiaca,
			frecuencia_respiratoria,
			arritmia,
			notas_signos,
			hipertension,
			diabetes,
			peso,
			altura,
			imc,
			obesidad,
			tabaquismo,
			alcohol,
			drogas_estimulantes,
			sedentarismo,
			enfermedad_cardiaca_previa,
			estres,
			antecedentes_familiares_acv,
			motivo_consulta,
			fecha_aparicion,
			condiciones_previas,
			historial_familiar,
			medicamentos,
			diagnostico,
			evento_acv
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		          $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29)
		RETURNING id
	`

	err := r.db.QueryRow(
		query,
		h.PacienteID,
		h.FechaConsulta,
		nullFloat(h.Temperatura),
		h.PresionSistolica,
		h.PresionDiastolica,
		nullInt(h.FrecuenciaCardiaca),
		nullInt(h.FrecuenciaRespiratoria),
		h.Arritmia,
		nullStr(h.NotasSignos),
		h.Hipertension,
		h.Diabetes,
		h.Peso,
		h.Altura,
		nullFloat(h.IMC),
		h.Obesidad,
		h.Tabaquismo,
		h.Alcohol,
		h.DrogasEstimulantes,
		h.Sedentarismo,
		h.EnfermedadCardiacaPrevia,
		h.Estres,
		h.AntecedentesFamiliaresACV,
		nullStr(h.MotivoConsulta),
		nullTime(h.FechaAparicion),
		nullStr(h.CondicionesPrevias),
		nullStr(h.HistorialFamiliar),
		nullStr(h.Medicamentos),
		nullStr(h.Diagnostico),
		h.EventoACV,
	).Scan(&h.ID)

	if err != nil {
		return fmt.Errorf("error al crear historia: %w", err)
	}

	return nil
}

// Update actualiza una historia existente
func (r *historiaRepository) Update(h *domain.HistoriaClinica) error {
	query := `
		UPDATE historias_clinicas
		SET
			fecha_consulta = $1,
			temperatura = $2,
			presion_sistolica = $3,
			presion_diastolica = $4,
			frecuencia_cardiaca = $5,
			frecuencia_respiratoria = $6,
			arritmia = $7,
			notas_signos = $8,
			hipertension = $9,
			diabetes = $10,
			peso = $11,
			altura = $12,
			imc = $13,
			obesidad = $14,
			tabaquismo = $15,
			alcohol = $16,
			drogas_estimulantes = $17,
			sedentarismo = $18,
			enfermedad_cardiaca_previa = $19,
			estres = $20,
			antecedentes_familiares_acv = $21,
			motivo_consulta = $22,
			fecha_aparicion = $23,
			condiciones_previas = $24,
			historial_familiar = $25,
			medicamentos = $26,
			diagnostico = $27,
			evento_acv = $28
		WHERE id = $29
	`

	result, err := r.db.Exec(
		query,
		h.FechaConsulta,
		nullFloat(h.Temperatura),
		h.PresionSistolica,
		h.PresionDiastolica,
		nullInt(h.FrecuenciaCardiaca),
		nullInt(h.FrecuenciaRespiratoria),
		h.Arritmia,
		nullStr(h.NotasSignos),
		h.Hipertension,
		h.Diabetes,
		h.Peso,
		h.Altura,
		nullFloat(h.IMC),
		h.Obesidad,
		h.Tabaquismo,
		h.Alcohol,
		h.DrogasEstimulantes,
		h.Sedentarismo,
		h.EnfermedadCardiacaPrevia,
		h.Estres,
		h.AntecedentesFamiliaresACV,
		nullStr(h.MotivoConsulta),
		nullTime(h.FechaAparicion),
		nullStr(h.CondicionesPrevias),
		nullStr(h.HistorialFamiliar),
		nullStr(h.Medicamentos),
		nullStr(h.Diagnostico),
		h.EventoACV,
		h.ID,
	)
	if err != nil {
		return fmt.Errorf("error al actualizar historia: %w", err)
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

// Delete elimina una historia
func (r *historiaRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM historias_clinicas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar historia: %w", err)
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

// GetByPaciente retorna las historias de un paciente, más reciente primero
func (r *historiaRepository) GetByPaciente(pacienteID int) ([]domain.HistoriaClinica, error) {
	query := `SELECT ` + columnasHistoria + `
		FROM historias_clinicas
		WHERE paciente_id = $1
		ORDER BY fecha_consulta DESC, id DESC`

	return r.consultarHistorias(query, pacienteID)
}

// UltimaPorPaciente retorna la última historia unida con los datos del paciente
func (r *historiaRepository) UltimaPorPaciente(pacienteID int) (*domain.FilaPrediccion, error) {
	query := consultaFilaPrediccion + `
		WHERE h.paciente_id = $1
		ORDER BY h.fecha_consulta DESC, h.id DESC
		LIMIT 1`

	fila, err := escanearFilaPrediccion(r.db.QueryRow(query, pacienteID))
	if err == sql.ErrNoRows {
		return nil, nil // Sin historias, devolver nil sin error
	}
	if err != nil {
		return nil, fmt.Errorf("error al obtener última historia: %w", err)
	}

	return fila, nil
}

// UltimasDeTodos retorna la última historia de cada paciente con historial
func (r *historiaRepository) UltimasDeTodos() ([]domain.FilaPrediccion, error) {
	// DISTINCT ON toma la primera fila de cada paciente según el ORDER BY
	query := `
	SELECT DISTINCT ON (h.paciente_id)
		h.paciente_id,
		p.nombre,
		p.sexo,
		p.fecha_nacimiento,
		h.fecha_consulta,
		COALESCE(h.temperatura, 0),
		h.presion_sistolica,
		h.presion_diastolica,
		COALESCE(h.frecuencia_cardiaca, 0),
		COALESCE(h.frecuencia_respiratoria, 0),
		h.peso,
		h.altura,
		COALESCE(h.imc, 0),
		h.arritmia,
		h.obesidad,
		h.tabaquismo,
		h.alcohol,
		h.drogas_estimulantes,
		h.sedentarismo,
		h.enfermedad_cardiaca_previa,
		h.estres
	FROM historias_clinicas h
	JOIN pacientes p ON p.id = h.paciente_id
	ORDER BY h.paciente_id, h.fecha_consulta DESC, h.id DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error al listar últimas historias: %w", err)
	}
	defer rows.Close()

	var filas []domain.FilaPrediccion
	for rows.Next() {
		fila, err := escanearFilaPrediccion(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer fila de predicción: %w", err)
		}
		filas = append(filas, *fila)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al recorrer filas de predicción: %w", err)
	}

	return filas, nil
}

func (r *historiaRepository) consultarHistorias(query string, args ...any) ([]domain.HistoriaClinica, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al listar historias: %w", err)
	}
	defer rows.Close()

	var historias []domain.HistoriaClinica
	for rows.Next() {
		h, err := escanearHistoria(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer historia: %w", err)
		}
		historias = append(historias, *h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al recorrer historias: %w", err)
	}

	return historias, nil
}

func escanearHistoria(fila escaneador) (*domain.HistoriaClinica, error) {
	h := &domain.HistoriaClinica{}
	var (
		temperatura, imc                       sql.NullFloat64
		frecuenciaCardiaca, frecuenciaResp     sql.NullInt64
		notasSignos, motivo, condiciones       sql.NullString
		historialFamiliar, medicamentos        sql.NullString
		diagnostico                            sql.NullString
		fechaAparicion                         sql.NullTime
	)

	err := fila.Scan(
		&h.ID,
		&h.PacienteID,
		&h.FechaConsulta,
		&temperatura,
		&h.PresionSistolica,
		&h.PresionDiastolica,
		&frecuenciaCardiaca,
		&frecuenciaResp,
		&h.Arritmia,
		&notasSignos,
		&h.Hipertension,
		&h.Diabetes,
		&h.Peso,
		&h.Altura,
		&imc,
		&h.Obesidad,
		&h.Tabaquismo,
		&h.Alcohol,
		&h.DrogasEstimulantes,
		&h.Sedentarismo,
		&h.EnfermedadCardiacaPrevia,
		&h.Estres,
		&h.AntecedentesFamiliaresACV,
		&motivo,
		&fechaAparicion,
		&condiciones,
		&historialFamiliar,
		&medicamentos,
		&diagnostico,
		&h.EventoACV,
	)
	if err != nil {
		return nil, err
	}

	h.Temperatura = floatPtr(temperatura)
	h.IMC = floatPtr(imc)
	h.FrecuenciaCardiaca = intPtr(frecuenciaCardiaca)
	h.FrecuenciaRespiratoria = intPtr(frecuenciaResp)
	h.NotasSignos = strPtr(notasSignos)
	h.MotivoConsulta = strPtr(motivo)
	h.CondicionesPrevias = strPtr(condiciones)
	h.HistorialFamiliar = strPtr(historialFamiliar)
	h.Medicamentos = strPtr(medicamentos)
	h.Diagnostico = strPtr(diagnostico)
	h.FechaAparicion = timePtr(fechaAparicion)

	return h, nil
}

func escanearFilaPrediccion(fila escaneador) (*domain.FilaPrediccion, error) {
	f := &domain.FilaPrediccion{}
	err := fila.Scan(
		&f.PacienteID,
		&f.Nombre,
		&f.Sexo,
		&f.FechaNacimiento,
		&f.FechaConsulta,
		&f.Temperatura,
		&f.PresionSistolica,
		&f.PresionDiastolica,
		&f.FrecuenciaCardiaca,
		&f.FrecuenciaRespiratoria,
		&f.Peso,
		&f.Altura,
		&f.IMC,
		&f.Arritmia,
		&f.Obesidad,
		&f.Tabaquismo,
		&f.Alcohol,
		&f.DrogasEstimulantes,
		&f.Sedentarismo,
		&f.EnfermedadCardiacaPrevia,
		&f.Estres,
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// nullFloat convierte *float64 a sql.NullFloat64
func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

// floatPtr convierte sql.NullFloat64 a *float64
func floatPtr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	return &nf.Float64
}

// nullInt convierte *int a sql.NullInt64
func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

// intPtr convierte sql.NullInt64 a *int
func intPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	v := int(ni.Int64)
	return &v
}

// nullTime convierte *time.Time a sql.NullTime
func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// timePtr convierte sql.NullTime a *time.Time
func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	return &nt.Time
}
