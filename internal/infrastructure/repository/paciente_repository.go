package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dicastrol/Sistema-acv/internal/domain"
	"github.com/lib/pq"
)

const columnasPaciente = `
	id,
	nombre,
	tipo_documento,
	documento,
	fecha_nacimiento,
	sexo,
	telefono,
	direccion,
	email,
	estado_civil,
	ocupacion,
	grupo_sanguineo,
	aseguradora,
	contacto_emergencia,
	contacto_emergencia_telefono,
	contacto_emergencia_parentesco,
	hipertension,
	diabetes,
	tabaquismo,
	sedentarismo,
	colesterol_alto,
	antecedentes_familiares_acv,
	tuvo_acv`

type pacienteRepository struct {
	db *sql.DB
}

// NewPacienteRepository crea una nueva instancia del repositorio de pacientes
func NewPacienteRepository(db *sql.DB) domain.PacienteRepository {
	return &pacienteRepository{db: db}
}

// GetAll retorna todos los pacientes
func (r *pacienteRepository) GetAll() ([]domain.Paciente, error) {
	query := `SELECT ` + columnasPaciente + ` FROM pacientes ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error al listar pacientes: %w", err)
	}
	defer rows.Close()

	var pacientes []domain.Paciente
	for rows.Next() {
		p, err := escanearPaciente(rows)
		if err != nil {
			return nil, fmt.Errorf("error al leer paciente: %w", err)
		}
		pacientes = append(pacientes, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al recorrer pacientes: %w", err)
	}

	return pacientes, nil
}

// GetByID obtiene un paciente por su ID
func (r *pacienteRepository) GetByID(id int) (*domain.Paciente, error) {
	query := `SELECT ` + columnasPaciente + ` FROM pacientes WHERE id = $1`

	p, err := escanearPaciente(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error al obtener paciente: %w", err)
	}

	return p, nil
}

// FindByDocumento busca un paciente por su número de documento
func (r *pacienteRepository) FindByDocumento(documento string) (*domain.Paciente, error) {
	query := `SELECT ` + columnasPaciente + ` FROM pacientes WHERE documento = $1`

	p, err := escanearPaciente(r.db.QueryRow(query, documento))
	if err == sql.ErrNoRows {
		return nil, nil // No existe, devolver nil sin error
	}
	if err != nil {
		return nil, fmt.Errorf("error al buscar paciente: %w", err)
	}

	return p, nil
}

// Create crea un nuevo paciente
func (r *pacienteRepository) Create(p *domain.Paciente) error {
	query := `
		INSERT INTO pacientes (
			nombre,
			tipo_documento,
			documento,
			fecha_nacimiento,
			sexo,
			telefono,
			direccion,
			email,
			estado_civil,
			ocupacion,
			grupo_sanguineo,
			aseguradora,
			contacto_emergencia,
			contacto_emergencia_telefono,
			contacto_emergencia_parentesco,
			hipertension,
			diabetes,
			tabaquismo,
			sedentarismo,
			colesterol_alto,
			antecedentes_familiares_acv,
			tuvo_acv
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING id
	`

	err := r.db.QueryRow(
		query,
		p.Nombre,
		p.TipoDocumento,
		p.Documento,
		p.FechaNacimiento,
		p.Sexo,
		nullStr(p.Telefono),
		nullStr(p.Direccion),
		nullStr(p.Email),
		nullStr(p.EstadoCivil),
		nullStr(p.Ocupacion),
		nullStr(p.GrupoSanguineo),
		nullStr(p.Aseguradora),
		nullStr(p.ContactoEmergencia),
		nullStr(p.ContactoEmergenciaTelefono),
		nullStr(p.ContactoEmergenciaParentesco),
		p.Hipertension,
		p.Diabetes,
		p.Tabaquismo,
		p.Sedentarismo,
		p.ColesterolAlto,
		p.AntecedentesFamiliaresACV,
		p.TuvoACV,
	).Scan(&p.ID)

	if esViolacionUnicidad(err) {
		return domain.ErrDocumentoDuplicado
	}
	if err != nil {
		return fmt.Errorf("error al crear paciente: %w", err)
	}

	return nil
}

// Update actualiza los datos de un paciente existente
func (r *pacienteRepository) Update(p *domain.Paciente) error {
	query := `
		UPDATE pacientes
		SET
			nombre = $1,
			tipo_documento = $2,
			documento = $3,
			fecha_nacimiento = $4,
			sexo = $5,
			telefono = $6,
			direccion = $7,
			email = $8,
			estado_civil = $9,
			ocupacion = $10,
			grupo_sanguineo = $11,
			aseguradora = $12,
			contacto_emergencia = $13,
			contacto_emergencia_telefono = $14,
			contacto_emergencia_parentesco = $15,
			hipertension = $16,
			diabetes = $17,
			tabaquismo = $18,
			sedentarismo = $19,
			colesterol_alto = $20,
			antecedentes_familiares_acv = $21,
			tuvo_acv = $22
		WHERE id = $23
	`

	result, err := r.db.Exec(
		query,
		p.Nombre,
		p.TipoDocumento,
		p.Documento,
		p.FechaNacimiento,
		p.Sexo,
		nullStr(p.Telefono),
		nullStr(p.Direccion),
		nullStr(p.Email),
		nullStr(p.EstadoCivil),
		nullStr(p.Ocupacion),
		nullStr(p.GrupoSanguineo),
		nullStr(p.Aseguradora),
		nullStr(p.ContactoEmergencia),
		nullStr(p.ContactoEmergenciaTelefono),
		nullStr(p.ContactoEmergenciaParentesco),
		p.Hipertension,
		p.Diabetes,
		p.Tabaquismo,
		p.Sedentarismo,
		p.ColesterolAlto,
		p.AntecedentesFamiliaresACV,
		p.TuvoACV,
		p.ID,
	)

	if esViolacionUnicidad(err) {
		return domain.ErrDocumentoDuplicado
	}
	if err != nil {
		return fmt.Errorf("error al actualizar paciente: %w", err)
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

// Delete elimina un paciente; las historias y citas caen por la FK en cascada
func (r *pacienteRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM pacientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar paciente: %w", err)
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

// escaneador cubre tanto *sql.Row como *sql.Rows
type escaneador interface {
	Scan(dest ...any) error
}

func escanearPaciente(fila escaneador) (*domain.Paciente, error) {
	p := &domain.Paciente{}
	var (
		telefono, direccion, email, estadoCivil       sql.NullString
		ocupacion, grupoSanguineo, aseguradora        sql.NullString
		contacto, contactoTelefono, contactoParentesco sql.NullString
	)

	err := fila.Scan(
		&p.ID,
		&p.Nombre,
		&p.TipoDocumento,
		&p.Documento,
		&p.FechaNacimiento,
		&p.Sexo,
		&telefono,
		&direccion,
		&email,
		&estadoCivil,
		&ocupacion,
		&grupoSanguineo,
		&aseguradora,
		&contacto,
		&contactoTelefono,
		&contactoParentesco,
		&p.Hipertension,
		&p.Diabetes,
		&p.Tabaquismo,
		&p.Sedentarismo,
		&p.ColesterolAlto,
		&p.AntecedentesFamiliaresACV,
		&p.TuvoACV,
	)
	if err != nil {
		return nil, err
	}

	p.Telefono = strPtr(telefono)
	p.Direccion = strPtr(direccion)
	p.Email = strPtr(email)
	p.EstadoCivil = strPtr(estadoCivil)
	p.Ocupacion = strPtr(ocupacion)
	p.GrupoSanguineo = strPtr(grupoSanguineo)
	p.Aseguradora = strPtr(aseguradora)
	p.ContactoEmergencia = strPtr(contacto)
	p.ContactoEmergenciaTelefono = strPtr(contactoTelefono)
	p.ContactoEmergenciaParentesco = strPtr(contactoParentesco)

	return p, nil
}

// nullStr convierte *string a sql.NullString
func nullStr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// strPtr convierte sql.NullString a *string
func strPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

// esViolacionUnicidad detecta la violación de una restricción UNIQUE de Postgres
func esViolacionUnicidad(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
