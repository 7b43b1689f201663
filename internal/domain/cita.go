package domain

import "time"

type EstadoCita string

const (
	CitaEsperada   EstadoCita = "esperado"
	CitaLlegada    EstadoCita = "llegada registrada"
	CitaCompletada EstadoCita = "completado"
	CitaCancelada  EstadoCita = "cancelado"
)

// EstadoCitaValido verifica que el estado sea uno de los permitidos
func EstadoCitaValido(estado EstadoCita) bool {
	switch estado {
	case CitaEsperada, CitaLlegada, CitaCompletada, CitaCancelada:
		return true
	}
	return false
}

// Cita representa un turno de atención agendado para un paciente
type Cita struct {
	ID             int        `json:"id"`
	PacienteID     int        `json:"paciente_id"`
	PacienteNombre string     `json:"paciente_nombre,omitempty"`
	FechaHora      time.Time  `json:"fecha_hora"`
	Servicio       string     `json:"servicio"`
	PersonalSalud  *string    `json:"personal_salud,omitempty"`
	Estado         EstadoCita `json:"estado"`
	Notas          *string    `json:"notas,omitempty"`
}

// CitaRepository define las operaciones con citas
type CitaRepository interface {
	// GetAll retorna todas las citas con el nombre del paciente
	GetAll() ([]Cita, error)
	// GetByID obtiene una cita por su ID
	GetByID(id int) (*Cita, error)
	// Create crea una nueva cita
	Create(cita *Cita) error
	// Update actualiza una cita existente
	Update(cita *Cita) error
	// Delete elimina una cita
	Delete(id int) error
	// GetPorDia retorna las citas de un día calendario, ordenadas por hora
	GetPorDia(dia time.Time) ([]Cita, error)
	// CancelarVencidas marca como canceladas las citas en estado "esperado"
	// cuya fecha ya pasó. Retorna cuántas filas cambiaron.
	CancelarVencidas(ahora time.Time) (int64, error)
}
