package domain

import "time"

// HistoriaClinica representa una consulta clínica fechada de un paciente
type HistoriaClinica struct {
	ID            int       `json:"id"`
	PacienteID    int       `json:"paciente_id"`
	FechaConsulta time.Time `json:"fecha_consulta"`

	// Signos vitales
	Temperatura            *float64 `json:"temperatura,omitempty"`
	PresionSistolica       float64  `json:"presion_sistolica"`
	PresionDiastolica      float64  `json:"presion_diastolica"`
	FrecuenciaCardiaca     *int     `json:"frecuencia_cardiaca,omitempty"`
	FrecuenciaRespiratoria *int     `json:"frecuencia_respiratoria,omitempty"`
	Arritmia               bool     `json:"arritmia"`
	NotasSignos            *string  `json:"notas_signos,omitempty"`

	// Comorbilidades observadas en la consulta
	Hipertension bool `json:"hipertension"`
	Diabetes     bool `json:"diabetes"`

	// Datos biométricos; el IMC se recalcula al cambiar peso o altura
	Peso   float64  `json:"peso"`
	Altura float64  `json:"altura"`
	IMC    *float64 `json:"imc,omitempty"`

	// Factores de riesgo reafirmados en la consulta
	Obesidad                  bool `json:"obesidad"`
	Tabaquismo                bool `json:"tabaquismo"`
	Alcohol                   bool `json:"alcohol"`
	DrogasEstimulantes        bool `json:"drogas_estimulantes"`
	Sedentarismo              bool `json:"sedentarismo"`
	EnfermedadCardiacaPrevia  bool `json:"enfermedad_cardiaca_previa"`
	Estres                    bool `json:"estres"`
	AntecedentesFamiliaresACV bool `json:"antecedentes_familiares_acv"`

	// Motivo y antecedentes
	MotivoConsulta     *string    `json:"motivo_consulta,omitempty"`
	FechaAparicion     *time.Time `json:"fecha_aparicion,omitempty"`
	CondicionesPrevias *string    `json:"condiciones_previas,omitempty"`
	HistorialFamiliar  *string    `json:"historial_familiar,omitempty"`
	Medicamentos       *string    `json:"medicamentos,omitempty"`
	Diagnostico        *string    `json:"diagnostico,omitempty"`

	// Evento de ACV registrado en esta consulta
	EventoACV bool `json:"evento_acv"`
}

// FilaPrediccion es la última historia de un paciente unida con los datos
// demográficos que el modelo necesita. Los signos vitales opcionales llegan
// ya resueltos a 0 cuando la historia no los registró.
type FilaPrediccion struct {
	PacienteID               int
	Nombre                   string
	Sexo                     string
	FechaNacimiento          time.Time
	FechaConsulta            time.Time
	Temperatura              float64
	PresionSistolica         float64
	PresionDiastolica        float64
	FrecuenciaCardiaca       float64
	FrecuenciaRespiratoria   float64
	Peso                     float64
	Altura                   float64
	IMC                      float64
	Arritmia                 bool
	Obesidad                 bool
	Tabaquismo               bool
	Alcohol                  bool
	DrogasEstimulantes       bool
	Sedentarismo             bool
	EnfermedadCardiacaPrevia bool
	Estres                   bool
}

// ResumenHistoria es la vista ligera del historial de un paciente
type ResumenHistoria struct {
	ID             int      `json:"id"`
	FechaConsulta  string   `json:"fecha_consulta"`
	MotivoConsulta *string  `json:"motivo_consulta"`
	IMC            *float64 `json:"imc"`
}

// HistoriaRepository define las operaciones con historias clínicas
type HistoriaRepository interface {
	// GetAll retorna las historias ordenadas por fecha descendente,
	// opcionalmente acotadas por rango de fechas
	GetAll(desde, hasta *time.Time) ([]HistoriaClinica, error)
	// GetByID obtiene una historia por su ID
	GetByID(id int) (*HistoriaClinica, error)
	// Create crea una nueva historia clínica
	Create(historia *HistoriaClinica) error
	// Update actualiza una historia existente
	Update(historia *HistoriaClinica) error
	// Delete elimina una historia
	Delete(id int) error
	// GetByPaciente retorna las historias de un paciente, más reciente primero
	// (fecha descendente y, a igual fecha, ID descendente)
	GetByPaciente(pacienteID int) ([]HistoriaClinica, error)
	// UltimaPorPaciente retorna la última historia del paciente unida con su
	// sexo y fecha de nacimiento. Retorna nil sin error cuando no hay historias.
	UltimaPorPaciente(pacienteID int) (*FilaPrediccion, error)
	// UltimasDeTodos retorna la última historia de cada paciente que tenga
	// al menos una; los pacientes sin historias simplemente no aparecen.
	UltimasDeTodos() ([]FilaPrediccion, error)
}
