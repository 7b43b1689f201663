package domain

import "time"

// IncidenciaMes es el conteo de eventos de ACV de un mes calendario
type IncidenciaMes struct {
	Mes string `json:"mes"` // formato YYYY-MM
	ACV int    `json:"acv"`
}

// ConteoSexo es la cantidad de pacientes de un sexo
type ConteoSexo struct {
	Sexo   string `json:"sexo"`
	Cuenta int    `json:"count"`
}

// ConteoEdad es la cantidad de pacientes de un rango etario
type ConteoEdad struct {
	Rango  string `json:"rango"`
	Cuenta int    `json:"count"`
}

// Estadisticas agrupa los indicadores poblacionales del tablero
type Estadisticas struct {
	TotalPacientes       int                `json:"total_pacientes"`
	TotalACV             int                `json:"total_acv"`
	TasaACV              float64            `json:"tasa_acv"`
	IncidenciaMensual    []IncidenciaMes    `json:"incidencia_mensual"`
	PrevalenciaFactores  map[string]float64 `json:"prevalencia_factores"`
	DistribucionSexo     []ConteoSexo       `json:"distribucion_sexo"`
	DistribucionEdad     []ConteoEdad       `json:"distribucion_edad"`
}

// EstadisticasRepository expone los agregados crudos que el servicio de
// estadísticas combina. Las divisiones y el relleno de meses vacíos se
// resuelven en la capa de aplicación.
type EstadisticasRepository interface {
	// TotalPacientes cuenta todos los pacientes registrados
	TotalPacientes() (int, error)
	// TotalEventosACV cuenta las historias con evento de ACV
	TotalEventosACV() (int, error)
	// EventosACVPorMes retorna los conteos de eventos de ACV agrupados por
	// mes (YYYY-MM) desde la fecha dada; los meses sin eventos no aparecen
	EventosACVPorMes(desde time.Time) (map[string]int, error)
	// ConteoFactor cuenta los pacientes con el factor de riesgo marcado
	ConteoFactor(factor string) (int, error)
	// PacientesPorSexo retorna los conteos agrupados por sexo
	PacientesPorSexo() ([]ConteoSexo, error)
	// FechasNacimiento retorna la fecha de nacimiento de cada paciente
	FechasNacimiento() ([]time.Time, error)
}
