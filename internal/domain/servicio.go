package domain

// Servicio representa un servicio de atención que la clínica ofrece
// (consulta general, control neurológico, toma de signos, etc.)
type Servicio struct {
	ID              int    `json:"id"`
	Nombre          string `json:"nombre"`
	Descripcion     string `json:"descripcion"`
	DuracionMinutos int    `json:"duracion_minutos"`
	Activo          bool   `json:"activo"`
}

// ServicioRepository define la interfaz para el catálogo de servicios
type ServicioRepository interface {
	// GetActivos retorna los servicios disponibles para agendar citas
	GetActivos() ([]Servicio, error)
}
