package application

import (
	"time"

	"github.com/dicastrol/Sistema-acv/internal/domain"
)

// Mocks de repositorios con campos función: cada test configura solo lo
// que necesita.

type pacienteRepoMock struct {
	GetAllFn          func() ([]domain.Paciente, error)
	GetByIDFn         func(id int) (*domain.Paciente, error)
	FindByDocumentoFn func(documento string) (*domain.Paciente, error)
	CreateFn          func(p *domain.Paciente) error
	UpdateFn          func(p *domain.Paciente) error
	DeleteFn          func(id int) error
}

func (m *pacienteRepoMock) GetAll() ([]domain.Paciente, error) { return m.GetAllFn() }
func (m *pacienteRepoMock) GetByID(id int) (*domain.Paciente, error) {
	return m.GetByIDFn(id)
}
func (m *pacienteRepoMock) FindByDocumento(documento string) (*domain.Paciente, error) {
	return m.FindByDocumentoFn(documento)
}
func (m *pacienteRepoMock) Create(p *domain.Paciente) error { return m.CreateFn(p) }
func (m *pacienteRepoMock) Update(p *domain.Paciente) error { return m.UpdateFn(p) }
func (m *pacienteRepoMock) Delete(id int) error             { return m.DeleteFn(id) }

type historiaRepoMock struct {
	GetAllFn            func(desde, hasta *time.Time) ([]domain.HistoriaClinica, error)
	GetByIDFn           func(id int) (*domain.HistoriaClinica, error)
	CreateFn            func(h *domain.HistoriaClinica) error
	UpdateFn            func(h *domain.HistoriaClinica) error
	DeleteFn            func(id int) error
	GetByPacienteFn     func(pacienteID int) ([]domain.HistoriaClinica, error)
	UltimaPorPacienteFn func(pacienteID int) (*domain.FilaPrediccion, error)
	UltimasDeTodosFn    func() ([]domain.FilaPrediccion, error)
}

func (m *historiaRepoMock) GetAll(desde, hasta *time.Time) ([]domain.HistoriaClinica, error) {
	return m.GetAllFn(desde, hasta)
}
func (m *historiaRepoMock) GetByID(id int) (*domain.HistoriaClinica, error) {
	return m.GetByIDFn(id)
}
func (m *historiaRepoMock) Create(h *domain.HistoriaClinica) error { return m.CreateFn(h) }
func (m *historiaRepoMock) Update(h *domain.HistoriaClinica) error { return m.UpdateFn(h) }
func (m *historiaRepoMock) Delete(id int) error                    { return m.DeleteFn(id) }
func (m *historiaRepoMock) GetByPaciente(pacienteID int) ([]domain.HistoriaClinica, error) {
	return m.GetByPacienteFn(pacienteID)
}
func (m *historiaRepoMock) UltimaPorPaciente(pacienteID int) (*domain.FilaPrediccion, error) {
	return m.UltimaPorPacienteFn(pacienteID)
}
func (m *historiaRepoMock) UltimasDeTodos() ([]domain.FilaPrediccion, error) {
	return m.UltimasDeTodosFn()
}

type citaRepoMock struct {
	GetAllFn           func() ([]domain.Cita, error)
	GetByIDFn          func(id int) (*domain.Cita, error)
	CreateFn           func(cita *domain.Cita) error
	UpdateFn           func(cita *domain.Cita) error
	DeleteFn           func(id int) error
	GetPorDiaFn        func(dia time.Time) ([]domain.Cita, error)
	CancelarVencidasFn func(ahora time.Time) (int64, error)
}

func (m *citaRepoMock) GetAll() ([]domain.Cita, error)       { return m.GetAllFn() }
func (m *citaRepoMock) GetByID(id int) (*domain.Cita, error) { return m.GetByIDFn(id) }
func (m *citaRepoMock) Create(cita *domain.Cita) error       { return m.CreateFn(cita) }
func (m *citaRepoMock) Update(cita *domain.Cita) error       { return m.UpdateFn(cita) }
func (m *citaRepoMock) Delete(id int) error                  { return m.DeleteFn(id) }
func (m *citaRepoMock) GetPorDia(dia time.Time) ([]domain.Cita, error) {
	return m.GetPorDiaFn(dia)
}
func (m *citaRepoMock) CancelarVencidas(ahora time.Time) (int64, error) {
	return m.CancelarVencidasFn(ahora)
}

type usuarioRepoMock struct {
	GetByIDFn       func(id int) (*domain.Usuario, error)
	FindByUsuarioFn func(usuario string) (*domain.Usuario, error)
	CreateFn        func(u *domain.Usuario) error
}

func (m *usuarioRepoMock) GetByID(id int) (*domain.Usuario, error) { return m.GetByIDFn(id) }
func (m *usuarioRepoMock) FindByUsuario(usuario string) (*domain.Usuario, error) {
	return m.FindByUsuarioFn(usuario)
}
func (m *usuarioRepoMock) Create(u *domain.Usuario) error { return m.CreateFn(u) }

type estadisticasRepoMock struct {
	TotalPacientesFn   func() (int, error)
	TotalEventosACVFn  func() (int, error)
	EventosACVPorMesFn func(desde time.Time) (map[string]int, error)
	ConteoFactorFn     func(factor string) (int, error)
	PacientesPorSexoFn func() ([]domain.ConteoSexo, error)
	FechasNacimientoFn func() ([]time.Time, error)
}

func (m *estadisticasRepoMock) TotalPacientes() (int, error)  { return m.TotalPacientesFn() }
func (m *estadisticasRepoMock) TotalEventosACV() (int, error) { return m.TotalEventosACVFn() }
func (m *estadisticasRepoMock) EventosACVPorMes(desde time.Time) (map[string]int, error) {
	return m.EventosACVPorMesFn(desde)
}
func (m *estadisticasRepoMock) ConteoFactor(factor string) (int, error) {
	return m.ConteoFactorFn(factor)
}
func (m *estadisticasRepoMock) PacientesPorSexo() ([]domain.ConteoSexo, error) {
	return m.PacientesPorSexoFn()
}
func (m *estadisticasRepoMock) FechasNacimiento() ([]time.Time, error) {
	return m.FechasNacimientoFn()
}

type correoCitasMock struct {
	ConfirmacionFn func(destinatario, nombrePaciente string, cita *domain.Cita) error
	RecordatorioFn func(destinatario, nombrePaciente string, cita *domain.Cita) error
}

func (m *correoCitasMock) EnviarConfirmacionCita(destinatario, nombrePaciente string, cita *domain.Cita) error {
	return m.ConfirmacionFn(destinatario, nombrePaciente, cita)
}
func (m *correoCitasMock) EnviarRecordatorioCita(destinatario, nombrePaciente string, cita *domain.Cita) error {
	return m.RecordatorioFn(destinatario, nombrePaciente, cita)
}
