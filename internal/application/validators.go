package application

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dicastrol/Sistema-acv/internal/domain"
)

// Validator contiene funciones de validación de datos
type Validator struct{}

var (
	emailRegex     = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	telefonoRegex  = regexp.MustCompile(`^\+?\d{7,15}$`)
	documentoRegex = regexp.MustCompile(`^\d+$`)
	// La contraseña exige al menos una mayúscula, una minúscula y un dígito
	passwordMayuscula = regexp.MustCompile(`[A-Z]`)
	passwordMinuscula = regexp.MustCompile(`[a-z]`)
	passwordDigito    = regexp.MustCompile(`\d`)
)

// ValidateEmail valida el formato de un email
func (v *Validator) ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("el formato del email '%s' no es válido", email)
	}
	return nil
}

// ValidatePhone valida el formato de un teléfono
func (v *Validator) ValidatePhone(telefono string) error {
	// Limpiar espacios y guiones
	limpio := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(telefono)

	if !telefonoRegex.MatchString(limpio) {
		return fmt.Errorf("el teléfono '%s' debe tener entre 7 y 15 dígitos", telefono)
	}
	return nil
}

// ValidateDocumento valida el número de documento: solo dígitos
func (v *Validator) ValidateDocumento(documento string) error {
	if documento == "" {
		return fmt.Errorf("el documento es requerido")
	}
	if !documentoRegex.MatchString(documento) {
		return fmt.Errorf("el documento debe contener sólo dígitos")
	}
	return nil
}

// ValidateTipoDocumento valida el tipo de documento de identidad
func (v *Validator) ValidateTipoDocumento(tipo string) error {
	switch tipo {
	case "CC", "TI", "CE":
		return nil
	}
	return fmt.Errorf("tipo de documento inválido (se espera CC, TI o CE)")
}

// ValidateNombre valida que un nombre no esté vacío
func (v *Validator) ValidateNombre(nombre, campo string) error {
	if strings.TrimSpace(nombre) == "" {
		return fmt.Errorf("el %s es obligatorio", campo)
	}
	return nil
}

// ValidateSexo valida que el sexo sea M o F, los únicos valores que el
// modelo de predicción sabe codificar
func (v *Validator) ValidateSexo(sexo string) error {
	if sexo != "M" && sexo != "F" {
		return fmt.Errorf("el sexo debe ser 'M' o 'F'")
	}
	return nil
}

// ValidateFechaPasada valida que la fecha no sea futura
func (v *Validator) ValidateFechaPasada(fecha time.Time, campo string) error {
	if fecha.After(time.Now()) {
		return fmt.Errorf("la %s no puede ser futura", campo)
	}
	return nil
}

// ValidatePassword valida la política de contraseñas de las cuentas
func (v *Validator) ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("la contraseña debe tener al menos 6 caracteres")
	}
	if !passwordMayuscula.MatchString(password) || !passwordMinuscula.MatchString(password) || !passwordDigito.MatchString(password) {
		return fmt.Errorf("la contraseña debe incluir al menos una mayúscula, una minúscula y un dígito")
	}
	return nil
}

// ValidatePaciente valida los datos completos de un paciente
func (v *Validator) ValidatePaciente(p *domain.Paciente) []error {
	var errores []error

	if err := v.ValidateNombre(p.Nombre, "nombre"); err != nil {
		errores = append(errores, err)
	}
	if err := v.ValidateTipoDocumento(p.TipoDocumento); err != nil {
		errores = append(errores, err)
	}
	if err := v.ValidateDocumento(p.Documento); err != nil {
		errores = append(errores, err)
	}
	if err := v.ValidateSexo(p.Sexo); err != nil {
		errores = append(errores, err)
	}
	if p.FechaNacimiento.IsZero() {
		errores = append(errores, fmt.Errorf("la fecha de nacimiento es requerida"))
	} else if err := v.ValidateFechaPasada(p.FechaNacimiento, "fecha de nacimiento"); err != nil {
		errores = append(errores, err)
	}

	// Campos de contacto opcionales
	if p.Email != nil && *p.Email != "" {
		if err := v.ValidateEmail(*p.Email); err != nil {
			errores = append(errores, err)
		}
	}
	if p.Telefono != nil && *p.Telefono != "" {
		if err := v.ValidatePhone(*p.Telefono); err != nil {
			errores = append(errores, err)
		}
	}
	if p.ContactoEmergenciaTelefono != nil && *p.ContactoEmergenciaTelefono != "" {
		if err := v.ValidatePhone(*p.ContactoEmergenciaTelefono); err != nil {
			errores = append(errores, err)
		}
	}

	return errores
}

// ValidateHistoria valida los datos de una historia clínica
func (v *Validator) ValidateHistoria(h *domain.HistoriaClinica) []error {
	var errores []error

	if h.PacienteID <= 0 {
		errores = append(errores, fmt.Errorf("el paciente_id es requerido"))
	}
	if h.FechaConsulta.IsZero() {
		errores = append(errores, fmt.Errorf("la fecha de consulta es requerida"))
	} else if err := v.ValidateFechaPasada(h.FechaConsulta, "fecha de consulta"); err != nil {
		errores = append(errores, err)
	}
	if h.PresionSistolica <= 0 {
		errores = append(errores, fmt.Errorf("la presión sistólica es requerida"))
	}
	if h.PresionDiastolica <= 0 {
		errores = append(errores, fmt.Errorf("la presión diastólica es requerida"))
	}
	if h.Peso <= 0 {
		errores = append(errores, fmt.Errorf("el peso debe ser mayor a 0"))
	}
	if h.Altura <= 0 {
		errores = append(errores, fmt.Errorf("la altura debe ser mayor a 0"))
	}

	return errores
}

// FormatValidationErrors formatea una lista de errores en un mensaje legible
func (v *Validator) FormatValidationErrors(errores []error) string {
	if len(errores) == 0 {
		return ""
	}

	mensajes := make([]string, 0, len(errores))
	for _, err := range errores {
		mensajes = append(mensajes, err.Error())
	}

	return strings.Join(mensajes, "; ")
}
