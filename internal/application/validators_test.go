package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidateEmail("ana@correo.com"))
	assert.NoError(t, v.ValidateEmail("ana.torres+acv@clinica.com.co"))
	assert.Error(t, v.ValidateEmail("ana@"))
	assert.Error(t, v.ValidateEmail("sin-arroba.com"))
}

func TestValidatePhone(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidatePhone("3001234567"))
	assert.NoError(t, v.ValidatePhone("+57 300 123-4567"))
	assert.Error(t, v.ValidatePhone("123"))
	assert.Error(t, v.ValidatePhone("no-es-telefono"))
}

func TestValidateDocumento(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidateDocumento("1020304050"))
	assert.Error(t, v.ValidateDocumento(""))
	assert.Error(t, v.ValidateDocumento("10A20"))
}

func TestValidateTipoDocumento(t *testing.T) {
	v := &Validator{}

	for _, tipo := range []string{"CC", "TI", "CE"} {
		assert.NoError(t, v.ValidateTipoDocumento(tipo))
	}
	assert.Error(t, v.ValidateTipoDocumento("PASAPORTE"))
	assert.Error(t, v.ValidateTipoDocumento(""))
}

func TestValidateSexo(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidateSexo("M"))
	assert.NoError(t, v.ValidateSexo("F"))
	assert.Error(t, v.ValidateSexo("m"))
	assert.Error(t, v.ValidateSexo("X"))
}

func TestValidateFechaPasada(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidateFechaPasada(time.Now().AddDate(-1, 0, 0), "fecha"))
	assert.Error(t, v.ValidateFechaPasada(time.Now().AddDate(0, 0, 1), "fecha"))
}

func TestValidatePassword(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidatePassword("Clave123"))
	assert.Error(t, v.ValidatePassword("corta"))
	assert.Error(t, v.ValidatePassword("sinmayuscula1"))
	assert.Error(t, v.ValidatePassword("SINMINUSCULA1"))
	assert.Error(t, v.ValidatePassword("SinDigitos"))
}

func TestFormatValidationErrors(t *testing.T) {
	v := &Validator{}

	assert.Empty(t, v.FormatValidationErrors(nil))

	errores := []error{
		assert.AnError,
		assert.AnError,
	}
	mensaje := v.FormatValidationErrors(errores)
	assert.Contains(t, mensaje, "; ")
}
