package domain

import "errors"

// Errores de dominio compartidos entre servicios y handlers.
var (
	// ErrNoEncontrado indica que la entidad referenciada no existe
	ErrNoEncontrado = errors.New("recurso no encontrado")
	// ErrDocumentoDuplicado indica que ya existe un paciente con ese documento
	ErrDocumentoDuplicado = errors.New("el documento ya está registrado")
	// ErrUsuarioDuplicado indica que el nombre de usuario ya está en uso
	ErrUsuarioDuplicado = errors.New("el nombre de usuario ya existe")
	// ErrSinHistorias indica que el paciente no tiene historias clínicas
	ErrSinHistorias = errors.New("el paciente no tiene historias clínicas")
	// ErrCredencialesInvalidas indica usuario o contraseña incorrectos
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
	// ErrSexoNoSoportado indica un valor de sexo que el modelo no puede codificar
	ErrSexoNoSoportado = errors.New("valor de sexo no soportado por el modelo (se espera 'M' o 'F')")
)
