package domain

// Usuario representa una cuenta de acceso al sistema
type Usuario struct {
	ID      int    `json:"id"`
	Nombre  string `json:"nombre"`
	Usuario string `json:"usuario"`
	// Password guarda el hash bcrypt, nunca la contraseña en claro
	Password string `json:"-"`
}

// UsuarioRepository define las operaciones con cuentas de usuario
type UsuarioRepository interface {
	// GetByID obtiene un usuario por su ID
	GetByID(id int) (*Usuario, error)
	// FindByUsuario busca una cuenta por nombre de usuario.
	// Retorna nil sin error cuando no existe.
	FindByUsuario(usuario string) (*Usuario, error)
	// Create crea una nueva cuenta
	Create(u *Usuario) error
}
