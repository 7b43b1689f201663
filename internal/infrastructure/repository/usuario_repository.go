package repository

import (
	"database/sql"
	"fmt"

	"github.com/dicastrol/Sistema-acv/internal/domain"
)

type usuarioRepository struct {
	db *sql.DB
}

// NewUsuarioRepository crea una nueva instancia del repositorio de usuarios
func NewUsuarioRepository(db *sql.DB) domain.UsuarioRepository {
	return &usuarioRepository{db: db}
}

// GetByID obtiene un usuario por su ID
func (r *usuarioRepository) GetByID(id int) (*domain.Usuario, error) {
	query := `SELECT id, nombre, usuario, password FROM usuarios WHERE id = $1`

	u := &domain.Usuario{}
	err := r.db.QueryRow(query, id).Scan(&u.ID, &u.Nombre, &u.Usuario, &u.Password)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error al obtener usuario: %w", err)
	}

	return u, nil
}

// FindByUsuario busca una cuenta por nombre de usuario
func (r *usuarioRepository) FindByUsuario(usuario string) (*domain.Usuario, error) {
	query := `SELECT id, nombre, usuario, password FROM usuarios WHERE usuario = $1`

	u := &domain.Usuario{}
	err := r.db.QueryRow(query, usuario).Scan(&u.ID, &u.Nombre, &u.Usuario, &u.Password)
	if err == sql.ErrNoRows {
		return nil, nil // No existe, devolver nil sin error
	}
	if err != nil {
		return nil, fmt.Errorf("error al buscar usuario: %w", err)
	}

	return u, nil
}

// Create crea una nueva cuenta
func (r *usuarioRepository) Create(u *domain.Usuario) error {
	query := `
		INSERT INTO usuarios (nombre, usuario, password)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(query, u.Nombre, u.Usuario, u.Password).Scan(&u.ID)
	if esViolacionUnicidad(err) {
		return domain.ErrUsuarioDuplicado
	}
	if err != nil {
		return fmt.Errorf("error al crear usuario: %w", err)
	}

	return nil
}
