package application

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dicastrol/Sistema-acv/internal/domain"
)

// duracionToken es la vigencia de los tokens emitidos
const duracionToken = 2 * time.Hour

type AuthService struct {
	usuarioRepo domain.UsuarioRepository
	secreto     []byte
	validator   *Validator
	// Limita los intentos de login por usuario para frenar fuerza bruta
	intentosLogin *RateLimiter
}

// NewAuthService crea una nueva instancia del servicio de autenticación
func NewAuthService(usuarioRepo domain.UsuarioRepository, secreto string) *AuthService {
	return &AuthService{
		usuarioRepo:   usuarioRepo,
		secreto:       []byte(secreto),
		validator:     &Validator{},
		intentosLogin: NewRateLimiter(1*time.Minute, 5),
	}
}

// Register crea una cuenta nueva y emite su primer token
func (s *AuthService) Register(nombre, usuario, password string) (*domain.Usuario, string, error) {
	var errores []error
	if err := s.validator.ValidateNombre(nombre, "nombre"); err != nil {
		errores = append(errores, err)
	}
	if len(usuario) < 3 {
		errores = append(errores, fmt.Errorf("el usuario debe tener al menos 3 caracteres"))
	}
	if err := s.validator.ValidatePassword(password); err != nil {
		errores = append(errores, err)
	}
	if len(errores) > 0 {
		return nil, "", nuevoErrorValidacion(s.validator, errores)
	}

	existente, err := s.usuarioRepo.FindByUsuario(usuario)
	if err != nil {
		return nil, "", fmt.Errorf("error al verificar usuario: %w", err)
	}
	if existente != nil {
		return nil, "", domain.ErrUsuarioDuplicado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("error al hashear contraseña: %w", err)
	}

	cuenta := &domain.Usuario{
		Nombre:   nombre,
		Usuario:  usuario,
		Password: string(hash),
	}
	if err := s.usuarioRepo.Create(cuenta); err != nil {
		return nil, "", err
	}

	token, err := s.GenerarToken(cuenta.ID)
	if err != nil {
		return nil, "", err
	}

	return cuenta, token, nil
}

// Login valida credenciales y emite un token
func (s *AuthService) Login(usuario, password string) (string, error) {
	if usuario == "" || password == "" {
		return "", &ErrorValidacion{Mensaje: "faltan campos de usuario o contraseña"}
	}

	if permitido, err := s.intentosLogin.Allow(usuario); !permitido {
		return "", &ErrorValidacion{Mensaje: err.Error()}
	}

	cuenta, err := s.usuarioRepo.FindByUsuario(usuario)
	if err != nil {
		return "", fmt.Errorf("error al buscar usuario: %w", err)
	}
	if cuenta == nil {
		return "", domain.ErrCredencialesInvalidas
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cuenta.Password), []byte(password)); err != nil {
		return "", domain.ErrCredencialesInvalidas
	}

	s.intentosLogin.Reset(usuario)

	return s.GenerarToken(cuenta.ID)
}

// Perfil retorna la cuenta autenticada
func (s *AuthService) Perfil(usuarioID int) (*domain.Usuario, error) {
	return s.usuarioRepo.GetByID(usuarioID)
}

// GenerarToken emite un JWT HS256 con vigencia de 2 horas atado a la cuenta
func (s *AuthService) GenerarToken(usuarioID int) (string, error) {
	claims := jwt.MapClaims{
		"user_id": usuarioID,
		"exp":     time.Now().Add(duracionToken).Unix(),
		"jti":     uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	firmado, err := token.SignedString(s.secreto)
	if err != nil {
		return "", fmt.Errorf("error al firmar token: %w", err)
	}
	return firmado, nil
}

// ValidarToken verifica firma y vigencia, y retorna el ID de la cuenta
func (s *AuthService) ValidarToken(tokenString string) (int, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return s.secreto, nil
	})
	if err != nil || !token.Valid {
		return 0, domain.ErrCredencialesInvalidas
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, domain.ErrCredencialesInvalidas
	}

	// Los números JSON llegan como float64
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, domain.ErrCredencialesInvalidas
	}

	return int(id), nil
}
