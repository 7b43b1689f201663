package application

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dicastrol/Sistema-acv/internal/domain"
)

const secretoPrueba = "secreto-de-prueba"

func TestRegisterYLogin(t *testing.T) {
	var cuentas []*domain.Usuario
	repo := &usuarioRepoMock{
		FindByUsuarioFn: func(usuario string) (*domain.Usuario, error) {
			for _, c := range cuentas {
				if c.Usuario == usuario {
					return c, nil
				}
			}
			return nil, nil
		},
		CreateFn: func(u *domain.Usuario) error {
			u.ID = len(cuentas) + 1
			cuentas = append(cuentas, u)
			return nil
		},
	}

	service := NewAuthService(repo, secretoPrueba)

	cuenta, token, err := service.Register("Ana Torres", "anatorres", "Clave123")
	require.NoError(t, err)
	assert.Equal(t, 1, cuenta.ID)
	assert.NotEmpty(t, token)

	// La contraseña queda hasheada, nunca en claro
	assert.NotEqual(t, "Clave123", cuenta.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(cuenta.Password), []byte("Clave123")))

	tokenLogin, err := service.Login("anatorres", "Clave123")
	require.NoError(t, err)

	usuarioID, err := service.ValidarToken(tokenLogin)
	require.NoError(t, err)
	assert.Equal(t, 1, usuarioID)
}

func TestRegisterUsuarioDuplicado(t *testing.T) {
	repo := &usuarioRepoMock{
		FindByUsuarioFn: func(usuario string) (*domain.Usuario, error) {
			return &domain.Usuario{ID: 1, Usuario: usuario}, nil
		},
	}

	service := NewAuthService(repo, secretoPrueba)

	_, _, err := service.Register("Ana Torres", "anatorres", "Clave123")
	assert.ErrorIs(t, err, domain.ErrUsuarioDuplicado)
}

func TestRegisterPasswordDebil(t *testing.T) {
	service := NewAuthService(&usuarioRepoMock{}, secretoPrueba)

	_, _, err := service.Register("Ana Torres", "anatorres", "corta")
	var validacion *ErrorValidacion
	require.ErrorAs(t, err, &validacion)
	assert.Contains(t, validacion.Mensaje, "contraseña")
}

func TestLoginUsuarioInexistente(t *testing.T) {
	repo := &usuarioRepoMock{
		FindByUsuarioFn: func(usuario string) (*domain.Usuario, error) {
			return nil, nil
		},
	}

	service := NewAuthService(repo, secretoPrueba)

	_, err := service.Login("nadie", "Clave123")
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
}

func TestLoginPasswordIncorrecta(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Clave123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &usuarioRepoMock{
		FindByUsuarioFn: func(usuario string) (*domain.Usuario, error) {
			return &domain.Usuario{ID: 1, Usuario: usuario, Password: string(hash)}, nil
		},
	}

	service := NewAuthService(repo, secretoPrueba)

	_, err = service.Login("anatorres", "OtraClave1")
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
}

func TestLoginLimiteDeIntentos(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Clave123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &usuarioRepoMock{
		FindByUsuarioFn: func(usuario string) (*domain.Usuario, error) {
			return &domain.Usuario{ID: 1, Usuario: usuario, Password: string(hash)}, nil
		},
	}

	service := NewAuthService(repo, secretoPrueba)

	for i := 0; i < 5; i++ {
		_, err := service.Login("anatorres", "incorrecta")
		assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
	}

	// El sexto intento se frena antes de verificar credenciales
	_, err = service.Login("anatorres", "Clave123")
	var validacion *ErrorValidacion
	require.ErrorAs(t, err, &validacion)
	assert.Contains(t, validacion.Mensaje, "intentos")
}

func TestValidarTokenExpirado(t *testing.T) {
	service := NewAuthService(&usuarioRepoMock{}, secretoPrueba)

	claims := jwt.MapClaims{
		"user_id": 1,
		"exp":     time.Now().Add(-time.Minute).Unix(),
		"jti":     uuid.NewString(),
	}
	expirado, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secretoPrueba))
	require.NoError(t, err)

	_, err = service.ValidarToken(expirado)
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
}

func TestValidarTokenFirmaAjena(t *testing.T) {
	service := NewAuthService(&usuarioRepoMock{}, secretoPrueba)

	claims := jwt.MapClaims{
		"user_id": 1,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	ajeno, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("otro-secreto"))
	require.NoError(t, err)

	_, err = service.ValidarToken(ajeno)
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
}
