package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialwash/gestion-api/internal/application/dto"
	"github.com/specialwash/gestion-api/internal/domain"
	"github.com/specialwash/gestion-api/internal/domain/entity"
)

type usuarioRepoFake struct {
	porEmail map[string]*entity.Usuario
}

func newUsuarioRepoFake() *usuarioRepoFake {
	return &usuarioRepoFake{porEmail: map[string]*entity.Usuario{}}
}

func (f *usuarioRepoFake) Create(u *entity.Usuario) error {
	f.porEmail[strings.ToLower(u.Email)] = u
	return nil
}
func (f *usuarioRepoFake) GetByID(id string) (*entity.Usuario, error) {
	for _, u := range f.porEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (f *usuarioRepoFake) FindByEmail(email string) (*entity.Usuario, error) {
	return f.porEmail[strings.ToLower(email)], nil
}
func (f *usuarioRepoFake) List() ([]*entity.Usuario, error) { return nil, nil }

var cfgTest = JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "test"}

func TestRegister_CanonicalizaRol(t *testing.T) {
	uc := NewUseCase(newUsuarioRepoFake(), cfgTest)

	out, err := uc.Register(dto.RegisterRequest{
		Nombre:   "Marta",
		Email:    "marta@specialwash.es",
		Password: "correcthorse",
		Rol:      "Manager",
	})
	require.NoError(t, err)

	assert.Equal(t, "administrador", out.Rol, "Manager normaliza a administrador")
	assert.True(t, out.Activo)
}

func TestRegister_RolDesconocidoDegradaAEmpleado(t *testing.T) {
	uc := NewUseCase(newUsuarioRepoFake(), cfgTest)

	out, err := uc.Register(dto.RegisterRequest{
		Email:    "nuevo@specialwash.es",
		Password: "correcthorse",
		Rol:      "becario",
	})
	require.NoError(t, err)

	assert.Equal(t, "empleado", out.Rol)
	assert.Equal(t, "nuevo@specialwash.es", out.Nombre, "sin nombre se usa el email")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newUsuarioRepoFake()
	uc := NewUseCase(repo, cfgTest)

	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.es", Password: "correcthorse"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "a@b.es", Password: "otracosa12"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	repo := newUsuarioRepoFake()
	uc := NewUseCase(repo, cfgTest)

	_, err := uc.Register(dto.RegisterRequest{
		Email:    "marta@specialwash.es",
		Password: "correcthorse",
		Rol:      "mantenimiento",
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "marta@specialwash.es", Password: "correcthorse"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "mantenimiento", out.User.Rol)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := newUsuarioRepoFake()
	uc := NewUseCase(repo, cfgTest)

	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.es", Password: "correcthorse"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.es", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := NewUseCase(newUsuarioRepoFake(), cfgTest)
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@b.es", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	repo := newUsuarioRepoFake()
	uc := NewUseCase(repo, cfgTest)

	_, err := uc.Register(dto.RegisterRequest{Email: "baja@b.es", Password: "correcthorse"})
	require.NoError(t, err)
	repo.porEmail["baja@b.es"].Activo = false

	_, err = uc.Login(dto.LoginRequest{Email: "baja@b.es", Password: "correcthorse"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
