package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/trasteros-pro/internal/application/auth"
	"github.com/tu-usuario/trasteros-pro/internal/application/seed"
	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
	"github.com/tu-usuario/trasteros-pro/internal/infrastructure/memory"
	"github.com/tu-usuario/trasteros-pro/internal/infrastructure/records"
)

func nuevaSesion(t *testing.T) (*auth.SessionUseCase, *records.UserRepo) {
	t.Helper()
	store := memory.NewRecordStore()
	require.NoError(t, seed.Bootstrap(context.Background(), store))
	users := records.NewUserRepository(store)
	uc := auth.NewSessionUseCase(users, auth.JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "test"})
	return uc, users
}

// Las credenciales sembradas del administrador inician sesión y dejan su
// registro completo en el hueco de sesión.
func TestLogin_CredencialesCorrectas(t *testing.T) {
	ctx := context.Background()
	uc, users := nuevaSesion(t)

	user, ok, err := uc.Login(ctx, "admin@example.com", "admin123")

	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, user)
	assert.Equal(t, entity.RolAdministrador, user.Role)

	actual, err := users.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, actual)
	assert.Equal(t, "admin@example.com", actual.Email)
	assert.Equal(t, "admin123", actual.Password, "el hueco guarda el registro completo")
}

// Una contraseña incorrecta devuelve ok=false sin error y no toca el hueco.
func TestLogin_PasswordIncorrecta(t *testing.T) {
	ctx := context.Background()
	uc, users := nuevaSesion(t)

	_, ok, err := uc.Login(ctx, "admin@example.com", "incorrecta")
	require.NoError(t, err, "credenciales malas no son un error")
	assert.False(t, ok)

	actual, err := users.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, actual, "el hueco sigue vacío")
}

// Un fallo de login no pisa una sesión ya iniciada.
func TestLogin_FalloNoPisaSesionExistente(t *testing.T) {
	ctx := context.Background()
	uc, users := nuevaSesion(t)

	_, ok, err := uc.Login(ctx, "propietario@example.com", "admin123")
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = uc.Login(ctx, "admin@example.com", "incorrecta")
	require.NoError(t, err)
	require.False(t, ok)

	actual, err := users.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, actual)
	assert.Equal(t, "propietario@example.com", actual.Email)
}

func TestLogout_BorraElHueco(t *testing.T) {
	ctx := context.Background()
	uc, users := nuevaSesion(t)

	_, ok, err := uc.Login(ctx, "inmobiliaria@example.com", "inmob123")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, uc.Logout(ctx))

	actual, err := users.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, actual)
}

func TestToken_IncluyeRol(t *testing.T) {
	uc, _ := nuevaSesion(t)
	user, ok, err := uc.Login(context.Background(), "admin@example.com", "admin123")
	require.NoError(t, err)
	require.True(t, ok)

	token, err := uc.Token(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}
