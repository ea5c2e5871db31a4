// Package auth implementa la puerta de sesión del panel.
//
// La sesión es un objeto explícito construido en el arranque e inyectado en la
// capa HTTP; no hay estado global. El usuario autenticado se persiste en el
// hueco singleton del almacén, de modo que la sesión sobrevive a reinicios
// igual que en el almacén original.
package auth

import (
	"context"

	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
	"github.com/tu-usuario/trasteros-pro/internal/domain/repository"
	"github.com/tu-usuario/trasteros-pro/pkg/jwt"
)

// JWTConfig configuración para la emisión de tokens de la API.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// SessionUseCase valida credenciales y mantiene el usuario de la sesión.
type SessionUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewSessionUseCase construye la puerta de sesión.
func NewSessionUseCase(users repository.UserRepository, jwtCfg JWTConfig) *SessionUseCase {
	return &SessionUseCase{users: users, jwtCfg: jwtCfg}
}

// Login busca una cuenta con ese email y esa contraseña exacta (comparación en
// claro, sin hash, como en el sistema original). Si la encuentra, guarda el
// registro completo en el hueco de sesión y devuelve el usuario con ok=true.
// Si no, el hueco queda intacto y devuelve ok=false; unas credenciales
// incorrectas no son un error.
func (uc *SessionUseCase) Login(ctx context.Context, email, password string) (*entity.User, bool, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, false, err
	}
	for _, u := range users {
		if u.Email == email && u.Password == password {
			if err := uc.users.SetCurrentUser(ctx, &u); err != nil {
				return nil, false, err
			}
			return &u, true, nil
		}
	}
	return nil, false, nil
}

// Logout borra el hueco de sesión.
func (uc *SessionUseCase) Logout(ctx context.Context) error {
	return uc.users.SetCurrentUser(ctx, nil)
}

// CurrentUser devuelve el usuario de la sesión persistida, o nil si no hay.
func (uc *SessionUseCase) CurrentUser(ctx context.Context) (*entity.User, error) {
	return uc.users.CurrentUser(ctx)
}

// Token emite un JWT con el ID y el rol del usuario para las rutas protegidas
// de la API.
func (uc *SessionUseCase) Token(user *entity.User) (string, error) {
	return jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}
