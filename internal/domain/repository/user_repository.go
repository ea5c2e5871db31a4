package repository

import (
	"context"

	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User más el hueco
// singleton de sesión.
//
// CurrentUser devuelve nil cuando no hay sesión iniciada. SetCurrentUser con
// nil borra el hueco (logout).
type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
	SaveAll(ctx context.Context, users []entity.User) error
	CurrentUser(ctx context.Context) (*entity.User, error)
	SetCurrentUser(ctx context.Context, user *entity.User) error
}
