package records

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
	"github.com/tu-usuario/trasteros-pro/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository: la colección de cuentas más el
// hueco singleton de sesión, ambos sobre el RecordStore.
type UserRepo struct {
	col   coleccion[entity.User]
	store repository.RecordStore
}

// NewUserRepository construye el repositorio.
func NewUserRepository(store repository.RecordStore) *UserRepo {
	return &UserRepo{
		col:   coleccion[entity.User]{store: store, clave: repository.ClaveUsers},
		store: store,
	}
}

// List devuelve las cuentas en orden de siembra.
func (r *UserRepo) List(ctx context.Context) ([]entity.User, error) {
	return r.col.listar(ctx)
}

// SaveAll sobrescribe la colección completa.
func (r *UserRepo) SaveAll(ctx context.Context, users []entity.User) error {
	return r.col.guardar(ctx, users)
}

// CurrentUser devuelve el usuario de la sesión o nil si no hay sesión.
func (r *UserRepo) CurrentUser(ctx context.Context) (*entity.User, error) {
	raw, ok, err := r.store.Get(ctx, repository.ClaveCurrentUser)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var user entity.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", repository.ClaveCurrentUser, err)
	}
	return &user, nil
}

// SetCurrentUser guarda el registro completo del usuario en el hueco de
// sesión; con nil lo borra.
func (r *UserRepo) SetCurrentUser(ctx context.Context, user *entity.User) error {
	if user == nil {
		return r.store.Remove(ctx, repository.ClaveCurrentUser)
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("codificar %s: %w", repository.ClaveCurrentUser, err)
	}
	return r.store.Set(ctx, repository.ClaveCurrentUser, raw)
}
