package records

import (
	"context"

	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
	"github.com/tu-usuario/trasteros-pro/internal/domain/repository"
)

var _ repository.TrasteroRepository = (*TrasteroRepo)(nil)

// TrasteroRepo implementación de TrasteroRepository sobre el RecordStore.
type TrasteroRepo struct {
	col coleccion[entity.Trastero]
}

// NewTrasteroRepository construye el repositorio.
func NewTrasteroRepository(store repository.RecordStore) *TrasteroRepo {
	return &TrasteroRepo{col: coleccion[entity.Trastero]{store: store, clave: repository.ClaveTrasteros}}
}

// List devuelve los trasteros en orden de número de siembra.
func (r *TrasteroRepo) List(ctx context.Context) ([]entity.Trastero, error) {
	return r.col.listar(ctx)
}

// SaveAll sobrescribe la colección completa.
func (r *TrasteroRepo) SaveAll(ctx context.Context, trasteros []entity.Trastero) error {
	return r.col.guardar(ctx, trasteros)
}

// Update fusiona el patch sobre el trastero con ese ID. Si el ID no está en
// la colección es un no-op silencioso.
func (r *TrasteroRepo) Update(ctx context.Context, id string, patch entity.TrasteroPatch) error {
	trasteros, err := r.col.listar(ctx)
	if err != nil {
		return err
	}
	for i := range trasteros {
		if trasteros[i].ID == id {
			trasteros[i].Aplicar(patch)
			return r.col.guardar(ctx, trasteros)
		}
	}
	return nil
}
