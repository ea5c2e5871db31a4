package records

import (
	"context"

	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
	"github.com/tu-usuario/trasteros-pro/internal/domain/repository"
)

var _ repository.InquilinoRepository = (*InquilinoRepo)(nil)

// InquilinoRepo implementación de InquilinoRepository sobre el RecordStore.
type InquilinoRepo struct {
	col coleccion[entity.Inquilino]
}

// NewInquilinoRepository construye el repositorio.
func NewInquilinoRepository(store repository.RecordStore) *InquilinoRepo {
	return &InquilinoRepo{col: coleccion[entity.Inquilino]{store: store, clave: repository.ClaveInquilinos}}
}

// List devuelve los inquilinos en orden de inserción.
func (r *InquilinoRepo) List(ctx context.Context) ([]entity.Inquilino, error) {
	return r.col.listar(ctx)
}

// SaveAll sobrescribe la colección completa.
func (r *InquilinoRepo) SaveAll(ctx context.Context, inquilinos []entity.Inquilino) error {
	return r.col.guardar(ctx, inquilinos)
}

// Add genera el ID, añade el inquilino al final y devuelve el registro creado.
func (r *InquilinoRepo) Add(ctx context.Context, inquilino entity.Inquilino) (*entity.Inquilino, error) {
	inquilinos, err := r.col.listar(ctx)
	if err != nil {
		return nil, err
	}
	inquilino.ID = entity.NuevoID(entity.PrefijoInquilino)
	inquilinos = append(inquilinos, inquilino)
	if err := r.col.guardar(ctx, inquilinos); err != nil {
		return nil, err
	}
	return &inquilino, nil
}

// Update fusiona el patch sobre el inquilino con ese ID. Si el ID no está en
// la colección es un no-op silencioso.
func (r *InquilinoRepo) Update(ctx context.Context, id string, patch entity.InquilinoPatch) error {
	inquilinos, err := r.col.listar(ctx)
	if err != nil {
		return err
	}
	for i := range inquilinos {
		if inquilinos[i].ID == id {
			inquilinos[i].Aplicar(patch)
			return r.col.guardar(ctx, inquilinos)
		}
	}
	return nil
}

// Delete filtra el inquilino con ese ID; no-op si no existe.
func (r *InquilinoRepo) Delete(ctx context.Context, id string) error {
	inquilinos, err := r.col.listar(ctx)
	if err != nil {
		return err
	}
	filtrados := inquilinos[:0]
	for _, inq := range inquilinos {
		if inq.ID != id {
			filtrados = append(filtrados, inq)
		}
	}
	return r.col.guardar(ctx, filtrados)
}
