package records

import (
	"context"

	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
	"github.com/tu-usuario/trasteros-pro/internal/domain/repository"
)

var _ repository.GastoRepository = (*GastoRepo)(nil)

// GastoRepo implementación de GastoRepository sobre el RecordStore.
type GastoRepo struct {
	col coleccion[entity.Gasto]
}

// NewGastoRepository construye el repositorio.
func NewGastoRepository(store repository.RecordStore) *GastoRepo {
	return &GastoRepo{col: coleccion[entity.Gasto]{store: store, clave: repository.ClaveGastos}}
}

// List devuelve los gastos en orden de registro.
func (r *GastoRepo) List(ctx context.Context) ([]entity.Gasto, error) {
	return r.col.listar(ctx)
}

// SaveAll sobrescribe la colección completa.
func (r *GastoRepo) SaveAll(ctx context.Context, gastos []entity.Gasto) error {
	return r.col.guardar(ctx, gastos)
}

// Add genera el ID, añade el gasto al final y devuelve el registro creado.
func (r *GastoRepo) Add(ctx context.Context, gasto entity.Gasto) (*entity.Gasto, error) {
	gastos, err := r.col.listar(ctx)
	if err != nil {
		return nil, err
	}
	gasto.ID = entity.NuevoID(entity.PrefijoGasto)
	gastos = append(gastos, gasto)
	if err := r.col.guardar(ctx, gastos); err != nil {
		return nil, err
	}
	return &gasto, nil
}

// Delete filtra el gasto con ese ID; no-op si no existe.
func (r *GastoRepo) Delete(ctx context.Context, id string) error {
	gastos, err := r.col.listar(ctx)
	if err != nil {
		return err
	}
	filtrados := gastos[:0]
	for _, g := range gastos {
		if g.ID != id {
			filtrados = append(filtrados, g)
		}
	}
	return r.col.guardar(ctx, filtrados)
}
