package records

import (
	"context"

	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
	"github.com/tu-usuario/trasteros-pro/internal/domain/repository"
)

var _ repository.PagoRepository = (*PagoRepo)(nil)

// PagoRepo implementación de PagoRepository sobre el RecordStore.
type PagoRepo struct {
	col coleccion[entity.Pago]
}

// NewPagoRepository construye el repositorio.
func NewPagoRepository(store repository.RecordStore) *PagoRepo {
	return &PagoRepo{col: coleccion[entity.Pago]{store: store, clave: repository.ClavePagos}}
}

// List devuelve los pagos en orden de registro.
func (r *PagoRepo) List(ctx context.Context) ([]entity.Pago, error) {
	return r.col.listar(ctx)
}

// SaveAll sobrescribe la colección completa.
func (r *PagoRepo) SaveAll(ctx context.Context, pagos []entity.Pago) error {
	return r.col.guardar(ctx, pagos)
}

// Add genera el ID, añade el pago al final y devuelve el registro creado.
func (r *PagoRepo) Add(ctx context.Context, pago entity.Pago) (*entity.Pago, error) {
	pagos, err := r.col.listar(ctx)
	if err != nil {
		return nil, err
	}
	pago.ID = entity.NuevoID(entity.PrefijoPago)
	pagos = append(pagos, pago)
	if err := r.col.guardar(ctx, pagos); err != nil {
		return nil, err
	}
	return &pago, nil
}
