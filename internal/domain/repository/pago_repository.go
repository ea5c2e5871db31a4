package repository

import (
	"context"

	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
)

// PagoRepository define el puerto de persistencia para Pago.
// La colección es de solo inserción: no hay edición ni borrado de pagos.
type PagoRepository interface {
	List(ctx context.Context) ([]entity.Pago, error)
	SaveAll(ctx context.Context, pagos []entity.Pago) error
	Add(ctx context.Context, pago entity.Pago) (*entity.Pago, error)
}
