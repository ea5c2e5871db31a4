package repository

import (
	"context"

	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
)

// GastoRepository define el puerto de persistencia para Gasto.
// Los gastos se crean y se borran libremente; nunca se editan.
type GastoRepository interface {
	List(ctx context.Context) ([]entity.Gasto, error)
	SaveAll(ctx context.Context, gastos []entity.Gasto) error
	Add(ctx context.Context, gasto entity.Gasto) (*entity.Gasto, error)
	Delete(ctx context.Context, id string) error
}
