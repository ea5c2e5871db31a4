package repository

import (
	"context"

	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
)

// TrasteroRepository define el puerto de persistencia para Trastero.
// Los trasteros se siembran en el bootstrap; no hay alta ni borrado individual.
type TrasteroRepository interface {
	List(ctx context.Context) ([]entity.Trastero, error)
	SaveAll(ctx context.Context, trasteros []entity.Trastero) error
	Update(ctx context.Context, id string, patch entity.TrasteroPatch) error
}
