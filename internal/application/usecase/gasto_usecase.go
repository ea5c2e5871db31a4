package usecase

import (
	"context"

	"github.com/tu-usuario/trasteros-pro/internal/application/dto"
	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
	"github.com/tu-usuario/trasteros-pro/internal/domain/repository"
)

// GastoUseCase alta, baja y consulta de gastos de explotación.
type GastoUseCase struct {
	gastos repository.GastoRepository
}

// NewGastoUseCase construye el caso de uso.
func NewGastoUseCase(gastos repository.GastoRepository) *GastoUseCase {
	return &GastoUseCase{gastos: gastos}
}

// List devuelve todos los gastos.
func (uc *GastoUseCase) List(ctx context.Context) ([]entity.Gasto, error) {
	return uc.gastos.List(ctx)
}

// Add registra un gasto nuevo.
func (uc *GastoUseCase) Add(ctx context.Context, in dto.CreateGastoRequest) (*entity.Gasto, error) {
	fecha, err := entity.ParsearFecha(in.Fecha)
	if err != nil {
		return nil, err
	}
	return uc.gastos.Add(ctx, entity.Gasto{
		Fecha:     fecha,
		Concepto:  in.Concepto,
		Monto:     in.Monto,
		Categoria: in.Categoria,
		Notas:     in.Notas,
	})
}

// Delete elimina un gasto. Un ID inexistente es un no-op silencioso.
func (uc *GastoUseCase) Delete(ctx context.Context, id string) error {
	return uc.gastos.Delete(ctx, id)
}
