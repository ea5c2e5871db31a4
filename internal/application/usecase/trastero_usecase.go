package usecase

import (
	"context"

	"github.com/tu-usuario/trasteros-pro/internal/application/dto"
	"github.com/tu-usuario/trasteros-pro/internal/domain"
	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
	"github.com/tu-usuario/trasteros-pro/internal/domain/repository"
)

// TrasteroUseCase ediciones de trasteros y retirada de inquilinos.
type TrasteroUseCase struct {
	trasteros  repository.TrasteroRepository
	inquilinos repository.InquilinoRepository
	historial  repository.HistorialRepository
}

// NewTrasteroUseCase construye el caso de uso.
func NewTrasteroUseCase(
	trasteros repository.TrasteroRepository,
	inquilinos repository.InquilinoRepository,
	historial repository.HistorialRepository,
) *TrasteroUseCase {
	return &TrasteroUseCase{trasteros: trasteros, inquilinos: inquilinos, historial: historial}
}

// List devuelve todos los trasteros.
func (uc *TrasteroUseCase) List(ctx context.Context) ([]entity.Trastero, error) {
	return uc.trasteros.List(ctx)
}

// Update aplica una edición parcial. Un ID inexistente es un no-op silencioso.
func (uc *TrasteroUseCase) Update(ctx context.Context, id string, in dto.UpdateTrasteroRequest) error {
	patch := entity.TrasteroPatch{
		InquilinoID:     in.InquilinoID,
		QuitarInquilino: in.QuitarInquilino,
		AlCorrientePago: in.AlCorrientePago,
		PrecioMensual:   in.PrecioMensual,
		CodigoAlarma:    in.CodigoAlarma,
		Notas:           in.Notas,
	}
	if in.UltimoPago != nil {
		fecha, err := entity.ParsearFecha(*in.UltimoPago)
		if err != nil {
			return err
		}
		patch.UltimoPago = &fecha
	}
	if in.ProximoPago != nil {
		fecha, err := entity.ParsearFecha(*in.ProximoPago)
		if err != nil {
			return err
		}
		patch.ProximoPago = &fecha
	}
	if in.Llaves != nil {
		entrega, err := entity.ParsearFecha(in.Llaves.FechaEntrega)
		if err != nil {
			return err
		}
		patch.Llaves = &entity.Llaves{
			Cantidad:     in.Llaves.Cantidad,
			Tipo:         in.Llaves.Tipo,
			FechaEntrega: entrega,
		}
	}
	return uc.trasteros.Update(ctx, id, patch)
}

// QuitarInquilino retira al inquilino del trastero: archiva una copia de su
// registro en el historial (con fecha de baja y número de trastero) y deja el
// trastero libre, sin código de alarma y con el juego de llaves a cero.
//
// El registro vivo del inquilino NO se elimina de la colección de inquilinos;
// sigue listado como activo. Es el comportamiento heredado del sistema
// original y se conserva deliberadamente.
func (uc *TrasteroUseCase) QuitarInquilino(ctx context.Context, trasteroID string) error {
	trasteros, err := uc.trasteros.List(ctx)
	if err != nil {
		return err
	}
	var trastero *entity.Trastero
	for i := range trasteros {
		if trasteros[i].ID == trasteroID {
			trastero = &trasteros[i]
			break
		}
	}
	if trastero == nil {
		return domain.ErrNotFound
	}
	if !trastero.Ocupado() {
		return nil
	}

	inquilinos, err := uc.inquilinos.List(ctx)
	if err != nil {
		return err
	}
	for _, inq := range inquilinos {
		if inq.ID == *trastero.InquilinoID {
			if err := uc.historial.Archivar(ctx, inq, trastero.Numero); err != nil {
				return err
			}
			break
		}
	}

	vacio := ""
	return uc.trasteros.Update(ctx, trasteroID, entity.TrasteroPatch{
		QuitarInquilino: true,
		CodigoAlarma:    &vacio,
		Llaves:          &entity.Llaves{Cantidad: 0, Tipo: entity.TipoLlaveEstandar},
	})
}
