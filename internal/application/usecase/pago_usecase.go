package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/trasteros-pro/internal/application/dto"
	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
	"github.com/tu-usuario/trasteros-pro/internal/domain/repository"
)

// PagoUseCase registro y consulta de cobros de renta.
type PagoUseCase struct {
	pagos     repository.PagoRepository
	trasteros repository.TrasteroRepository
	ahora     func() time.Time
}

// NewPagoUseCase construye el caso de uso.
func NewPagoUseCase(pagos repository.PagoRepository, trasteros repository.TrasteroRepository) *PagoUseCase {
	return &PagoUseCase{pagos: pagos, trasteros: trasteros, ahora: time.Now}
}

// List devuelve todos los pagos registrados.
func (uc *PagoUseCase) List(ctx context.Context) ([]entity.Pago, error) {
	return uc.pagos.List(ctx)
}

// Registrar añade un pago y actualiza el estado de cobro del trastero: queda
// al corriente, el último pago es la fecha del cobro y el próximo vencimiento
// se fija un mes después de HOY (no de la fecha del pago, que puede ser
// retroactiva).
func (uc *PagoUseCase) Registrar(ctx context.Context, in dto.RegistrarPagoRequest) (*entity.Pago, error) {
	fecha, err := entity.ParsearFecha(in.Fecha)
	if err != nil {
		return nil, err
	}

	pago, err := uc.pagos.Add(ctx, entity.Pago{
		TrasteroID:  in.TrasteroID,
		InquilinoID: in.InquilinoID,
		Fecha:       fecha,
		Monto:       in.Monto,
		Concepto:    in.Concepto,
		MetodoPago:  in.MetodoPago,
		MesPago:     in.MesPago,
		AnioPago:    in.AnioPago,
	})
	if err != nil {
		return nil, err
	}

	alCorriente := true
	proximo := entity.FechaDe(uc.ahora()).SumarMeses(1)
	patch := entity.TrasteroPatch{
		AlCorrientePago: &alCorriente,
		UltimoPago:      &pago.Fecha,
		ProximoPago:     &proximo,
	}
	if err := uc.trasteros.Update(ctx, in.TrasteroID, patch); err != nil {
		return nil, err
	}
	return pago, nil
}
