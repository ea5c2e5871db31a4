package usecase

import (
	"context"

	"github.com/tu-usuario/trasteros-pro/internal/application/dto"
	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
	"github.com/tu-usuario/trasteros-pro/internal/domain/repository"
)

// InquilinoUseCase altas, ediciones y bajas de inquilinos, más el historial.
type InquilinoUseCase struct {
	inquilinos repository.InquilinoRepository
	historial  repository.HistorialRepository
}

// NewInquilinoUseCase construye el caso de uso.
func NewInquilinoUseCase(inquilinos repository.InquilinoRepository, historial repository.HistorialRepository) *InquilinoUseCase {
	return &InquilinoUseCase{inquilinos: inquilinos, historial: historial}
}

// List devuelve los inquilinos activos.
func (uc *InquilinoUseCase) List(ctx context.Context) ([]entity.Inquilino, error) {
	return uc.inquilinos.List(ctx)
}

// Historial devuelve los inquilinos archivados, con fecha de baja y número de
// trastero estampados.
func (uc *InquilinoUseCase) Historial(ctx context.Context) ([]entity.Inquilino, error) {
	return uc.historial.List(ctx)
}

// Add da de alta un inquilino y devuelve el registro creado con su ID.
func (uc *InquilinoUseCase) Add(ctx context.Context, in dto.CreateInquilinoRequest) (*entity.Inquilino, error) {
	fechaAlta, err := entity.ParsearFecha(in.FechaAlta)
	if err != nil {
		return nil, err
	}
	return uc.inquilinos.Add(ctx, entity.Inquilino{
		Nombre:    in.Nombre,
		Apellidos: in.Apellidos,
		Email:     in.Email,
		Telefono:  in.Telefono,
		FechaAlta: fechaAlta,
	})
}

// Update aplica una edición parcial. Un ID inexistente es un no-op silencioso.
func (uc *InquilinoUseCase) Update(ctx context.Context, id string, in dto.UpdateInquilinoRequest) error {
	patch := entity.InquilinoPatch{
		Nombre:    in.Nombre,
		Apellidos: in.Apellidos,
		Email:     in.Email,
		Telefono:  in.Telefono,
	}
	if in.FechaAlta != nil {
		fecha, err := entity.ParsearFecha(*in.FechaAlta)
		if err != nil {
			return err
		}
		patch.FechaAlta = &fecha
	}
	return uc.inquilinos.Update(ctx, id, patch)
}

// Delete elimina el inquilino de la colección viva; no-op si no existe.
func (uc *InquilinoUseCase) Delete(ctx context.Context, id string) error {
	return uc.inquilinos.Delete(ctx, id)
}
