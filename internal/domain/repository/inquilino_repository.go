package repository

import (
	"context"

	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
)

// InquilinoRepository define el puerto de persistencia para Inquilino.
//
// List devuelve una lista vacía si la colección no existe. Update y Delete
// son no-ops silenciosos cuando el ID no está en la colección.
type InquilinoRepository interface {
	List(ctx context.Context) ([]entity.Inquilino, error)
	SaveAll(ctx context.Context, inquilinos []entity.Inquilino) error
	Add(ctx context.Context, inquilino entity.Inquilino) (*entity.Inquilino, error)
	Update(ctx context.Context, id string, patch entity.InquilinoPatch) error
	Delete(ctx context.Context, id string) error
}

// HistorialRepository define el puerto del archivo de inquilinos dados de baja.
//
// Archivar estampa la fecha de baja y el número de trastero sobre una COPIA y
// la añade al historial; el registro vivo de la colección de inquilinos no se
// modifica ni se elimina (el llamador decide qué hacer con él).
type HistorialRepository interface {
	List(ctx context.Context) ([]entity.Inquilino, error)
	SaveAll(ctx context.Context, inquilinos []entity.Inquilino) error
	Archivar(ctx context.Context, inquilino entity.Inquilino, trasteroNumero int) error
}
