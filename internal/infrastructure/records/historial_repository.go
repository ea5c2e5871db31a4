package records

import (
	"context"
	"time"

	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
	"github.com/tu-usuario/trasteros-pro/internal/domain/repository"
)

var _ repository.HistorialRepository = (*HistorialRepo)(nil)

// HistorialRepo archivo de inquilinos dados de baja, sobre el RecordStore.
type HistorialRepo struct {
	col   coleccion[entity.Inquilino]
	ahora func() time.Time
}

// NewHistorialRepository construye el repositorio.
func NewHistorialRepository(store repository.RecordStore) *HistorialRepo {
	return &HistorialRepo{
		col:   coleccion[entity.Inquilino]{store: store, clave: repository.ClaveHistorial},
		ahora: time.Now,
	}
}

// List devuelve el historial en orden de archivado.
func (r *HistorialRepo) List(ctx context.Context) ([]entity.Inquilino, error) {
	return r.col.listar(ctx)
}

// SaveAll sobrescribe el historial completo.
func (r *HistorialRepo) SaveAll(ctx context.Context, inquilinos []entity.Inquilino) error {
	return r.col.guardar(ctx, inquilinos)
}

// Archivar estampa la fecha de baja de hoy y el número de trastero sobre una
// copia del inquilino y la añade al historial. No toca la colección viva de
// inquilinos: el registro original sigue listado como activo.
func (r *HistorialRepo) Archivar(ctx context.Context, inquilino entity.Inquilino, trasteroNumero int) error {
	historial, err := r.col.listar(ctx)
	if err != nil {
		return err
	}
	inquilino.FechaBaja = entity.FechaDe(r.ahora())
	inquilino.TrasteroNumero = trasteroNumero
	historial = append(historial, inquilino)
	return r.col.guardar(ctx, historial)
}
