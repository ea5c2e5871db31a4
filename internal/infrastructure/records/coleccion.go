// Package records implementa los repositorios de dominio sobre el RecordStore.
//
// Cada colección es un único documento JSON: toda operación es un ciclo
// leer-modificar-escribir del documento completo. No hay bloqueo entre
// procesos; el despliegue asume un único escritor (si dos instancias escriben
// a la vez, gana la última escritura).
package records

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tu-usuario/trasteros-pro/internal/domain/repository"
)

// coleccion agrupa la (de)serialización de un documento-lista de entidades.
type coleccion[T any] struct {
	store repository.RecordStore
	clave string
}

// listar devuelve las entidades en el orden almacenado. Una clave ausente es
// una lista vacía, nunca un error. Un documento corrupto sí es un error: se
// prefiere fallar pronto a devolver una colección vacía que al guardarse
// machacaría los datos.
func (c coleccion[T]) listar(ctx context.Context) ([]T, error) {
	raw, ok, err := c.store.Get(ctx, c.clave)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", c.clave, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// guardar sobrescribe el documento completo de la colección.
func (c coleccion[T]) guardar(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("codificar %s: %w", c.clave, err)
	}
	return c.store.Set(ctx, c.clave, raw)
}
