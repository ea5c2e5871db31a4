// Package memory implementa el RecordStore en memoria.
//
// Es el modo "sin almacén persistente": se usa cuando la aplicación arranca
// sin base de datos configurada y en los tests. Los datos viven lo que viva el
// proceso.
package memory

import (
	"context"
	"sync"

	"github.com/tu-usuario/trasteros-pro/internal/domain/repository"
)

var _ repository.RecordStore = (*RecordStore)(nil)

// RecordStore almacén clave → documento respaldado por un mapa.
type RecordStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewRecordStore construye el almacén vacío.
func NewRecordStore() *RecordStore {
	return &RecordStore{docs: make(map[string][]byte)}
}

// Get devuelve el documento y ok=false si la clave no existe. Nunca falla.
func (s *RecordStore) Get(_ context.Context, clave string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[clave]
	if !ok {
		return nil, false, nil
	}
	copia := make([]byte, len(doc))
	copy(copia, doc)
	return copia, true, nil
}

// Set guarda el documento bajo la clave.
func (s *RecordStore) Set(_ context.Context, clave string, valor []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copia := make([]byte, len(valor))
	copy(copia, valor)
	s.docs[clave] = copia
	return nil
}

// Remove elimina la clave; no-op si no existe.
func (s *RecordStore) Remove(_ context.Context, clave string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, clave)
	return nil
}
