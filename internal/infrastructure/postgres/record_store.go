// Package postgres implementa el RecordStore sobre una tabla de documentos
// JSONB: una fila por colección, con la misma disposición clave → documento
// que el almacén original.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/trasteros-pro/internal/domain/repository"
)

var _ repository.RecordStore = (*RecordStore)(nil)

// RecordStore almacén de documentos sobre PostgreSQL.
type RecordStore struct {
	pool *pgxpool.Pool
}

// NewRecordStore construye el adaptador sobre el pool.
func NewRecordStore(pool *pgxpool.Pool) *RecordStore {
	return &RecordStore{pool: pool}
}

// EnsureSchema crea la tabla de documentos si no existe.
func (s *RecordStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS documentos (
			clave          TEXT PRIMARY KEY,
			valor          JSONB NOT NULL,
			actualizado_en TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("crear tabla documentos: %w", err)
	}
	return nil
}

// Get devuelve el documento de la clave; ok=false si la fila no existe.
func (s *RecordStore) Get(ctx context.Context, clave string) ([]byte, bool, error) {
	var valor []byte
	err := s.pool.QueryRow(ctx,
		`SELECT valor FROM documentos WHERE clave = $1`, clave,
	).Scan(&valor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("leer documento %s: %w", clave, err)
	}
	return valor, true, nil
}

// Set inserta o sustituye el documento completo de la clave.
func (s *RecordStore) Set(ctx context.Context, clave string, valor []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO documentos (clave, valor, actualizado_en)
		VALUES ($1, $2, now())
		ON CONFLICT (clave) DO UPDATE
		SET valor = EXCLUDED.valor, actualizado_en = now()`,
		clave, valor,
	)
	if err != nil {
		return fmt.Errorf("guardar documento %s: %w", clave, err)
	}
	return nil
}

// Remove borra la fila de la clave; no-op si no existe.
func (s *RecordStore) Remove(ctx context.Context, clave string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM documentos WHERE clave = $1`, clave)
	if err != nil {
		return fmt.Errorf("borrar documento %s: %w", clave, err)
	}
	return nil
}
