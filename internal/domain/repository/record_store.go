package repository

import "context"

// Claves de los documentos persistidos. Se conservan los nombres del almacén
// original para que los documentos existentes sigan siendo legibles.
const (
	ClaveUsers       = "storage_app_users"
	ClaveInquilinos  = "storage_app_inquilinos"
	ClaveTrasteros   = "storage_app_trasteros"
	ClavePagos       = "storage_app_pagos"
	ClaveGastos      = "storage_app_gastos"
	ClaveCurrentUser = "storage_app_current_user"
	ClaveHistorial   = "storage_app_historial_inquilinos"
)

// Claves enumera todos los documentos del almacén.
func Claves() []string {
	return []string{
		ClaveUsers, ClaveInquilinos, ClaveTrasteros, ClavePagos,
		ClaveGastos, ClaveCurrentUser, ClaveHistorial,
	}
}

// RecordStore define el puerto de persistencia clave → documento JSON.
//
// Get devuelve ok=false cuando la clave no existe; la ausencia nunca es un
// error. No hay transacciones ni versionado: cada colección se lee y se
// escribe como un documento completo.
type RecordStore interface {
	Get(ctx context.Context, clave string) (valor []byte, ok bool, err error)
	Set(ctx context.Context, clave string, valor []byte) error
	Remove(ctx context.Context, clave string) error
}
