package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Las actualizaciones y borrados sobre un ID inexistente NO devuelven
// ErrNotFound: son no-ops silenciosos por contrato de los repositorios. El
// error se reserva para operaciones que necesitan el recurso para continuar
// (p. ej. registrar un pago de un trastero que no existe).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)
