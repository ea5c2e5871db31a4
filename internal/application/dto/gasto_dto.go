package dto

import "github.com/shopspring/decimal"

// CreateGastoRequest alta de un gasto de explotación.
type CreateGastoRequest struct {
	Fecha     string          `json:"fecha" validate:"required"`
	Concepto  string          `json:"concepto" validate:"required"`
	Monto     decimal.Decimal `json:"monto" validate:"required"`
	Categoria string          `json:"categoria" validate:"required,oneof=mantenimiento reparacion limpieza seguridad impuestos otros"`
	Notas     string          `json:"notas"`
}
