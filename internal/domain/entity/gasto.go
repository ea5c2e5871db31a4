package entity

import "github.com/shopspring/decimal"

// Categorías válidas para Gasto.
const (
	CategoriaMantenimiento = "mantenimiento"
	CategoriaReparacion    = "reparacion"
	CategoriaLimpieza      = "limpieza"
	CategoriaSeguridad     = "seguridad"
	CategoriaImpuestos     = "impuestos"
	CategoriaOtros         = "otros"
)

// Gasto es un gasto de explotación de la nave. Se crea y se borra; no hay
// operación de edición.
type Gasto struct {
	ID        string          `json:"id"`
	Fecha     Fecha           `json:"fecha"`
	Concepto  string          `json:"concepto"`
	Monto     decimal.Decimal `json:"monto"`
	Categoria string          `json:"categoria"`
	Notas     string          `json:"notas,omitempty"`
}
