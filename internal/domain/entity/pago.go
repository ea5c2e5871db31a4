package entity

import "github.com/shopspring/decimal"

// Pago es un cobro de renta registrado. La colección de pagos es de solo
// inserción: nunca se edita ni se borra un pago.
type Pago struct {
	ID          string          `json:"id"`
	TrasteroID  string          `json:"trasteroId"`
	InquilinoID string          `json:"inquilinoId"`
	Fecha       Fecha           `json:"fecha"`
	Monto       decimal.Decimal `json:"monto"`
	Concepto    string          `json:"concepto"`
	MetodoPago  string          `json:"metodoPago"`
	MesPago     int             `json:"mesPago"` // 1-12
	AnioPago    int             `json:"anioPago"`
}
