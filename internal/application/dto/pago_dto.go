package dto

import "github.com/shopspring/decimal"

// RegistrarPagoRequest registro de un cobro de renta.
type RegistrarPagoRequest struct {
	TrasteroID  string          `json:"trasteroId" validate:"required"`
	InquilinoID string          `json:"inquilinoId" validate:"required"`
	Fecha       string          `json:"fecha" validate:"required"`
	Monto       decimal.Decimal `json:"monto" validate:"required"`
	Concepto    string          `json:"concepto" validate:"required"`
	MetodoPago  string          `json:"metodoPago" validate:"required"`
	MesPago     int             `json:"mesPago" validate:"required,min=1,max=12"`
	AnioPago    int             `json:"anioPago" validate:"required,min=2000"`
}
