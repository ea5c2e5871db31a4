package dto

import "github.com/shopspring/decimal"

// LlavesRequest juego de llaves dentro de una edición de trastero.
type LlavesRequest struct {
	Cantidad     int    `json:"cantidad" validate:"min=0"`
	Tipo         string `json:"tipo" validate:"required"`
	FechaEntrega string `json:"fechaEntrega"`
}

// UpdateTrasteroRequest edición parcial de un trastero: los campos nil no se
// tocan. QuitarInquilino pone la asignación a null y tiene prioridad sobre
// InquilinoID.
type UpdateTrasteroRequest struct {
	InquilinoID     *string          `json:"inquilinoId"`
	QuitarInquilino bool             `json:"quitarInquilino"`
	AlCorrientePago *bool            `json:"alCorrientePago"`
	UltimoPago      *string          `json:"ultimoPago"`
	ProximoPago     *string          `json:"proximoPago"`
	PrecioMensual   *decimal.Decimal `json:"precioMensual"`
	Llaves          *LlavesRequest   `json:"llaves"`
	CodigoAlarma    *string          `json:"codigoAlarma"`
	Notas           *string          `json:"notas"`
}
