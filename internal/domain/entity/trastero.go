package entity

import "github.com/shopspring/decimal"

// TipoLlaveEstandar es el tipo de llave con el que se entrega un trastero vacío.
const TipoLlaveEstandar = "Estándar"

// Llaves describe el juego de llaves entregado con el trastero.
type Llaves struct {
	Cantidad     int    `json:"cantidad"`
	Tipo         string `json:"tipo"`
	FechaEntrega Fecha  `json:"fechaEntrega,omitzero"`
}

// Trastero es un compartimento de almacenaje numerado.
//
// Invariante de ocupación: el trastero está ocupado si y solo si InquilinoID
// no es nil. El resto de campos de pago son informativos y no afectan a la
// ocupación.
type Trastero struct {
	ID              string          `json:"id"`
	Numero          int             `json:"numero"`
	InquilinoID     *string         `json:"inquilinoId"`
	AlCorrientePago bool            `json:"alCorrientePago"`
	UltimoPago      Fecha           `json:"ultimoPago,omitzero"`
	ProximoPago     Fecha           `json:"proximoPago,omitzero"`
	PrecioMensual   decimal.Decimal `json:"precioMensual"`
	Llaves          Llaves          `json:"llaves"`
	CodigoAlarma    string          `json:"codigoAlarma,omitempty"`
	Notas           string          `json:"notas,omitempty"`
}

// Ocupado indica si el trastero tiene inquilino asignado.
func (t Trastero) Ocupado() bool {
	return t.InquilinoID != nil
}

// TrasteroPatch campos opcionales para una actualización parcial.
// QuitarInquilino pone InquilinoID a nil; tiene prioridad sobre InquilinoID.
type TrasteroPatch struct {
	InquilinoID     *string
	QuitarInquilino bool
	AlCorrientePago *bool
	UltimoPago      *Fecha
	ProximoPago     *Fecha
	PrecioMensual   *decimal.Decimal
	Llaves          *Llaves
	CodigoAlarma    *string
	Notas           *string
}

// Aplicar fusiona el patch sobre el trastero, campo a campo.
func (t *Trastero) Aplicar(p TrasteroPatch) {
	if p.QuitarInquilino {
		t.InquilinoID = nil
	} else if p.InquilinoID != nil {
		t.InquilinoID = p.InquilinoID
	}
	if p.AlCorrientePago != nil {
		t.AlCorrientePago = *p.AlCorrientePago
	}
	if p.UltimoPago != nil {
		t.UltimoPago = *p.UltimoPago
	}
	if p.ProximoPago != nil {
		t.ProximoPago = *p.ProximoPago
	}
	if p.PrecioMensual != nil {
		t.PrecioMensual = *p.PrecioMensual
	}
	if p.Llaves != nil {
		t.Llaves = *p.Llaves
	}
	if p.CodigoAlarma != nil {
		t.CodigoAlarma = *p.CodigoAlarma
	}
	if p.Notas != nil {
		t.Notas = *p.Notas
	}
}
