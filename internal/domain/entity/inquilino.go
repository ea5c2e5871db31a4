package entity

// Inquilino representa a la persona que alquila un trastero.
//
// FechaBaja y TrasteroNumero solo se rellenan cuando el registro se copia al
// historial al retirar al inquilino de un trastero; en la colección viva
// permanecen vacíos.
type Inquilino struct {
	ID             string `json:"id"`
	Nombre         string `json:"nombre"`
	Apellidos      string `json:"apellidos"`
	Email          string `json:"email,omitempty"`
	Telefono       string `json:"telefono,omitempty"`
	FechaAlta      Fecha  `json:"fechaAlta"`
	FechaBaja      Fecha  `json:"fechaBaja,omitzero"`
	TrasteroNumero int    `json:"trasteroNumero,omitempty"`
}

// InquilinoPatch campos opcionales para una actualización parcial.
// Los campos nil no se tocan.
type InquilinoPatch struct {
	Nombre    *string
	Apellidos *string
	Email     *string
	Telefono  *string
	FechaAlta *Fecha
}

// Aplicar fusiona el patch sobre el inquilino, campo a campo.
func (i *Inquilino) Aplicar(p InquilinoPatch) {
	if p.Nombre != nil {
		i.Nombre = *p.Nombre
	}
	if p.Apellidos != nil {
		i.Apellidos = *p.Apellidos
	}
	if p.Email != nil {
		i.Email = *p.Email
	}
	if p.Telefono != nil {
		i.Telefono = *p.Telefono
	}
	if p.FechaAlta != nil {
		i.FechaAlta = *p.FechaAlta
	}
}
