package dto

// CreateInquilinoRequest alta de inquilino. Las fechas van como "2006-01-02".
type CreateInquilinoRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	Apellidos string `json:"apellidos" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Telefono  string `json:"telefono"`
	FechaAlta string `json:"fechaAlta" validate:"required"`
}

// UpdateInquilinoRequest edición parcial: los campos nil no se tocan.
type UpdateInquilinoRequest struct {
	Nombre    *string `json:"nombre"`
	Apellidos *string `json:"apellidos"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Telefono  *string `json:"telefono"`
	FechaAlta *string `json:"fechaAlta"`
}
