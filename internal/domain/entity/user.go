package entity

// Roles válidos para User.
const (
	RolPropietario   = "propietario"
	RolInmobiliaria  = "inmobiliaria"
	RolAdministrador = "administrador"
)

// User representa una cuenta del panel. Las cuentas se siembran en el
// bootstrap y no tienen operaciones de alta ni edición posteriores.
//
// La contraseña se guarda en claro, igual que en el documento de usuarios
// original; el almacén es local y monousuario.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // propietario, inmobiliaria, administrador
	Nombre   string `json:"nombre"`
}
