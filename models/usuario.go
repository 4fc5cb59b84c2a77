package models

// Roles known to the system. The three lab roles are the only ones allowed
// to log in.
const (
	RolRegistro  = "registro"
	RolAnalista  = "analista"
	RolEvaluador = "evaluador"
)

// RolValido reports whether rol is one of the lab roles.
func RolValido(rol string) bool {
	return rol == RolRegistro || rol == RolAnalista || rol == RolEvaluador
}

type Usuario struct {
	UsuID         int    `gorm:"primaryKey;column:usu_id" json:"usu_id"`
	UsuNombre     string `gorm:"column:usu_nombre" json:"usu_nombre"`
	UsuCorreo     string `gorm:"column:usu_correo;unique" json:"usu_correo"`
	UsuContrasena string `gorm:"column:usu_contrasena" json:"-"`
	UsuRol        string `gorm:"column:usu_rol" json:"usu_rol"`
	UsuActivo     bool   `gorm:"column:usu_activo;default:true" json:"usu_activo"`
}

func (Usuario) TableName() string {
	return "usuario"
}
