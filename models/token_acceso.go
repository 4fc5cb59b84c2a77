package models

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DiasExpiracionToken is the default public-token lifetime.
const DiasExpiracionToken = 90

// TokenAcceso grants public, unauthenticated read access to one approved
// sample record for a limited time.
type TokenAcceso struct {
	ID              int        `gorm:"primaryKey;column:Id" json:"id"`
	Token           string     `gorm:"column:Token;size:255;uniqueIndex" json:"token"`
	RegistroID      int        `gorm:"column:RegistroId" json:"registroId"`
	TipoRegistro    string     `gorm:"column:TipoRegistro;size:10" json:"tipoRegistro"`
	FechaCreacion   time.Time  `gorm:"column:FechaCreacion" json:"fechaCreacion"`
	FechaExpiracion time.Time  `gorm:"column:FechaExpiracion" json:"fechaExpiracion"`
	Activo          bool       `gorm:"column:Activo;default:true" json:"activo"`
	AccesosCount    int        `gorm:"column:AccesosCount;default:0" json:"accesosCount"`
	UltimoAcceso    *time.Time `gorm:"column:UltimoAcceso" json:"ultimoAcceso"`
	IPUltimoAcceso  *string    `gorm:"column:IpUltimoAcceso;size:45" json:"ipUltimoAcceso"`
}

func (TokenAcceso) TableName() string {
	return "token_acceso"
}

// EsValido reports whether the token grants access at instant ahora.
func (t *TokenAcceso) EsValido(ahora time.Time) bool {
	return t.Activo && !ahora.After(t.FechaExpiracion)
}

// Expirado reports whether the token's lifetime has passed. An expired
// token can still be Activo; both conditions are surfaced separately.
func (t *TokenAcceso) Expirado(ahora time.Time) bool {
	return ahora.After(t.FechaExpiracion)
}

// GenerarTokenUnico returns a fresh opaque token: a 128-bit random value,
// hex encoded without separators and uppercased (32 characters).
func GenerarTokenUnico() string {
	id := uuid.New()
	return strings.ToUpper(hex.EncodeToString(id[:]))
}

// NuevoTokenAcceso builds an active token for the given record with the
// given lifetime in days, counters zeroed.
func NuevoTokenAcceso(registroID int, tipoRegistro string, dias int, ahora time.Time) *TokenAcceso {
	return &TokenAcceso{
		Token:           GenerarTokenUnico(),
		RegistroID:      registroID,
		TipoRegistro:    strings.ToLower(tipoRegistro),
		FechaCreacion:   ahora,
		FechaExpiracion: ahora.AddDate(0, 0, dias),
		Activo:          true,
	}
}
