package models

import (
	"regexp"
	"testing"
	"time"
)

var formatoToken = regexp.MustCompile(`^[0-9A-F]{32}$`)

func TestGenerarTokenUnicoFormato(t *testing.T) {
	vistos := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := GenerarTokenUnico()
		if !formatoToken.MatchString(token) {
			t.Fatalf("token %q no es hexadecimal en mayúsculas de 32 caracteres", token)
		}
		if vistos[token] {
			t.Fatalf("token repetido: %q", token)
		}
		vistos[token] = true
	}
}

func TestNuevoTokenAcceso(t *testing.T) {
	ahora := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	token := NuevoTokenAcceso(42, "AGUA", DiasExpiracionToken, ahora)

	if !formatoToken.MatchString(token.Token) {
		t.Errorf("token %q con formato inesperado", token.Token)
	}
	if token.RegistroID != 42 {
		t.Errorf("RegistroID = %d, esperaba 42", token.RegistroID)
	}
	if token.TipoRegistro != "agua" {
		t.Errorf("TipoRegistro = %q, esperaba el tipo en minúsculas", token.TipoRegistro)
	}
	if !token.FechaCreacion.Equal(ahora) {
		t.Errorf("FechaCreacion = %v, esperaba %v", token.FechaCreacion, ahora)
	}
	if esperada := ahora.AddDate(0, 0, 90); !token.FechaExpiracion.Equal(esperada) {
		t.Errorf("FechaExpiracion = %v, esperaba %v", token.FechaExpiracion, esperada)
	}
	if !token.Activo {
		t.Error("un token recién emitido debe estar activo")
	}
	if token.AccesosCount != 0 || token.UltimoAcceso != nil || token.IPUltimoAcceso != nil {
		t.Error("los contadores de acceso deben partir en cero")
	}
}

func TestTokenAccesoVigencia(t *testing.T) {
	ahora := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	casos := []struct {
		nombre   string
		token    TokenAcceso
		valido   bool
		expirado bool
	}{
		{
			nombre:   "activo y vigente",
			token:    TokenAcceso{Activo: true, FechaExpiracion: ahora.AddDate(0, 0, 30)},
			valido:   true,
			expirado: false,
		},
		{
			nombre:   "activo pero expirado",
			token:    TokenAcceso{Activo: true, FechaExpiracion: ahora.AddDate(0, 0, -1)},
			valido:   false,
			expirado: true,
		},
		{
			nombre:   "revocado sin expirar",
			token:    TokenAcceso{Activo: false, FechaExpiracion: ahora.AddDate(0, 0, 30)},
			valido:   false,
			expirado: false,
		},
		{
			nombre:   "expira exactamente ahora",
			token:    TokenAcceso{Activo: true, FechaExpiracion: ahora},
			valido:   true,
			expirado: false,
		},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			if got := caso.token.EsValido(ahora); got != caso.valido {
				t.Errorf("EsValido = %v, esperaba %v", got, caso.valido)
			}
			if got := caso.token.Expirado(ahora); got != caso.expirado {
				t.Errorf("Expirado = %v, esperaba %v", got, caso.expirado)
			}
		})
	}
}
