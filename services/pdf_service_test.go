package services

import (
	"bytes"
	"testing"
	"time"

	"lab-registry-api/models"
)

func punteroTexto(s string) *string { return &s }

func punteroDecimal(f float64) *float64 { return &f }

func punteroBool(b bool) *bool { return &b }

func registroAguaAprobado() *models.RegistroAgua {
	fecha := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	return &models.RegistroAgua{
		ID:             42,
		NumMuestra:     punteroTexto("AG-2026-042"),
		Muestra:        punteroTexto("Agua potable de red"),
		EnviadaPor:     punteroTexto("Región de Salud Metropolitana"),
		FechaRecepcion: &fecha,
		Color:          punteroTexto("Incolora"),
		Olor:           punteroTexto("Inodora"),
		PH:             punteroDecimal(7.2),
		CloroResidual:  punteroDecimal(0.5),
		ResEColi:       punteroTexto("Ausente"),
		Observaciones:  punteroTexto("Cumple la norma vigente"),
		AptoConsumo:    punteroBool(true),
		Estado:         models.EstadoAprobado,
		UsuIDRegistro:  1,
	}
}

func TestRenderInformeProducePdf(t *testing.T) {
	contenido, err := renderInforme(registroAguaAprobado())
	if err != nil {
		t.Fatalf("renderInforme: %v", err)
	}
	if !bytes.HasPrefix(contenido, []byte("%PDF")) {
		t.Fatalf("el contenido no empieza con la cabecera PDF")
	}
	if len(contenido) < 1000 {
		t.Errorf("informe sospechosamente corto: %d bytes", len(contenido))
	}
}

func TestRenderInformeSinDictamen(t *testing.T) {
	registro := registroAguaAprobado()
	registro.AptoConsumo = nil

	contenido, err := renderInforme(registro)
	if err != nil {
		t.Fatalf("renderInforme: %v", err)
	}
	if !bytes.HasPrefix(contenido, []byte("%PDF")) {
		t.Fatalf("el contenido no empieza con la cabecera PDF")
	}
}

func TestRenderInformeAba(t *testing.T) {
	fecha := time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC)
	registro := &models.RegistroAba{
		ID:                17,
		NumMuestra:        punteroTexto("AB-2026-017"),
		TipoMuestra:       punteroTexto("Bebida láctea"),
		NombreSolicitante: punteroTexto("Planta Procesadora Central"),
		FechaRecibo:       &fecha,
		AptoConsumo:       punteroBool(false),
		Estado:            models.EstadoAprobado,
		UsuIDRegistro:     1,
	}

	contenido, err := renderInforme(registro)
	if err != nil {
		t.Fatalf("renderInforme: %v", err)
	}
	if !bytes.HasPrefix(contenido, []byte("%PDF")) {
		t.Fatalf("el contenido no empieza con la cabecera PDF")
	}
}
