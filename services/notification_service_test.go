package services

import (
	"strings"
	"testing"

	"lab-registry-api/models"
)

func TestMensajeAprobacion(t *testing.T) {
	registro := &models.RegistroAgua{ID: 42, Estado: models.EstadoAprobado}

	asunto, cuerpo := mensajeAprobacion(registro)

	if asunto != "Registro agua #42 aprobado" {
		t.Errorf("asunto = %q", asunto)
	}
	if !strings.Contains(cuerpo, "agua #42") || !strings.Contains(cuerpo, "aprobado") {
		t.Errorf("cuerpo no identifica el registro aprobado: %q", cuerpo)
	}
}

func TestMensajeRechazo(t *testing.T) {
	registro := &models.RegistroAba{ID: 17, Estado: models.EstadoRechazado}

	asunto, cuerpo := mensajeRechazo(registro, "valor de pH faltante")

	if asunto != "Registro aba #17 rechazado" {
		t.Errorf("asunto = %q", asunto)
	}
	if !strings.Contains(cuerpo, "valor de pH faltante") {
		t.Errorf("cuerpo no incluye el motivo del rechazo: %q", cuerpo)
	}
	if !strings.Contains(cuerpo, "aba #17") {
		t.Errorf("cuerpo no identifica el registro: %q", cuerpo)
	}
}
