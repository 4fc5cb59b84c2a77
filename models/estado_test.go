package models

import (
	"errors"
	"testing"
)

func TestTransicionarTablaCompleta(t *testing.T) {
	estados := []Estado{EstadoPorAsignar, EstadoEnProceso, EstadoPorEvaluar, EstadoRechazado, EstadoAprobado}

	permitidas := map[Accion]map[Estado]Estado{
		AccionAsignar:   {EstadoPorAsignar: EstadoEnProceso},
		AccionCompletar: {EstadoEnProceso: EstadoPorEvaluar, EstadoRechazado: EstadoPorEvaluar},
		AccionAprobar:   {EstadoPorEvaluar: EstadoAprobado},
		AccionRechazar:  {EstadoPorEvaluar: EstadoRechazado},
	}

	for accion, destinos := range permitidas {
		for _, estado := range estados {
			siguiente, err := Transicionar(estado, accion)
			esperado, valida := destinos[estado]
			if valida {
				if err != nil {
					t.Errorf("%s desde %q: error inesperado %v", accion, estado, err)
					continue
				}
				if siguiente != esperado {
					t.Errorf("%s desde %q: llegó a %q, esperaba %q", accion, estado, siguiente, esperado)
				}
				continue
			}
			if !errors.Is(err, ErrTransicionInvalida) {
				t.Errorf("%s desde %q: esperaba ErrTransicionInvalida, obtuvo %v", accion, estado, err)
			}
			if siguiente != estado {
				t.Errorf("%s desde %q: el estado cambió a %q pese al error", accion, estado, siguiente)
			}
		}
	}
}

func TestTransicionarAccionDesconocida(t *testing.T) {
	if _, err := Transicionar(EstadoPorAsignar, Accion("archivar")); !errors.Is(err, ErrTransicionInvalida) {
		t.Fatalf("esperaba ErrTransicionInvalida, obtuvo %v", err)
	}
}

func TestTransicionarAprobadoEsTerminal(t *testing.T) {
	for _, accion := range []Accion{AccionAsignar, AccionCompletar, AccionAprobar, AccionRechazar} {
		if _, err := Transicionar(EstadoAprobado, accion); !errors.Is(err, ErrTransicionInvalida) {
			t.Errorf("%s sobre Aprobado: esperaba ErrTransicionInvalida, obtuvo %v", accion, err)
		}
	}
}

func TestEstadoEsValido(t *testing.T) {
	for _, estado := range []Estado{EstadoPorAsignar, EstadoEnProceso, EstadoPorEvaluar, EstadoRechazado, EstadoAprobado} {
		if !estado.EsValido() {
			t.Errorf("%q debería ser válido", estado)
		}
	}
	for _, estado := range []Estado{"", "Pendiente", "aprobado"} {
		if estado.EsValido() {
			t.Errorf("%q no debería ser válido", estado)
		}
	}
}

// TestCicloRechazoConservaMotivo recorre el ciclo completo de un registro,
// incluyendo un rechazo y su corrección, y verifica que el motivo del
// rechazo sigue consultable tras la reentrega.
func TestCicloRechazoConservaMotivo(t *testing.T) {
	registro := &RegistroAgua{ID: 42, Estado: EstadoPorAsignar}

	avanzar := func(accion Accion) {
		t.Helper()
		siguiente, err := Transicionar(registro.EstadoActual(), accion)
		if err != nil {
			t.Fatalf("%s desde %q: %v", accion, registro.EstadoActual(), err)
		}
		registro.CambiarEstado(siguiente)
	}

	registro.AsignarAnalista(7)
	avanzar(AccionAsignar)
	avanzar(AccionCompletar)

	registro.RegistrarRechazo("valor de pH faltante")
	avanzar(AccionRechazar)

	if registro.EstadoActual() != EstadoRechazado {
		t.Fatalf("estado = %q, esperaba Rechazado", registro.EstadoActual())
	}

	avanzar(AccionCompletar)

	if registro.EstadoActual() != EstadoPorEvaluar {
		t.Fatalf("estado tras reentrega = %q, esperaba Por Evaluar", registro.EstadoActual())
	}
	if registro.Observaciones == nil || *registro.Observaciones != "valor de pH faltante" {
		t.Fatalf("el motivo del rechazo se perdió tras la reentrega")
	}
	if analista := registro.AnalistaAsignado(); analista == nil || *analista != 7 {
		t.Fatalf("el analista asignado se perdió durante el ciclo")
	}

	avanzar(AccionAprobar)
	if registro.EstadoActual() != EstadoAprobado {
		t.Fatalf("estado final = %q, esperaba Aprobado", registro.EstadoActual())
	}
}
