package models

import (
	"errors"
	"fmt"
)

// Estado is the workflow state of a sample record. The values are the
// display strings the database and the front end already use, so they
// serialize unchanged; inside the API only this closed set exists.
type Estado string

const (
	EstadoPorAsignar Estado = "Por Asignar"
	EstadoEnProceso  Estado = "En Proceso"
	EstadoPorEvaluar Estado = "Por Evaluar"
	EstadoRechazado  Estado = "Rechazado"
	EstadoAprobado   Estado = "Aprobado"
)

// Accion is a workflow action a role can apply to a record.
type Accion string

const (
	AccionAsignar   Accion = "asignar"   // evaluador assigns an analyst
	AccionCompletar Accion = "completar" // analista submits results
	AccionAprobar   Accion = "aprobar"   // evaluador approves
	AccionRechazar  Accion = "rechazar"  // evaluador rejects
)

var ErrTransicionInvalida = errors.New("transicion de estado no permitida")

// transiciones is the full transition table. Any (accion, estado) pair not
// listed here is invalid. "Rechazado" is deliberately not terminal: the
// analyst corrects the results and resubmits with completar.
var transiciones = map[Accion]map[Estado]Estado{
	AccionAsignar: {
		EstadoPorAsignar: EstadoEnProceso,
	},
	AccionCompletar: {
		EstadoEnProceso: EstadoPorEvaluar,
		EstadoRechazado: EstadoPorEvaluar,
	},
	AccionAprobar: {
		EstadoPorEvaluar: EstadoAprobado,
	},
	AccionRechazar: {
		EstadoPorEvaluar: EstadoRechazado,
	},
}

// EsValido reports whether e is one of the known workflow states.
func (e Estado) EsValido() bool {
	switch e {
	case EstadoPorAsignar, EstadoEnProceso, EstadoPorEvaluar, EstadoRechazado, EstadoAprobado:
		return true
	}
	return false
}

// Transicionar returns the state reached by applying accion to estado, or
// ErrTransicionInvalida when the action is not permitted from that state.
func Transicionar(estado Estado, accion Accion) (Estado, error) {
	destinos, ok := transiciones[accion]
	if !ok {
		return estado, fmt.Errorf("%w: accion desconocida '%s'", ErrTransicionInvalida, accion)
	}
	siguiente, ok := destinos[estado]
	if !ok {
		return estado, fmt.Errorf("%w: no se puede %s un registro en estado '%s'",
			ErrTransicionInvalida, accion, estado)
	}
	return siguiente, nil
}
