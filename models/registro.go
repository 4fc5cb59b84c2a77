package models

import (
	"fmt"
	"strconv"
	"time"
)

// Sample kinds. The lowercase strings travel in URLs and in the
// token_acceso.TipoRegistro column.
const (
	TipoAgua = "agua"
	TipoAba  = "aba"
)

// TipoRegistroValido reports whether tipo names a known sample kind.
func TipoRegistroValido(tipo string) bool {
	return tipo == TipoAgua || tipo == TipoAba
}

// RegistroLab is the view of a sample record the workflow operates on.
// Both sample kinds implement it; the workflow never touches measurement
// fields, only identity, ownership and state.
type RegistroLab interface {
	RegistroID() int
	Tipo() string
	EstadoActual() Estado
	CambiarEstado(Estado)
	RegistradoPor() int
	AnalistaAsignado() *int
	AsignarAnalista(usuID int)
	// RegistrarRechazo stores the rejection reason. It is kept on
	// resubmission so the audit trail survives the re-entry loop.
	RegistrarRechazo(motivo string)
}

// CampoInforme is one labeled value on the printed report.
type CampoInforme struct {
	Etiqueta string
	Valor    string
}

// RegistroInforme exposes the fields the report renderer and the public
// lookup need. Each sample kind decides which of its columns belong in
// which section, so the renderer never branches on the concrete type.
type RegistroInforme interface {
	RegistroID() int
	Tipo() string
	NumeroMuestra() string
	DescripcionMuestra() string
	FechaRecepcionMuestra() *time.Time
	Solicitante() string
	EstadoActual() Estado
	AptoParaConsumo() *bool
	DatosGenerales() []CampoInforme
	Organolepticos() []CampoInforme
	Fisicoquimicos() []CampoInforme
	Microbiologicos() []CampoInforme
	Metodologia() []CampoInforme
}

// Formatting helpers shared by both record kinds when building report
// sections. Empty optionals render as "-" so the report keeps its grid.

func campoTexto(etiqueta string, v *string) CampoInforme {
	if v == nil || *v == "" {
		return CampoInforme{etiqueta, "-"}
	}
	return CampoInforme{etiqueta, *v}
}

func campoDecimal(etiqueta string, v *float64) CampoInforme {
	if v == nil {
		return CampoInforme{etiqueta, "-"}
	}
	return CampoInforme{etiqueta, strconv.FormatFloat(*v, 'f', -1, 64)}
}

func campoFecha(etiqueta string, v *time.Time) CampoInforme {
	if v == nil {
		return CampoInforme{etiqueta, "-"}
	}
	return CampoInforme{etiqueta, v.Format("02/01/2006")}
}

func campoEntero(etiqueta string, v int) CampoInforme {
	return CampoInforme{etiqueta, fmt.Sprintf("%d", v)}
}
