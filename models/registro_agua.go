package models

import (
	"time"
)

// RegistroAgua is a water sample intake record. Column names match the
// legacy REGISTRO_AGUA table.
type RegistroAgua struct {
	ID int `gorm:"primaryKey;column:REG_AGUA_ID" json:"id"`

	// Intake data
	RegionSalud      *string    `gorm:"column:REG_AGUA_REGION_SALUD" json:"regionSalud"`
	DptoArea         *string    `gorm:"column:REG_AGUA_DPTO_AREA" json:"dptoArea"`
	TomadaPor        *string    `gorm:"column:REG_AGUA_TOMADA_POR" json:"tomadaPor"`
	NumOficio        *string    `gorm:"column:REG_AGUA_NUM_OFICIO" json:"numOficio"`
	NumMuestra       *string    `gorm:"column:REG_AGUA_NUM_MUESTRA" json:"numMuestra"`
	EnviadaPor       *string    `gorm:"column:REG_AGUA_ENVIADA_POR" json:"enviadaPor"`
	Muestra          *string    `gorm:"column:REG_AGUA_MUESTRA" json:"muestra"`
	Direccion        *string    `gorm:"column:REG_AGUA_DIRECCION" json:"direccion"`
	CondicionMuestra *string    `gorm:"column:REG_AGUA_CONDICION_MUESTRA" json:"condicionMuestra"`
	MotivoSolicitud  *string    `gorm:"column:REG_AGUA_MOTIVO_SOLICITUD" json:"motivoSolicitud"`
	FechaToma        *time.Time `gorm:"column:REG_AGUA_FECHA_TOMA" json:"fechaToma"`
	FechaRecepcion   *time.Time `gorm:"column:REG_AGUA_FECHA_RECEPCION" json:"fechaRecepcion"`

	// Organoleptic characteristics
	Color   *string `gorm:"column:REG_AGUA_COLOR" json:"color"`
	Olor    *string `gorm:"column:REG_AGUA_OLOR" json:"olor"`
	Sabor   *string `gorm:"column:REG_AGUA_SABOR" json:"sabor"`
	Aspecto *string `gorm:"column:REG_AGUA_ASPECTO" json:"aspecto"`
	Textura *string `gorm:"column:REG_AGUA_TEXTURA" json:"textura"`

	// Physico-chemical analysis
	PesoNeto             *float64   `gorm:"column:REG_AGUA_PESO_NETO" json:"pesoNeto"`
	FechaVencimiento     *time.Time `gorm:"column:REG_AGUA_FECHA_VENC" json:"fechaVencimiento"`
	Acidez               *float64   `gorm:"column:REG_AGUA_ACIDEZ" json:"acidez"`
	CloroResidual        *float64   `gorm:"column:REG_AGUA_CLORO_RESIDUAL" json:"cloroResidual"`
	Cenizas              *float64   `gorm:"column:REG_AGUA_CENIZAS" json:"cenizas"`
	Cumarina             *string    `gorm:"column:REG_AGUA_CUMARINA" json:"cumarina"`
	Cloruro              *float64   `gorm:"column:REG_AGUA_CLORURO" json:"cloruro"`
	Densidad             *float64   `gorm:"column:REG_AGUA_DENSIDAD" json:"densidad"`
	Dureza               *string    `gorm:"column:REG_AGUA_DUREZA" json:"dureza"`
	ExtractoSeco         *string    `gorm:"column:REG_AGUA_EXTRACTO_SECO" json:"extractoSeco"`
	Fecula               *string    `gorm:"column:REG_AGUA_FECULA" json:"fecula"`
	GradoAlcoholico      *float64   `gorm:"column:REG_AGUA_GRADO_ALCOHOLICO" json:"gradoAlcoholico"`
	Humedad              *float64   `gorm:"column:REG_AGUA_HUMEDAD" json:"humedad"`
	IndiceRefaccion      *float64   `gorm:"column:REG_AGUA_INDICE_REFACCION" json:"indiceRefaccion"`
	IndiceAcidez         *float64   `gorm:"column:REG_AGUA_INDICE_ACIDEZ" json:"indiceAcidez"`
	IndiceRancidez       *float64   `gorm:"column:REG_AGUA_INDICE_RANCIDEZ" json:"indiceRancidez"`
	MateriaGrasaCualit   *string    `gorm:"column:REG_AGUA_MATERIA_GRASA_CUALIT" json:"materiaGrasaCualit"`
	MateriaGrasaCuantit  *float64   `gorm:"column:REG_AGUA_MATERIA_GRASA_CUANTIT" json:"materiaGrasaCuantit"`
	PH                   *float64   `gorm:"column:REG_AGUA_PH" json:"ph"`
	PruebaEber           *string    `gorm:"column:REG_AGUA_PRUEBA_EBER" json:"pruebaEber"`
	SolidosTotales       *float64   `gorm:"column:REG_AGUA_SOLIDOS_TOTALES" json:"solidosTotales"`
	TiempoCoccion        *string    `gorm:"column:REG_AGUA_TIEMPO_COCCION" json:"tiempoCoccion"`
	OtrasDeterminaciones *string    `gorm:"column:REG_AGUA_OTRAS_DETERMINACIONES" json:"otrasDeterminaciones"`
	Referencia           *string    `gorm:"column:REG_AGUA_REFERENCIA" json:"referencia"`
	TemperaturaAmbiente  *float64   `gorm:"column:REG_AGUA_TEMPERATURA_AMBIENTE" json:"temperaturaAmbiente"`
	FechaReporte         *time.Time `gorm:"column:REG_AGUA_FECHA_REPORTE" json:"fechaReporte"`

	// Microbiological results
	ResMicroorganismosAerobios *string `gorm:"column:REG_AGUA_RES_MICROORG_AEROBIOS" json:"resMicroorganismosAerobios"`
	ResRecuentoColiformes      *string `gorm:"column:REG_AGUA_RES_RECUENTO_COLIFORMES" json:"resRecuentoColiformes"`
	ResColiformesTotales       *string `gorm:"column:REG_AGUA_RES_COLIFORMES_TOTALES" json:"resColiformesTotales"`
	ResPseudomonasSpp          *string `gorm:"column:REG_AGUA_PSEUDOMONAS_SPP" json:"resPseudomonasSpp"`
	ResEColi                   *string `gorm:"column:REG_AGUA_RES_E_COLI" json:"resEColi"`
	ResSalmonellaSpp           *string `gorm:"column:REG_AGUA_RES_SALMONELLA_SPP" json:"resSalmonellaSpp"`
	ResEstafilococosAureus     *string `gorm:"column:REG_AGUA_RES_ESTAFILOCOCOS_AUREUS" json:"resEstafilococosAureus"`
	ResHongos                  *string `gorm:"column:REG_AGUA_RES_HONGOS" json:"resHongos"`
	ResLevaduras               *string `gorm:"column:REG_AGUA_RES_LEVADURAS" json:"resLevaduras"`
	ResEsterilidadComercial    *string `gorm:"column:REG_AGUA_RES_ESTERILIDAD_COMERCIAL" json:"resEsterilidadComercial"`
	ResListeriaMonocytogenes   *string `gorm:"column:REG_AGUA_RES_LISTERIA_MONOCYTOGENES" json:"resListeriaMonocytogenes"`

	// Methodology and verdict
	MetodologiaReferencia *string `gorm:"column:REG_AGUA_METODOLOGIA_REFERENCIA" json:"metodologiaReferencia"`
	Equipos               *string `gorm:"column:REG_AGUA_EQUIPOS" json:"equipos"`
	Observaciones         *string `gorm:"column:REG_AGUA_OBSERVACIONES" json:"observaciones"`
	AptoConsumo           *bool   `gorm:"column:REG_AGUA_APTO_CONSUMO" json:"aptoConsumo"`
	Estado                Estado  `gorm:"column:REG_AGUA_ESTADO" json:"estado"`

	// Ownership
	UsuIDRegistro  int  `gorm:"column:USU_ID_REGISTRO" json:"usuIdRegistro"`
	UsuIDAnalista  *int `gorm:"column:USU_ID_ANALISTA" json:"usuIdAnalista"`
	UsuIDEvaluador *int `gorm:"column:USU_ID_EVALUADOR" json:"usuIdEvaluador"`

	UsuarioRegistro  *Usuario `gorm:"foreignKey:UsuIDRegistro" json:"usuarioRegistro,omitempty"`
	UsuarioAnalista  *Usuario `gorm:"foreignKey:UsuIDAnalista" json:"usuarioAnalista,omitempty"`
	UsuarioEvaluador *Usuario `gorm:"foreignKey:UsuIDEvaluador" json:"usuarioEvaluador,omitempty"`
}

func (RegistroAgua) TableName() string {
	return "REGISTRO_AGUA"
}

// RegistroLab

func (r *RegistroAgua) RegistroID() int        { return r.ID }
func (r *RegistroAgua) Tipo() string           { return TipoAgua }
func (r *RegistroAgua) EstadoActual() Estado   { return r.Estado }
func (r *RegistroAgua) CambiarEstado(e Estado) { r.Estado = e }
func (r *RegistroAgua) RegistradoPor() int     { return r.UsuIDRegistro }
func (r *RegistroAgua) AnalistaAsignado() *int { return r.UsuIDAnalista }
func (r *RegistroAgua) AsignarAnalista(id int) { r.UsuIDAnalista = &id }

func (r *RegistroAgua) RegistrarRechazo(motivo string) {
	r.Observaciones = &motivo
}

// RegistroInforme

func (r *RegistroAgua) NumeroMuestra() string {
	if r.NumMuestra == nil {
		return ""
	}
	return *r.NumMuestra
}

func (r *RegistroAgua) DescripcionMuestra() string {
	if r.Muestra == nil {
		return ""
	}
	return *r.Muestra
}

func (r *RegistroAgua) FechaRecepcionMuestra() *time.Time { return r.FechaRecepcion }

func (r *RegistroAgua) Solicitante() string {
	if r.EnviadaPor == nil {
		return ""
	}
	return *r.EnviadaPor
}

func (r *RegistroAgua) AptoParaConsumo() *bool { return r.AptoConsumo }

func (r *RegistroAgua) DatosGenerales() []CampoInforme {
	return []CampoInforme{
		campoEntero("No. de registro", r.ID),
		campoTexto("No. de muestra", r.NumMuestra),
		campoTexto("Región de salud", r.RegionSalud),
		campoTexto("Departamento / área", r.DptoArea),
		campoTexto("Tomada por", r.TomadaPor),
		campoTexto("No. de oficio", r.NumOficio),
		campoTexto("Enviada por", r.EnviadaPor),
		campoTexto("Muestra", r.Muestra),
		campoTexto("Dirección", r.Direccion),
		campoTexto("Condición de la muestra", r.CondicionMuestra),
		campoTexto("Motivo de la solicitud", r.MotivoSolicitud),
		campoFecha("Fecha de toma", r.FechaToma),
		campoFecha("Fecha de recepción", r.FechaRecepcion),
	}
}

func (r *RegistroAgua) Organolepticos() []CampoInforme {
	return []CampoInforme{
		campoTexto("Color", r.Color),
		campoTexto("Olor", r.Olor),
		campoTexto("Sabor", r.Sabor),
		campoTexto("Aspecto", r.Aspecto),
		campoTexto("Textura", r.Textura),
	}
}

func (r *RegistroAgua) Fisicoquimicos() []CampoInforme {
	return []CampoInforme{
		campoDecimal("pH", r.PH),
		campoDecimal("Cloro residual", r.CloroResidual),
		campoDecimal("Acidez", r.Acidez),
		campoDecimal("Cloruro", r.Cloruro),
		campoDecimal("Densidad", r.Densidad),
		campoTexto("Dureza", r.Dureza),
		campoDecimal("Sólidos totales", r.SolidosTotales),
		campoDecimal("Temperatura ambiente", r.TemperaturaAmbiente),
		campoTexto("Otras determinaciones", r.OtrasDeterminaciones),
		campoTexto("Referencia", r.Referencia),
	}
}

func (r *RegistroAgua) Microbiologicos() []CampoInforme {
	return []CampoInforme{
		campoTexto("Microorganismos aerobios", r.ResMicroorganismosAerobios),
		campoTexto("Recuento de coliformes", r.ResRecuentoColiformes),
		campoTexto("Coliformes totales", r.ResColiformesTotales),
		campoTexto("Pseudomonas spp.", r.ResPseudomonasSpp),
		campoTexto("E. coli", r.ResEColi),
		campoTexto("Salmonella spp.", r.ResSalmonellaSpp),
		campoTexto("Estafilococos aureus", r.ResEstafilococosAureus),
		campoTexto("Hongos", r.ResHongos),
		campoTexto("Levaduras", r.ResLevaduras),
	}
}

func (r *RegistroAgua) Metodologia() []CampoInforme {
	return []CampoInforme{
		campoTexto("Metodología de referencia", r.MetodologiaReferencia),
		campoTexto("Equipos", r.Equipos),
		campoFecha("Fecha de reporte", r.FechaReporte),
		campoTexto("Observaciones", r.Observaciones),
	}
}
