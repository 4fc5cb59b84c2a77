package models

import (
	"time"
)

// RegistroAba is a food and beverage ("alimentos y bebidas") sample intake
// record. Column names match the legacy REGISTRO_ABA table.
type RegistroAba struct {
	ID int `gorm:"primaryKey;column:REG_ABA_ID" json:"id"`

	// Intake data
	NumOficio          *string    `gorm:"column:REG_ABA_NUM_OFICIO" json:"numOficio"`
	FechaRecibo        *time.Time `gorm:"column:REG_ABA_FECHA_RECIBO" json:"fechaRecibo"`
	NombreSolicitante  *string    `gorm:"column:REG_ABA_NOMBRE_SOLICITANTE" json:"nombreSolicitante"`
	MotivoSolicitud    *string    `gorm:"column:REG_ABA_MOTIVO_SOLICITUD" json:"motivoSolicitud"`
	TipoMuestra        *string    `gorm:"column:REG_ABA_TIPO_MUESTRA" json:"tipoMuestra"`
	CondicionRecepcion *string    `gorm:"column:REG_ABA_CONDICION_RECEPCION" json:"condicionRecepcion"`
	NumMuestra         *string    `gorm:"column:REG_ABA_NUM_MUESTRA" json:"numMuestra"`
	NumLote            *string    `gorm:"column:REG_ABA_NUM_LOTE" json:"numLote"`
	FechaEntrega       *time.Time `gorm:"column:REG_ABA_FECHA_ENTREGA" json:"fechaEntrega"`

	// Organoleptic characteristics
	Color   *string `gorm:"column:REG_ABA_COLOR" json:"color"`
	Olor    *string `gorm:"column:REG_ABA_OLOR" json:"olor"`
	Sabor   *string `gorm:"column:REG_ABA_SABOR" json:"sabor"`
	Aspecto *string `gorm:"column:REG_ABA_ASPECTO" json:"aspecto"`
	Textura *string `gorm:"column:REG_ABA_TEXTURA" json:"textura"`

	// Physico-chemical analysis
	PesoNeto             *float64   `gorm:"column:REG_ABA_PESO_NETO" json:"pesoNeto"`
	FechaVencimiento     *time.Time `gorm:"column:REG_ABA_FECHA_VENC" json:"fechaVencimiento"`
	Acidez               *float64   `gorm:"column:REG_ABA_ACIDEZ" json:"acidez"`
	CloroResidual        *float64   `gorm:"column:REG_ABA_CLORO_RESIDUAL" json:"cloroResidual"`
	Cenizas              *float64   `gorm:"column:REG_ABA_CENIZAS" json:"cenizas"`
	Cumarina             *string    `gorm:"column:REG_ABA_CUMARINA" json:"cumarina"`
	Cloruro              *float64   `gorm:"column:REG_ABA_CLORURO" json:"cloruro"`
	Densidad             *float64   `gorm:"column:REG_ABA_DENSIDAD" json:"densidad"`
	Dureza               *string    `gorm:"column:REG_ABA_DUREZA" json:"dureza"`
	ExtractoSeco         *string    `gorm:"column:REG_ABA_EXTRACTO_SECO" json:"extractoSeco"`
	Fecula               *string    `gorm:"column:REG_ABA_FECULA" json:"fecula"`
	GradoAlcoholico      *float64   `gorm:"column:REG_ABA_GRADO_ALCOHOLICO" json:"gradoAlcoholico"`
	Humedad              *float64   `gorm:"column:REG_ABA_HUMEDAD" json:"humedad"`
	IndiceRefaccion      *float64   `gorm:"column:REG_ABA_INDICE_REFACCION" json:"indiceRefaccion"`
	IndiceAcidez         *float64   `gorm:"column:REG_ABA_INDICE_ACIDEZ" json:"indiceAcidez"`
	IndiceRancidez       *float64   `gorm:"column:REG_ABA_INDICE_RANCIDEZ" json:"indiceRancidez"`
	MateriaGrasaCualit   *string    `gorm:"column:REG_ABA_MATERIA_GRASA_CUALIT" json:"materiaGrasaCualit"`
	MateriaGrasaCuantit  *float64   `gorm:"column:REG_ABA_MATERIA_GRASA_CUANTIT" json:"materiaGrasaCuantit"`
	PH                   *float64   `gorm:"column:REG_ABA_PH" json:"ph"`
	PruebaEber           *string    `gorm:"column:REG_ABA_PRUEBA_EBER" json:"pruebaEber"`
	SolidosTotales       *float64   `gorm:"column:REG_ABA_SOLIDOS_TOTALES" json:"solidosTotales"`
	TiempoCoccion        *string    `gorm:"column:REG_ABA_TIEMPO_COCCION" json:"tiempoCoccion"`
	OtrasDeterminaciones *string    `gorm:"column:REG_ABA_OTRAS_DETERMINACIONES" json:"otrasDeterminaciones"`
	Referencia           *string    `gorm:"column:REG_ABA_REFERENCIA" json:"referencia"`

	// Microbiological results
	ResMicroorganismosAerobios *string `gorm:"column:REG_ABA_RES_MICROORG_AEROBIOS" json:"resMicroorganismosAerobios"`
	ResRecuentoColiformes      *string `gorm:"column:REG_ABA_RES_RECUENTO_COLIFORMES" json:"resRecuentoColiformes"`
	ResColiformesTotales       *string `gorm:"column:REG_ABA_RES_COLIFORMES_TOTALES" json:"resColiformesTotales"`
	ResPseudomonasSpp          *string `gorm:"column:REG_ABA_RES_PSEUDOMONAS_SPP" json:"resPseudomonasSpp"`
	ResEColi                   *string `gorm:"column:REG_ABA_RES_E_COLI" json:"resEColi"`
	ResSalmonellaSpp           *string `gorm:"column:REG_ABA_RES_SALMONELLA_SPP" json:"resSalmonellaSpp"`
	ResEstafilococosAureus     *string `gorm:"column:REG_ABA_RES_ESTAFILOCOCOS_AUREUS" json:"resEstafilococosAureus"`
	ResHongos                  *string `gorm:"column:REG_ABA_RES_HONGOS" json:"resHongos"`
	ResLevaduras               *string `gorm:"column:REG_ABA_RES_LEVADURAS" json:"resLevaduras"`
	ResEsterilidadComercial    *string `gorm:"column:REG_ABA_RES_ESTERILIDAD_COMERCIAL" json:"resEsterilidadComercial"`
	ResListeriaMonocytogenes   *string `gorm:"column:REG_ABA_RES_LISTERIA_MONOCYTOGENES" json:"resListeriaMonocytogenes"`

	// Methodology and verdict
	MetodologiaReferencia *string `gorm:"column:REG_ABA_METODOLOGIA_REFERENCIA" json:"metodologiaReferencia"`
	Equipos               *string `gorm:"column:REG_ABA_EQUIPOS" json:"equipos"`
	Observaciones         *string `gorm:"column:REG_ABA_OBSERVACIONES" json:"observaciones"`
	AptoConsumo           *bool   `gorm:"column:REG_ABA_APTO_CONSUMO" json:"aptoConsumo"`
	Estado                Estado  `gorm:"column:REG_ABA_ESTADO" json:"estado"`

	// Ownership
	UsuIDRegistro  int  `gorm:"column:USU_ID_REGISTRO" json:"usuIdRegistro"`
	UsuIDAnalista  *int `gorm:"column:USU_ID_ANALISTA" json:"usuIdAnalista"`
	UsuIDEvaluador *int `gorm:"column:USU_ID_EVALUADOR" json:"usuIdEvaluador"`

	UsuarioRegistro  *Usuario `gorm:"foreignKey:UsuIDRegistro" json:"usuarioRegistro,omitempty"`
	UsuarioAnalista  *Usuario `gorm:"foreignKey:UsuIDAnalista" json:"usuarioAnalista,omitempty"`
	UsuarioEvaluador *Usuario `gorm:"foreignKey:UsuIDEvaluador" json:"usuarioEvaluador,omitempty"`
}

func (RegistroAba) TableName() string {
	return "REGISTRO_ABA"
}

// RegistroLab

func (r *RegistroAba) RegistroID() int        { return r.ID }
func (r *RegistroAba) Tipo() string           { return TipoAba }
func (r *RegistroAba) EstadoActual() Estado   { return r.Estado }
func (r *RegistroAba) CambiarEstado(e Estado) { r.Estado = e }
func (r *RegistroAba) RegistradoPor() int     { return r.UsuIDRegistro }
func (r *RegistroAba) AnalistaAsignado() *int { return r.UsuIDAnalista }
func (r *RegistroAba) AsignarAnalista(id int) { r.UsuIDAnalista = &id }

func (r *RegistroAba) RegistrarRechazo(motivo string) {
	r.Observaciones = &motivo
}

// RegistroInforme

func (r *RegistroAba) NumeroMuestra() string {
	if r.NumMuestra == nil {
		return ""
	}
	return *r.NumMuestra
}

func (r *RegistroAba) DescripcionMuestra() string {
	if r.TipoMuestra == nil {
		return ""
	}
	return *r.TipoMuestra
}

func (r *RegistroAba) FechaRecepcionMuestra() *time.Time { return r.FechaRecibo }

func (r *RegistroAba) Solicitante() string {
	if r.NombreSolicitante == nil {
		return ""
	}
	return *r.NombreSolicitante
}

func (r *RegistroAba) AptoParaConsumo() *bool { return r.AptoConsumo }

func (r *RegistroAba) DatosGenerales() []CampoInforme {
	return []CampoInforme{
		campoEntero("No. de registro", r.ID),
		campoTexto("No. de muestra", r.NumMuestra),
		campoTexto("No. de oficio", r.NumOficio),
		campoTexto("No. de lote", r.NumLote),
		campoTexto("Nombre del solicitante", r.NombreSolicitante),
		campoTexto("Motivo de la solicitud", r.MotivoSolicitud),
		campoTexto("Tipo de muestra", r.TipoMuestra),
		campoTexto("Condición de recepción", r.CondicionRecepcion),
		campoFecha("Fecha de recibo", r.FechaRecibo),
		campoFecha("Fecha de entrega", r.FechaEntrega),
		campoFecha("Fecha de vencimiento", r.FechaVencimiento),
	}
}

func (r *RegistroAba) Organolepticos() []CampoInforme {
	return []CampoInforme{
		campoTexto("Color", r.Color),
		campoTexto("Olor", r.Olor),
		campoTexto("Sabor", r.Sabor),
		campoTexto("Aspecto", r.Aspecto),
		campoTexto("Textura", r.Textura),
	}
}

func (r *RegistroAba) Fisicoquimicos() []CampoInforme {
	return []CampoInforme{
		campoDecimal("Peso neto", r.PesoNeto),
		campoDecimal("pH", r.PH),
		campoDecimal("Acidez", r.Acidez),
		campoDecimal("Índice de acidez", r.IndiceAcidez),
		campoDecimal("Índice de rancidez", r.IndiceRancidez),
		campoDecimal("Índice de refacción", r.IndiceRefaccion),
		campoDecimal("Cenizas", r.Cenizas),
		campoTexto("Cumarina", r.Cumarina),
		campoDecimal("Cloruro", r.Cloruro),
		campoDecimal("Densidad", r.Densidad),
		campoTexto("Dureza", r.Dureza),
		campoTexto("Extracto seco", r.ExtractoSeco),
		campoTexto("Fécula", r.Fecula),
		campoDecimal("Grado alcohólico", r.GradoAlcoholico),
		campoDecimal("Humedad", r.Humedad),
		campoTexto("Materia grasa (cualitativa)", r.MateriaGrasaCualit),
		campoDecimal("Materia grasa (cuantitativa)", r.MateriaGrasaCuantit),
		campoTexto("Prueba de Eber", r.PruebaEber),
		campoDecimal("Sólidos totales", r.SolidosTotales),
		campoTexto("Tiempo de cocción", r.TiempoCoccion),
		campoTexto("Otras determinaciones", r.OtrasDeterminaciones),
		campoTexto("Referencia", r.Referencia),
	}
}

func (r *RegistroAba) Microbiologicos() []CampoInforme {
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
		campoTexto("Esterilidad comercial", r.ResEsterilidadComercial),
		campoTexto("Listeria monocytogenes", r.ResListeriaMonocytogenes),
	}
}

func (r *RegistroAba) Metodologia() []CampoInforme {
	return []CampoInforme{
		campoTexto("Metodología de referencia", r.MetodologiaReferencia),
		campoTexto("Equipos", r.Equipos),
		campoTexto("Observaciones", r.Observaciones),
	}
}
