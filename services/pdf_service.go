package services

import (
	"bytes"
	"errors"
	"fmt"

	"lab-registry-api/models"

	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"
)

// PdfService renders the printable result report for an approved record.
// It works against the RegistroInforme view, so the layout code is the same
// for both sample kinds.
type PdfService struct {
	db *gorm.DB
}

func NewPdfService(db *gorm.DB) *PdfService {
	return &PdfService{db: db}
}

// BuscarInforme loads an approved record as its report view.
func (s *PdfService) BuscarInforme(registroID int, tipo string) (models.RegistroInforme, error) {
	switch tipo {
	case models.TipoAgua:
		var registro models.RegistroAgua
		err := s.db.Preload("UsuarioRegistro").Preload("UsuarioAnalista").Preload("UsuarioEvaluador").
			Where("REG_AGUA_ID = ? AND REG_AGUA_ESTADO = ?", registroID, models.EstadoAprobado).
			First(&registro).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRegistroNoEncontrado
			}
			return nil, err
		}
		return &registro, nil
	case models.TipoAba:
		var registro models.RegistroAba
		err := s.db.Preload("UsuarioRegistro").Preload("UsuarioAnalista").Preload("UsuarioEvaluador").
			Where("REG_ABA_ID = ? AND REG_ABA_ESTADO = ?", registroID, models.EstadoAprobado).
			First(&registro).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRegistroNoEncontrado
			}
			return nil, err
		}
		return &registro, nil
	default:
		return nil, ErrTipoRegistroInvalido
	}
}

// GenerarPdfRegistro produces the PDF report for an approved record.
func (s *PdfService) GenerarPdfRegistro(registroID int, tipoRegistro string) ([]byte, error) {
	informe, err := s.BuscarInforme(registroID, tipoRegistro)
	if err != nil {
		return nil, err
	}
	return renderInforme(informe)
}

func renderInforme(informe models.RegistroInforme) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(13, 13, 13)
	pdf.AddPage()

	// Institutional header
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 7, tr("Laboratorio Central de Salud"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	titulo := "Informe de Resultados - Muestra de Agua"
	if informe.Tipo() == models.TipoAba {
		titulo = "Informe de Resultados - Alimentos y Bebidas"
	}
	pdf.CellFormat(0, 5, tr(titulo), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	escribirSeccion(pdf, tr, "Información del registro", informe.DatosGenerales())
	escribirSeccion(pdf, tr, "Características organolépticas", informe.Organolepticos())
	escribirSeccion(pdf, tr, "Análisis fisicoquímicos", informe.Fisicoquimicos())
	escribirSeccion(pdf, tr, "Análisis microbiológicos", informe.Microbiologicos())
	escribirSeccion(pdf, tr, "Metodología y observaciones", informe.Metodologia())

	// Verdict
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	veredicto := "Sin dictamen"
	if apto := informe.AptoParaConsumo(); apto != nil {
		if *apto {
			veredicto = "APTO PARA CONSUMO"
		} else {
			veredicto = "NO APTO PARA CONSUMO"
		}
	}
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Dictamen: %s", veredicto)), "1", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error generando PDF del registro %d: %w", informe.RegistroID(), err)
	}
	return buf.Bytes(), nil
}

func escribirSeccion(pdf *gofpdf.Fpdf, tr func(string) string, titulo string, campos []models.CampoInforme) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(0, 7, tr(titulo), "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, campo := range campos {
		pdf.CellFormat(70, 6, tr(campo.Etiqueta), "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(campo.Valor), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(3)
}
