package controllers

import (
	"fmt"
	"net/http"
	"time"

	"lab-registry-api/models"

	"github.com/gin-gonic/gin"
)

func tipoParam(c *gin.Context) (string, bool) {
	tipo := c.Param("tipo")
	if !models.TipoRegistroValido(tipo) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tipo de registro debe ser 'agua' o 'aba'"})
		return "", false
	}
	return tipo, true
}

// GenerarPdfRegistro returns the result report of an approved record as a
// download.
func GenerarPdfRegistro(c *gin.Context) {
	id, ok := registroID(c)
	if !ok {
		return
	}
	tipo, ok := tipoParam(c)
	if !ok {
		return
	}

	pdfBytes, err := pdfService.GenerarPdfRegistro(id, tipo)
	if err != nil {
		responderErrorWorkflow(c, err)
		return
	}

	fileName := fmt.Sprintf("Informe_Resultados_%s_%d_%s.pdf", tipo, id, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// PreviewPdfRegistro returns the report inline for browser preview.
func PreviewPdfRegistro(c *gin.Context) {
	id, ok := registroID(c)
	if !ok {
		return
	}
	tipo, ok := tipoParam(c)
	if !ok {
		return
	}

	pdfBytes, err := pdfService.GenerarPdfRegistro(id, tipo)
	if err != nil {
		responderErrorWorkflow(c, err)
		return
	}

	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GenerarTokenRegistro issues (or reuses) the public access token for an
// approved record, so the lab can hand the result link to the requester.
func GenerarTokenRegistro(c *gin.Context) {
	id, ok := registroID(c)
	if !ok {
		return
	}
	tipo, ok := tipoParam(c)
	if !ok {
		return
	}

	token, err := tokenService.GenerarToken(id, tipo)
	if err != nil {
		responderErrorWorkflow(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":        token,
		"registroId":   id,
		"tipoRegistro": tipo,
	})
}
