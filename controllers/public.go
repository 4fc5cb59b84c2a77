package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"lab-registry-api/models"
	"lab-registry-api/services"
	"lab-registry-api/utils"

	"github.com/gin-gonic/gin"
)

// responderErrorToken writes the structured validity payload the public
// token page consumes. Even failures carry a JSON body.
func responderErrorToken(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTokenNoEncontrado):
		c.JSON(http.StatusNotFound, gin.H{"valid": false, "message": "Token no encontrado"})
	case errors.Is(err, services.ErrTokenExpirado):
		c.JSON(http.StatusBadRequest, gin.H{"valid": false, "message": "Token expirado"})
	case errors.Is(err, services.ErrTokenInactivo):
		c.JSON(http.StatusBadRequest, gin.H{"valid": false, "message": "Token inactivo"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"valid":   false,
			"message": "Error interno del servidor",
			"error":   err.Error(),
		})
	}
}

// infoRegistroPublico is the whitelisted projection of an approved record
// for unauthenticated consumers. Nothing beyond these fields leaves the lab.
func infoRegistroPublico(informe models.RegistroInforme) gin.H {
	var fechaRecepcion *string
	if fecha := informe.FechaRecepcionMuestra(); fecha != nil {
		f := fecha.Format("02/01/2006")
		fechaRecepcion = &f
	}

	return gin.H{
		"id":             informe.RegistroID(),
		"numMuestra":     informe.NumeroMuestra(),
		"tipoMuestra":    informe.DescripcionMuestra(),
		"fechaRecepcion": fechaRecepcion,
		"solicitante":    informe.Solicitante(),
		"estado":         informe.EstadoActual(),
		"aptoConsumo":    informe.AptoParaConsumo(),
	}
}

// ValidateToken validates a public token and returns basic information
// about the associated record.
func ValidateToken(c *gin.Context) {
	token := c.Param("token")

	acceso, err := tokenService.ValidarToken(token, utils.ClientIP(c))
	if err != nil {
		responderErrorToken(c, err)
		return
	}

	informe, err := pdfService.BuscarInforme(acceso.RegistroID, acceso.TipoRegistro)
	if err != nil {
		if errors.Is(err, services.ErrRegistroNoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"valid": false, "message": "Registro asociado no encontrado"})
			return
		}
		responderErrorToken(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":           true,
		"token":           acceso.Token,
		"registroId":      acceso.RegistroID,
		"tipoRegistro":    acceso.TipoRegistro,
		"fechaCreacion":   acceso.FechaCreacion,
		"fechaExpiracion": acceso.FechaExpiracion,
		"accesos":         acceso.AccesosCount,
		"registro":        infoRegistroPublico(informe),
	})
}

// GetPdfByToken validates a public token and serves the record's PDF report.
func GetPdfByToken(c *gin.Context) {
	token := c.Param("token")

	acceso, err := tokenService.ValidarToken(token, utils.ClientIP(c))
	if err != nil {
		responderErrorToken(c, err)
		return
	}

	pdfBytes, err := pdfService.GenerarPdfRegistro(acceso.RegistroID, acceso.TipoRegistro)
	if err != nil {
		if errors.Is(err, services.ErrRegistroNoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"valid": false, "message": "Registro asociado no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"valid":   false,
			"message": "Error generando PDF",
			"error":   err.Error(),
		})
		return
	}

	fileName := fmt.Sprintf("Informe_%s_%d_%s.pdf",
		acceso.TipoRegistro, acceso.RegistroID, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// PublicHealth reports the public token service status.
func PublicHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now(),
		"service":   "Token Validation Service",
	})
}
