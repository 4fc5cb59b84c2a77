package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"lab-registry-api/models"
	"lab-registry-api/services"

	"github.com/gin-gonic/gin"
)

type AsignarAnalistaRequest struct {
	AnalistaID int `json:"analistaId" binding:"required,gt=0"`
}

type RechazarRegistroRequest struct {
	Motivo string `json:"motivo" binding:"required"`
}

func registroID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de registro inválido"})
		return 0, false
	}
	return id, true
}

func analistaParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("analistaId"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID del analista no válido"})
		return 0, false
	}
	return id, true
}

// responderErrorWorkflow maps service errors to the HTTP taxonomy: missing
// record 404, disallowed transition 409, bad kind 400, anything else 500.
func responderErrorWorkflow(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRegistroNoEncontrado):
		c.JSON(http.StatusNotFound, gin.H{"error": "Registro no encontrado"})
	case errors.Is(err, models.ErrTransicionInvalida):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrTipoRegistroInvalido):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
	}
}

func asignarRegistro(c *gin.Context, tipo string) {
	id, ok := registroID(c)
	if !ok {
		return
	}

	var req AsignarAnalistaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	registro, err := workflowService.Asignar(tipo, id, req.AnalistaID)
	if err != nil {
		responderErrorWorkflow(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Analista asignado",
		"estado":  registro.EstadoActual(),
	})
}

func completarRegistro(c *gin.Context, tipo string) {
	id, ok := registroID(c)
	if !ok {
		return
	}

	registro, err := workflowService.Completar(tipo, id)
	if err != nil {
		responderErrorWorkflow(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Registro enviado a evaluación",
		"estado":  registro.EstadoActual(),
	})
}

func aprobarRegistro(c *gin.Context, tipo string) {
	id, ok := registroID(c)
	if !ok {
		return
	}

	registro, err := workflowService.Aprobar(tipo, id)
	if err != nil {
		responderErrorWorkflow(c, err)
		return
	}

	notificationService.NotificarAprobacion(registro)

	c.JSON(http.StatusOK, gin.H{
		"message": "Registro aprobado",
		"estado":  registro.EstadoActual(),
	})
}

func rechazarRegistro(c *gin.Context, tipo string) {
	id, ok := registroID(c)
	if !ok {
		return
	}

	var req RechazarRegistroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	registro, err := workflowService.Rechazar(tipo, id, req.Motivo)
	if err != nil {
		responderErrorWorkflow(c, err)
		return
	}

	notificationService.NotificarRechazo(registro, req.Motivo)

	c.JSON(http.StatusOK, gin.H{
		"message": "Registro rechazado",
		"estado":  registro.EstadoActual(),
	})
}
