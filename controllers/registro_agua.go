package controllers

import (
	"net/http"

	"lab-registry-api/config"
	"lab-registry-api/models"

	"github.com/gin-gonic/gin"
)

// GetRegistrosAgua lists all water sample records with their users.
func GetRegistrosAgua(c *gin.Context) {
	var registros []models.RegistroAgua
	err := config.DB.
		Preload("UsuarioRegistro").
		Preload("UsuarioAnalista").
		Preload("UsuarioEvaluador").
		Find(&registros).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error consultando registros"})
		return
	}
	c.JSON(http.StatusOK, registros)
}

// GetRegistroAgua returns one water sample record.
func GetRegistroAgua(c *gin.Context) {
	id, ok := registroID(c)
	if !ok {
		return
	}

	var registro models.RegistroAgua
	err := config.DB.
		Preload("UsuarioRegistro").
		Preload("UsuarioAnalista").
		Preload("UsuarioEvaluador").
		First(&registro, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registro no encontrado"})
		return
	}
	c.JSON(http.StatusOK, registro)
}

// CreateRegistroAgua stores a new intake record. The record always starts
// pending assignment regardless of what the client sent.
func CreateRegistroAgua(c *gin.Context) {
	var registro models.RegistroAgua
	if err := c.ShouldBindJSON(&registro); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if registro.UsuIDRegistro == 0 {
		userID, _ := c.Get("userID")
		registro.UsuIDRegistro = userID.(int)
	}
	registro.ID = 0
	registro.Estado = models.EstadoPorAsignar

	if err := config.DB.Create(&registro).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creando registro"})
		return
	}

	c.JSON(http.StatusCreated, registro)
}

// UpdateRegistroAgua replaces the editable fields of a record. The analyst
// uses this to load results while the record is in process; workflow fields
// (estado, ownership) are not touched here.
func UpdateRegistroAgua(c *gin.Context) {
	id, ok := registroID(c)
	if !ok {
		return
	}

	var existente models.RegistroAgua
	if err := config.DB.First(&existente, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registro no encontrado"})
		return
	}

	var datos models.RegistroAgua
	if err := c.ShouldBindJSON(&datos); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Identity, state and ownership are managed by the workflow.
	datos.ID = existente.ID
	datos.Estado = existente.Estado
	datos.UsuIDRegistro = existente.UsuIDRegistro
	datos.UsuIDAnalista = existente.UsuIDAnalista
	datos.UsuIDEvaluador = existente.UsuIDEvaluador

	if err := config.DB.Save(&datos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error actualizando registro"})
		return
	}

	c.JSON(http.StatusOK, datos)
}

// GetRegistrosAguaPorAnalista lists the in-process records assigned to one
// analyst.
func GetRegistrosAguaPorAnalista(c *gin.Context) {
	analistaID, ok := analistaParam(c)
	if !ok {
		return
	}

	var registros []models.RegistroAgua
	err := config.DB.
		Preload("UsuarioRegistro").
		Preload("UsuarioAnalista").
		Where("USU_ID_ANALISTA = ? AND REG_AGUA_ESTADO = ?", analistaID, models.EstadoEnProceso).
		Find(&registros).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error consultando registros"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tipo": models.TipoAgua, "registros": registros})
}

// Workflow actions

func AsignarRegistroAgua(c *gin.Context)   { asignarRegistro(c, models.TipoAgua) }
func CompletarRegistroAgua(c *gin.Context) { completarRegistro(c, models.TipoAgua) }
func AprobarRegistroAgua(c *gin.Context)   { aprobarRegistro(c, models.TipoAgua) }
func RechazarRegistroAgua(c *gin.Context)  { rechazarRegistro(c, models.TipoAgua) }
