package controllers

import (
	"net/http"

	"lab-registry-api/config"
	"lab-registry-api/models"

	"github.com/gin-gonic/gin"
)

// GetRegistrosAba lists all food and beverage sample records with their users.
func GetRegistrosAba(c *gin.Context) {
	var registros []models.RegistroAba
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

// GetRegistroAba returns one food and beverage sample record.
func GetRegistroAba(c *gin.Context) {
	id, ok := registroID(c)
	if !ok {
		return
	}

	var registro models.RegistroAba
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

// CreateRegistroAba stores a new intake record in pending assignment.
func CreateRegistroAba(c *gin.Context) {
	var registro models.RegistroAba
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

// UpdateRegistroAba replaces the editable fields of a record, leaving
// workflow fields to the workflow.
func UpdateRegistroAba(c *gin.Context) {
	id, ok := registroID(c)
	if !ok {
		return
	}

	var existente models.RegistroAba
	if err := config.DB.First(&existente, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registro no encontrado"})
		return
	}

	var datos models.RegistroAba
	if err := c.ShouldBindJSON(&datos); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

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

// GetRegistrosAbaPorAnalista lists the in-process records assigned to one
// analyst.
func GetRegistrosAbaPorAnalista(c *gin.Context) {
	analistaID, ok := analistaParam(c)
	if !ok {
		return
	}

	var registros []models.RegistroAba
	err := config.DB.
		Preload("UsuarioRegistro").
		Preload("UsuarioAnalista").
		Where("USU_ID_ANALISTA = ? AND REG_ABA_ESTADO = ?", analistaID, models.EstadoEnProceso).
		Find(&registros).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error consultando registros"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tipo": models.TipoAba, "registros": registros})
}

// Workflow actions

func AsignarRegistroAba(c *gin.Context)   { asignarRegistro(c, models.TipoAba) }
func CompletarRegistroAba(c *gin.Context) { completarRegistro(c, models.TipoAba) }
func AprobarRegistroAba(c *gin.Context)   { aprobarRegistro(c, models.TipoAba) }
func RechazarRegistroAba(c *gin.Context)  { rechazarRegistro(c, models.TipoAba) }
