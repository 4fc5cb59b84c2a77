package controllers

import (
	"net/http"
	"strconv"

	"lab-registry-api/config"
	"lab-registry-api/models"

	"github.com/gin-gonic/gin"
)

type UsuarioRequest struct {
	UsuNombre     string `json:"usu_nombre" binding:"required"`
	UsuCorreo     string `json:"usu_correo" binding:"required,email"`
	UsuContrasena string `json:"usu_contrasena" binding:"required,min=6"`
	UsuRol        string `json:"usu_rol" binding:"required"`
}

// GetUsuarios lists all users.
func GetUsuarios(c *gin.Context) {
	var usuarios []models.Usuario
	if err := config.DB.Find(&usuarios).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error consultando usuarios"})
		return
	}
	c.JSON(http.StatusOK, usuarios)
}

// GetUsuario returns one user by id.
func GetUsuario(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var usuario models.Usuario
	if err := config.DB.First(&usuario, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}
	c.JSON(http.StatusOK, usuario)
}

// CreateUsuario registers a new user with a hashed password.
func CreateUsuario(c *gin.Context) {
	var req UsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.RolValido(req.UsuRol) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rol inválido: debe ser registro, analista o evaluador"})
		return
	}

	hash, err := HashPassword(req.UsuContrasena)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	usuario := models.Usuario{
		UsuNombre:     req.UsuNombre,
		UsuCorreo:     req.UsuCorreo,
		UsuContrasena: hash,
		UsuRol:        req.UsuRol,
		UsuActivo:     true,
	}

	if err := config.DB.Create(&usuario).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creando usuario"})
		return
	}

	c.JSON(http.StatusCreated, usuario)
}

// UpdateUsuario applies a partial update; empty fields are left alone.
func UpdateUsuario(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	type UpdateRequest struct {
		UsuNombre     string `json:"usu_nombre"`
		UsuCorreo     string `json:"usu_correo"`
		UsuContrasena string `json:"usu_contrasena"`
		UsuRol        string `json:"usu_rol"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var usuario models.Usuario
	if err := config.DB.First(&usuario, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}

	if req.UsuNombre != "" {
		usuario.UsuNombre = req.UsuNombre
	}
	if req.UsuCorreo != "" {
		usuario.UsuCorreo = req.UsuCorreo
	}
	if req.UsuRol != "" {
		if !models.RolValido(req.UsuRol) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rol inválido"})
			return
		}
		usuario.UsuRol = req.UsuRol
	}
	if req.UsuContrasena != "" {
		hash, err := HashPassword(req.UsuContrasena)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		usuario.UsuContrasena = hash
	}

	if err := config.DB.Save(&usuario).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error actualizando usuario"})
		return
	}

	c.JSON(http.StatusOK, usuario)
}

// ToggleUsuarioActivo enables or disables a user account.
func ToggleUsuarioActivo(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	type ToggleRequest struct {
		Activo *bool `json:"activo" binding:"required"`
	}

	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var usuario models.Usuario
	if err := config.DB.First(&usuario, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}

	usuario.UsuActivo = *req.Activo
	if err := config.DB.Save(&usuario).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error actualizando usuario"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "activo": usuario.UsuActivo})
}

// DeleteUsuario removes a user.
func DeleteUsuario(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	if err := config.DB.Delete(&models.Usuario{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error eliminando usuario"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuario eliminado"})
}
