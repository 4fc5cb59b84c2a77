package controllers

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"lab-registry-api/config"
	"lab-registry-api/middleware"
	"lab-registry-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Correo     string `json:"correo" binding:"required,email"`
	Contrasena string `json:"contrasena" binding:"required"`
}

type LoginResponse struct {
	Token      string    `json:"token"`
	UsuarioID  int       `json:"usuarioId"`
	Nombre     string    `json:"nombre"`
	Correo     string    `json:"correo"`
	Rol        string    `json:"rol"`
	Expiration time.Time `json:"expiration"`
}

// Login handles user authentication
func Login(c *gin.Context) {
	var req LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Find user by email
	var usuario models.Usuario
	if err := config.DB.Where("usu_correo = ?", req.Correo).First(&usuario).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales inválidas"})
		return
	}

	if !usuario.UsuActivo {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario desactivado"})
		return
	}

	if !CheckPasswordHash(req.Contrasena, usuario.UsuContrasena) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales inválidas"})
		return
	}

	// Only the lab roles may log in
	if !models.RolValido(usuario.UsuRol) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Rol no autorizado para acceder al sistema"})
		return
	}

	token, expiration, err := generateToken(usuario)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:      token,
		UsuarioID:  usuario.UsuID,
		Nombre:     usuario.UsuNombre,
		Correo:     usuario.UsuCorreo,
		Rol:        usuario.UsuRol,
		Expiration: expiration,
	})
}

// Logout exists for symmetry; JWT sessions end client side.
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logout exitoso"})
}

// GetProfile returns current user profile
func GetProfile(c *gin.Context) {
	userID, _ := c.Get("userID")

	var usuario models.Usuario
	if err := config.DB.First(&usuario, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"usuario": usuario})
}

// ChangePassword handles password change
func ChangePassword(c *gin.Context) {
	type PasswordChangeRequest struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required,min=6"`
	}

	var req PasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")

	var usuario models.Usuario
	if err := config.DB.First(&usuario, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}

	if !CheckPasswordHash(req.CurrentPassword, usuario.UsuContrasena) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "La contraseña actual es incorrecta"})
		return
	}

	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	usuario.UsuContrasena = hash
	if err := config.DB.Save(&usuario).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contraseña actualizada"})
}

// generateToken creates JWT token
func generateToken(usuario models.Usuario) (string, time.Time, error) {
	expireHours, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_HOURS"))
	if err != nil {
		expireHours = 24 // default 24 hours
	}
	expiration := time.Now().Add(time.Duration(expireHours) * time.Hour)

	claims := middleware.Claims{
		UserID: usuario.UsuID,
		Nombre: usuario.UsuNombre,
		Correo: usuario.UsuCorreo,
		Rol:    usuario.UsuRol,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiration, nil
}

// HashPassword hashes password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares password with hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
