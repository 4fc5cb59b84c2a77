// Command migrate-passwords rewrites legacy plaintext passwords in the
// usuario table as bcrypt hashes. Rows that already hold a bcrypt hash are
// left untouched, so the tool is safe to run more than once.
package main

import (
	"log"
	"strings"

	"lab-registry-api/config"
	"lab-registry-api/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()

	var usuarios []models.Usuario
	if err := config.DB.Find(&usuarios).Error; err != nil {
		log.Fatal("Failed to load users:", err)
	}

	migrated := 0
	for _, usuario := range usuarios {
		if strings.HasPrefix(usuario.UsuContrasena, "$2a$") ||
			strings.HasPrefix(usuario.UsuContrasena, "$2b$") {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(usuario.UsuContrasena), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Failed to hash password for user %d: %v", usuario.UsuID, err)
			continue
		}

		if err := config.DB.Model(&models.Usuario{}).
			Where("usu_id = ?", usuario.UsuID).
			Update("usu_contrasena", string(hash)).Error; err != nil {
			log.Printf("Failed to update user %d: %v", usuario.UsuID, err)
			continue
		}
		migrated++
	}

	log.Printf("Migrated %d of %d passwords", migrated, len(usuarios))
}
