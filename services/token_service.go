package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"lab-registry-api/models"

	"gorm.io/gorm"
)

var (
	ErrTokenNoEncontrado = errors.New("token no encontrado")
	ErrTokenExpirado     = errors.New("token expirado")
	ErrTokenInactivo     = errors.New("token inactivo")
)

// TokenService issues, validates and retires the public access tokens for
// approved sample records.
type TokenService struct {
	db  *gorm.DB
	now func() time.Time

	// Issuance is check-then-act against the store, so it is serialized
	// per (registro, tipo) to keep a concurrent double request from
	// minting two tokens for the same record.
	mu       sync.Mutex
	emisores map[string]*sync.Mutex
}

func NewTokenService(db *gorm.DB) *TokenService {
	return &TokenService{
		db:       db,
		now:      time.Now,
		emisores: make(map[string]*sync.Mutex),
	}
}

func (s *TokenService) candado(registroID int, tipo string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	clave := fmt.Sprintf("%s:%d", tipo, registroID)
	m, ok := s.emisores[clave]
	if !ok {
		m = &sync.Mutex{}
		s.emisores[clave] = m
	}
	return m
}

// registroAprobado checks that the record exists and is approved, the only
// condition under which a public token may exist.
func (s *TokenService) registroAprobado(registroID int, tipo string) (bool, error) {
	var count int64
	var err error
	switch tipo {
	case models.TipoAgua:
		err = s.db.Model(&models.RegistroAgua{}).
			Where("REG_AGUA_ID = ? AND REG_AGUA_ESTADO = ?", registroID, models.EstadoAprobado).
			Count(&count).Error
	case models.TipoAba:
		err = s.db.Model(&models.RegistroAba{}).
			Where("REG_ABA_ID = ? AND REG_ABA_ESTADO = ?", registroID, models.EstadoAprobado).
			Count(&count).Error
	default:
		return false, ErrTipoRegistroInvalido
	}
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GenerarToken returns a public token for an approved record, with the
// default 90-day lifetime. If an active, unexpired token already exists for
// the (record, kind) pair it is reused unchanged.
func (s *TokenService) GenerarToken(registroID int, tipoRegistro string) (string, error) {
	return s.GenerarTokenConVigencia(registroID, tipoRegistro, models.DiasExpiracionToken)
}

// GenerarTokenConVigencia is GenerarToken with an explicit lifetime in days.
func (s *TokenService) GenerarTokenConVigencia(registroID int, tipoRegistro string, dias int) (string, error) {
	tipo := strings.ToLower(tipoRegistro)

	aprobado, err := s.registroAprobado(registroID, tipo)
	if err != nil {
		return "", err
	}
	if !aprobado {
		return "", fmt.Errorf("%w: registro no encontrado o no aprobado", ErrRegistroNoEncontrado)
	}

	candado := s.candado(registroID, tipo)
	candado.Lock()
	defer candado.Unlock()

	ahora := s.now()

	var existente models.TokenAcceso
	err = s.db.Where("RegistroId = ? AND TipoRegistro = ? AND Activo = ? AND FechaExpiracion > ?",
		registroID, tipo, true, ahora).
		First(&existente).Error
	if err == nil {
		log.Printf("Token existente reutilizado para registro %d tipo %s", registroID, tipo)
		return existente.Token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	nuevo := models.NuevoTokenAcceso(registroID, tipo, dias, ahora)
	if err := s.db.Create(nuevo).Error; err != nil {
		return "", fmt.Errorf("error creando token para registro %d tipo %s: %w", registroID, tipo, err)
	}

	log.Printf("Nuevo token generado para registro %d tipo %s", registroID, tipo)
	return nuevo.Token, nil
}

// ValidarToken looks a token up by its exact string and, when valid, records
// the access (counter, timestamp, caller IP). Missing, expired and inactive
// tokens fail with distinct errors.
func (s *TokenService) ValidarToken(token, ip string) (*models.TokenAcceso, error) {
	var acceso models.TokenAcceso
	if err := s.db.Where("Token = ?", token).First(&acceso).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNoEncontrado
		}
		return nil, err
	}

	ahora := s.now()
	if acceso.Expirado(ahora) {
		return nil, ErrTokenExpirado
	}
	if !acceso.Activo {
		return nil, ErrTokenInactivo
	}

	acceso.AccesosCount++
	acceso.UltimoAcceso = &ahora
	if ip != "" {
		acceso.IPUltimoAcceso = &ip
	}
	if err := s.db.Save(&acceso).Error; err != nil {
		return nil, fmt.Errorf("error actualizando acceso del token: %w", err)
	}

	return &acceso, nil
}

// RevocarToken deactivates a token. Idempotent; returns false when the
// token does not exist.
func (s *TokenService) RevocarToken(token string) (bool, error) {
	var acceso models.TokenAcceso
	if err := s.db.Where("Token = ?", token).First(&acceso).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	acceso.Activo = false
	if err := s.db.Save(&acceso).Error; err != nil {
		return false, err
	}

	log.Printf("Token revocado: %s", token)
	return true, nil
}

// LimpiarExpirados deletes every token that is expired or deactivated and
// returns how many were removed.
func (s *TokenService) LimpiarExpirados() (int64, error) {
	result := s.db.Where("FechaExpiracion < ? OR Activo = ?", s.now(), false).
		Delete(&models.TokenAcceso{})
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected > 0 {
		log.Printf("Limpiados %d tokens expirados", result.RowsAffected)
	}
	return result.RowsAffected, nil
}

// TokensActivos lists the valid tokens for a record, newest first.
func (s *TokenService) TokensActivos(registroID int, tipoRegistro string) ([]models.TokenAcceso, error) {
	var tokens []models.TokenAcceso
	err := s.db.Where("RegistroId = ? AND TipoRegistro = ? AND Activo = ? AND FechaExpiracion > ?",
		registroID, strings.ToLower(tipoRegistro), true, s.now()).
		Order("FechaCreacion DESC").
		Find(&tokens).Error
	if err != nil {
		return nil, err
	}
	return tokens, nil
}
