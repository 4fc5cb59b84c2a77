package services

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"
)

// TokenCleanup periodically removes expired and deactivated access tokens.
// One sweep runs at startup, then one per interval (24h by default). A
// failed sweep is logged and the loop keeps going.
type TokenCleanup struct {
	Interval time.Duration
	limpiar  func() (int64, error)
}

func NewTokenCleanup(tokens *TokenService) *TokenCleanup {
	interval := 24 * time.Hour
	if horas, err := strconv.Atoi(os.Getenv("TOKEN_CLEANUP_HOURS")); err == nil && horas > 0 {
		interval = time.Duration(horas) * time.Hour
	}
	return &TokenCleanup{
		Interval: interval,
		limpiar:  tokens.LimpiarExpirados,
	}
}

// Run blocks until ctx is cancelled.
func (c *TokenCleanup) Run(ctx context.Context) {
	log.Println("Servicio de limpieza de tokens iniciado")

	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()

	c.barrer()
	for {
		select {
		case <-ctx.Done():
			log.Println("Servicio de limpieza de tokens detenido")
			return
		case <-ticker.C:
			c.barrer()
		}
	}
}

func (c *TokenCleanup) barrer() {
	eliminados, err := c.limpiar()
	if err != nil {
		log.Printf("Error durante la limpieza automática de tokens: %v", err)
		return
	}
	if eliminados > 0 {
		log.Printf("Limpieza automática completada: %d tokens eliminados", eliminados)
	}
}
