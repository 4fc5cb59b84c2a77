package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestTokenCleanupRunBarreAlIniciarYPorIntervalo(t *testing.T) {
	var barridos atomic.Int64
	cleanup := &TokenCleanup{
		Interval: 10 * time.Millisecond,
		limpiar: func() (int64, error) {
			barridos.Add(1)
			return 0, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		cleanup.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for barridos.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("solo %d barridos antes del plazo", barridos.Load())
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run no terminó tras cancelar el contexto")
	}
}

func TestTokenCleanupSigueTrasUnBarridoFallido(t *testing.T) {
	var llamadas atomic.Int64
	cleanup := &TokenCleanup{
		Interval: 10 * time.Millisecond,
		limpiar: func() (int64, error) {
			if llamadas.Add(1) == 1 {
				return 0, errors.New("conexión perdida")
			}
			return 2, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		cleanup.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for llamadas.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("el ciclo no continuó después de un barrido fallido")
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	<-done
}

func TestNewTokenCleanupIntervaloPorDefecto(t *testing.T) {
	t.Setenv("TOKEN_CLEANUP_HOURS", "")
	cleanup := NewTokenCleanup(&TokenService{})
	if cleanup.Interval != 24*time.Hour {
		t.Errorf("Interval = %v, esperaba 24h", cleanup.Interval)
	}
}

func TestNewTokenCleanupIntervaloConfigurado(t *testing.T) {
	t.Setenv("TOKEN_CLEANUP_HOURS", "6")
	cleanup := NewTokenCleanup(&TokenService{})
	if cleanup.Interval != 6*time.Hour {
		t.Errorf("Interval = %v, esperaba 6h", cleanup.Interval)
	}
}

func TestNewTokenCleanupIgnoraValorInvalido(t *testing.T) {
	t.Setenv("TOKEN_CLEANUP_HOURS", "-1")
	cleanup := NewTokenCleanup(&TokenService{})
	if cleanup.Interval != 24*time.Hour {
		t.Errorf("Interval = %v, esperaba 24h", cleanup.Interval)
	}
}
