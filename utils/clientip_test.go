package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func contextoConRequest(t *testing.T, remoteAddr string, headers map[string]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	c.Request = req
	return c
}

func TestClientIP(t *testing.T) {
	casos := []struct {
		nombre     string
		remoteAddr string
		headers    map[string]string
		esperado   string
	}{
		{
			nombre:     "primer salto de X-Forwarded-For",
			remoteAddr: "10.0.0.1:54321",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.2, 10.0.0.1"},
			esperado:   "203.0.113.9",
		},
		{
			nombre:     "X-Forwarded-For con espacios",
			remoteAddr: "10.0.0.1:54321",
			headers:    map[string]string{"X-Forwarded-For": "  203.0.113.9  "},
			esperado:   "203.0.113.9",
		},
		{
			nombre:     "X-Real-IP cuando no hay X-Forwarded-For",
			remoteAddr: "10.0.0.1:54321",
			headers:    map[string]string{"X-Real-IP": "198.51.100.4"},
			esperado:   "198.51.100.4",
		},
		{
			nombre:     "X-Forwarded-For tiene prioridad sobre X-Real-IP",
			remoteAddr: "10.0.0.1:54321",
			headers: map[string]string{
				"X-Forwarded-For": "203.0.113.9",
				"X-Real-IP":       "198.51.100.4",
			},
			esperado: "203.0.113.9",
		},
		{
			nombre:     "dirección del peer sin cabeceras",
			remoteAddr: "192.0.2.7:41000",
			headers:    nil,
			esperado:   "192.0.2.7",
		},
		{
			nombre:     "peer sin puerto",
			remoteAddr: "192.0.2.7",
			headers:    nil,
			esperado:   "192.0.2.7",
		},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			c := contextoConRequest(t, caso.remoteAddr, caso.headers)
			if got := ClientIP(c); got != caso.esperado {
				t.Errorf("ClientIP = %q, esperaba %q", got, caso.esperado)
			}
		})
	}
}
