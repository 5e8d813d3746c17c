package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// healthReport to odpowiedź endpointu /health
type healthReport struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Uptime    string `json:"uptime"`
	CheckedAt string `json:"checked_at"`
}

var (
	healthMutex  sync.RWMutex
	healthState  = "ok"
	startTime    = time.Now()
	serviceLabel = "portal-avm"
)

// HealthCheckMiddleware zwraca handler dla endpointu zdrowia aplikacji
func HealthCheckMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		healthMutex.RLock()
		status := healthState
		healthMutex.RUnlock()

		code := http.StatusOK
		if status != "ok" {
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, healthReport{
			Status:    status,
			Service:   serviceLabel,
			Uptime:    time.Since(startTime).Round(time.Second).String(),
			CheckedAt: time.Now().Format(time.RFC3339),
		})
	}
}

// UpdateHealthStatus pozwala oznaczyć aplikację jako niezdrową (np. gdy
// serwis arkusza przestaje odpowiadać)
func UpdateHealthStatus(status string) {
	healthMutex.Lock()
	defer healthMutex.Unlock()

	healthState = status
}
