package health_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/clinicdesk/calendar/pkg/health"
	"github.com/clinicdesk/calendar/pkg/inttest"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	t.Parallel()

	t.Run("Up", func(t *testing.T) {
		t.Parallel()

		client := inttest.SetupHTTPServer(t, func(engine *gin.Engine) {
			engine.GET("/healthz", health.NewHandler(map[string]health.Checker{
				"database": func(context.Context) error { return nil },
			}).Health)
		})

		var body map[string]any
		client.GetJSON(t, "/healthz", &body)

		assert.Equal(t, "up", body["status"])
		assert.Equal(t, map[string]any{"database": "up"}, body["dependencies"])
	})

	t.Run("Down", func(t *testing.T) {
		t.Parallel()

		client := inttest.SetupHTTPServer(t, func(engine *gin.Engine) {
			engine.GET("/healthz", health.NewHandler(map[string]health.Checker{
				"redis": func(context.Context) error { return errors.New("connection refused") },
			}).Health)
		})

		body := client.Do(t, http.MethodGet, "/healthz", nil, http.StatusServiceUnavailable)

		assert.JSONEq(t, `{"status":"down","dependencies":{"redis":"connection refused"}}`, string(body))
	})
}
