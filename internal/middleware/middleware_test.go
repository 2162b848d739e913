package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clinicdesk/calendar/internal/errdef"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := map[string]struct {
		err        error
		wantStatus int
	}{
		"BadRequest":           {err: errdef.NewBadRequest("bad"), wantStatus: http.StatusBadRequest},
		"Validation":           {err: errdef.NewValidation([]errdef.FieldError{{Field: "title", Message: "is required"}}, "invalid"), wantStatus: http.StatusBadRequest},
		"NotFound":             {err: errdef.NewNotFound("event 1 not found"), wantStatus: http.StatusNotFound},
		"Conflict":             {err: errdef.NewConflict("conflict"), wantStatus: http.StatusConflict},
		"UnsupportedMediaType": {err: errdef.NewUnsupportedMediaType("media"), wantStatus: http.StatusUnsupportedMediaType},
		"TooManyRequests":      {err: errdef.NewTooManyRequests("slow down"), wantStatus: http.StatusTooManyRequests},
		"BadGateway":           {err: errdef.NewBadGateway("upstream"), wantStatus: http.StatusBadGateway},
		"Unavailable":          {err: errdef.NewUnavailable("no key"), wantStatus: http.StatusServiceUnavailable},
		"Unknown":              {err: errors.New("database is down"), wantStatus: http.StatusInternalServerError},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			r := gin.New()
			r.Use(CorrelationID(), ErrorHandler())
			r.GET("/", func(c *gin.Context) {
				_ = c.Error(test.err)
			})

			w := httptest.NewRecorder()
			req, err := http.NewRequest(http.MethodGet, "/", nil)
			require.NoError(t, err)
			r.ServeHTTP(w, req)

			assert.Equal(t, test.wantStatus, w.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if test.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, body.Message, "database is down")
				assert.Contains(t, body.Message, w.Header().Get(CorrelationIDHeader))
			} else {
				assert.Equal(t, test.err.Error(), body.Message)
			}
			assert.Equal(t, errdef.ValidationFields(test.err), body.Errors)
		})
	}
}

func TestErrorHandler_AbortedWithStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/", func(c *gin.Context) {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("error parsing \"id\""))
	})

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error parsing")
}

func TestCorrelationID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got string
	r := gin.New()
	r.Use(CorrelationID())
	r.GET("/", func(c *gin.Context) {
		got, _ = GetCorrelationID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)

	assert.NotEmpty(t, got)
	assert.Equal(t, got, w.Header().Get(CorrelationIDHeader))

	_, ok := GetCorrelationID(context.Background())
	assert.False(t, ok)
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/", RateLimit(NewRateLimiter(ctx, 0.001, 2)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	statuses := make([]int, 3)
	for i := range statuses {
		w := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, "/", nil)
		require.NoError(t, err)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		statuses[i] = w.Code
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}
