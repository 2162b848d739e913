package health

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Checker reports whether a dependency is reachable.
type Checker func(ctx context.Context) error

func NewHandler(checks map[string]Checker) Handler {
	return Handler{checks: checks}
}

type Handler struct {
	checks map[string]Checker
}

// Health reports the service and dependency status
func (h Handler) Health(c *gin.Context) {
	// swagger:route GET /health health
	//
	// Health status
	//
	// Show service status. Every configured dependency is checked.
	//
	// responses:
	//   200: Health
	//   503: Health
	status := http.StatusOK
	dependencies := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(c.Request.Context()); err != nil {
			dependencies[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		dependencies[name] = "up"
	}

	body := gin.H{"status": "up"}
	if status != http.StatusOK {
		body["status"] = "down"
	}
	if len(dependencies) > 0 {
		body["dependencies"] = dependencies
	}
	c.JSON(status, body)
}
