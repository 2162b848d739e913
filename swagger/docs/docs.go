// Package docs holds the swagger definitions shared by every handler.
package docs

import "github.com/clinicdesk/calendar/internal/middleware"

// swagger:response
type Error struct {
	// The error message and the offending fields, if any
	//in: body
	Body middleware.ErrorResponse
}

// swagger:response
type Health struct {
	//in: body
	Body struct {
		// up or down
		Status string `json:"status"`
		// Status per dependency
		Dependencies map[string]string `json:"dependencies"`
	}
}
