// Package profile keeps the display details of the practitioner.
package profile

import "github.com/clinicdesk/calendar/pkg/model"

// swagger:response Profile
type _ struct {
	// in: body
	Body model.UserProfile
}

// swagger:response Profiles
type _ struct {
	// in: body
	Body []model.UserProfile
}

// swagger:parameters createProfile
type _ struct {
	// in: body
	// required: true
	Body ProfileRequest
}

// swagger:parameters updateProfile
type _ struct {
	// in: path
	// required: true
	ID uint `json:"id"`

	// in: body
	// required: true
	Body ProfileRequest
}

// swagger:parameters findProfile
type _ struct {
	// in: path
	// required: true
	ID uint `json:"id"`
}
