package profile

import (
	"net/http"

	"github.com/clinicdesk/calendar/internal/handler"
	"github.com/clinicdesk/calendar/pkg/model"
	"github.com/gin-gonic/gin"
)

func NewHandler(profileService Service) Handler {
	return Handler{profileService}
}

type Handler struct {
	profileService Service
}

type ProfileRequest struct {
	FullName  string `json:"fullName" binding:"required,min=2"`
	Email     string `json:"email" binding:"omitempty,email"`
	Specialty string `json:"specialty"`
	AvatarURL string `json:"avatarUrl" binding:"omitempty,url"`
}

func (r ProfileRequest) profile() model.UserProfile {
	return model.UserProfile{
		FullName:  r.FullName,
		Email:     r.Email,
		Specialty: r.Specialty,
		AvatarURL: r.AvatarURL,
	}
}

// Create profile
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /profiles createProfile
	//
	// Create profile
	//
	// Create the practitioner's profile.
	//
	// responses:
	//   201: Profile
	//   400: Error
	//   415: Error
	var request ProfileRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	profile, err := h.profileService.Create(c.Request.Context(), request.profile())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// FindAll profiles
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /profiles findAllProfiles
	//
	// Find all profiles
	//
	// Find all profiles ordered by id.
	//
	// responses:
	//   200: Profiles
	profiles, err := h.profileService.FindAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// Find profile by id
func (h Handler) Find(c *gin.Context) {
	// swagger:route GET /profiles/{id} findProfile
	//
	// Find profile
	//
	// Find a profile by its id.
	//
	// responses:
	//   200: Profile
	//   400: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	profile, err := h.profileService.FindByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Update profile
func (h Handler) Update(c *gin.Context) {
	// swagger:route PUT /profiles/{id} updateProfile
	//
	// Update profile
	//
	// Replace the display fields of a profile.
	//
	// responses:
	//   200: Profile
	//   400: Error
	//   404: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request ProfileRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), id, request.profile())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
