package model

import "time"

// UserProfile domain object defining the practitioner's display details
// swagger:model
type UserProfile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FullName  string    `json:"fullName" gorm:"not null"`
	Email     string    `json:"email"`
	Specialty string    `json:"specialty"`
	AvatarURL string    `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
}
