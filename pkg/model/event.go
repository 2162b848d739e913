package model

import (
	"strings"
	"time"
)

// Event domain object defining an entry on the practitioner's calendar
// swagger:model
type Event struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"userId" gorm:"index;not null"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description"`
	StartTime    time.Time `json:"startTime" gorm:"index;not null"`
	EndTime      time.Time `json:"endTime" gorm:"not null"`
	Location     string    `json:"location"`
	EventType    EventType `json:"eventType" gorm:"type:varchar(32);not null"`
	Participants string    `json:"participants"`
	HasReminder  bool      `json:"hasReminder" gorm:"not null;default:false"`
}

// ParticipantList splits the comma separated participants into trimmed, non-empty entries.
func (e Event) ParticipantList() []string {
	var participants []string
	for _, p := range strings.Split(e.Participants, ",") {
		if p = strings.TrimSpace(p); p != "" {
			participants = append(participants, p)
		}
	}
	return participants
}

// Duration is the time between start and end. It is negative if the event ends before it starts.
func (e Event) Duration() time.Duration {
	return e.EndTime.Sub(e.StartTime)
}
