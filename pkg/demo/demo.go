// Package demo fills an empty calendar with a practitioner profile, a week of events and a note.
package demo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clinicdesk/calendar/pkg/model"
)

type profiles interface {
	FindAll(ctx context.Context) ([]model.UserProfile, error)
	Create(ctx context.Context, profile model.UserProfile) (model.UserProfile, error)
}

type events interface {
	Create(ctx context.Context, event model.Event) (model.Event, error)
}

type notes interface {
	Create(ctx context.Context, note model.Note) (model.Note, error)
}

func NewSeeder(logger *slog.Logger, profiles profiles, events events, notes notes) Seeder {
	return Seeder{
		logger:   logger,
		profiles: profiles,
		events:   events,
		notes:    notes,
	}
}

type Seeder struct {
	logger   *slog.Logger
	profiles profiles
	events   events
	notes    notes
}

// Seed stores the demo data relative to the day of now in loc. Nothing is stored if a profile
// already exists, which makes seeding a persistent store on every start safe.
func (s Seeder) Seed(ctx context.Context, now time.Time, loc *time.Location) error {
	existing, err := s.profiles.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		s.logger.InfoContext(ctx, "Skipping demo data, calendar is not empty")
		return nil
	}

	profile, err := s.profiles.Create(ctx, Profile())
	if err != nil {
		return fmt.Errorf("failed to seed profile: %v", err)
	}

	today := model.DateOf(now.In(loc))
	for _, event := range Events(profile.ID, today) {
		if _, err := s.events.Create(ctx, event); err != nil {
			return fmt.Errorf("failed to seed event %q: %v", event.Title, err)
		}
	}

	if _, err := s.notes.Create(ctx, Note(profile.ID, today)); err != nil {
		return fmt.Errorf("failed to seed note: %v", err)
	}

	s.logger.InfoContext(ctx, "Seeded demo data", "date", today.String())
	return nil
}

func Profile() model.UserProfile {
	return model.UserProfile{
		FullName:  "Dr. Sarah Johnson",
		Specialty: "Cardiologist",
		AvatarURL: "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d",
	}
}

// Events returns the demo events. Five take place on today, the others within the next week.
func Events(userID uint, today model.Date) []model.Event {
	at := func(days, hour, minute int) time.Time {
		y, m, d := today.Date()
		return time.Date(y, m, d+days, hour, minute, 0, 0, today.Location())
	}

	events := []model.Event{
		{
			Title:        "Research Meeting",
			Description:  "Discussion with research team on new clinical trial findings",
			StartTime:    at(0, 8, 0),
			EndTime:      at(0, 9, 30),
			Location:     "Conference Room B",
			EventType:    model.EventTypeResearch,
			Participants: "team@hospital.org",
			HasReminder:  true,
		},
		{
			Title:       "Patient Consultation",
			Description: "Follow-up with Mr. John Doe - Post-op check",
			StartTime:   at(0, 10, 0),
			EndTime:     at(0, 10, 30),
			Location:    "Office #3",
			EventType:   model.EventTypeConsultation,
			HasReminder: true,
		},
		{
			Title:       "Lunch Break",
			Description: "Personal time",
			StartTime:   at(0, 12, 0),
			EndTime:     at(0, 13, 0),
			EventType:   model.EventTypeBreak,
		},
		{
			Title:        "Team Review",
			Description:  "Weekly department case review session",
			StartTime:    at(0, 13, 0),
			EndTime:      at(0, 14, 30),
			Location:     "Main Conference Room",
			EventType:    model.EventTypeMeeting,
			Participants: "department@hospital.org",
			HasReminder:  true,
		},
		{
			Title:        "Patient Rounds",
			Description:  "Evening rounds with nursing staff",
			StartTime:    at(0, 16, 0),
			EndTime:      at(0, 17, 30),
			Location:     "Ward 3",
			EventType:    model.EventTypeRounds,
			Participants: "nursing@hospital.org",
			HasReminder:  true,
		},
		{
			Title:       "Conference - New Cardiac Procedures",
			Description: "Annual cardiology conference",
			StartTime:   at(7, 9, 0),
			EndTime:     at(7, 17, 0),
			Location:    "Medical Convention Center",
			EventType:   model.EventTypeConference,
			HasReminder: true,
		},
		{
			Title:        "Journal Club Webinar",
			Description:  "Discussion of recent medical journal publications",
			StartTime:    at(5, 19, 0),
			EndTime:      at(5, 20, 30),
			Location:     "Online (Zoom)",
			EventType:    model.EventTypeWebinar,
			Participants: "journal-club@hospital.org",
			HasReminder:  true,
		},
		{
			Title:        "Specialized Surgery",
			Description:  "Cardiac procedure for Patient ID 12345",
			StartTime:    at(2, 10, 0),
			EndTime:      at(2, 14, 0),
			Location:     "Operating Theater 2",
			EventType:    model.EventTypeSurgery,
			Participants: "surgery-team@hospital.org",
			HasReminder:  true,
		},
	}
	for i := range events {
		events[i].UserID = userID
	}
	return events
}

func Note(userID uint, today model.Date) model.Note {
	return model.Note{
		UserID: userID,
		Date:   today,
		Content: "<p><b>Research Meeting Notes:</b></p>" +
			"<p>- Discuss progress on cardiac study</p>" +
			"<p>- Review latest literature on hypertension treatment</p>" +
			"<p>- Plan next phase of clinical trials</p>" +
			"<p>- Assign tasks to team members</p>" +
			"<br>" +
			"<p><b>Patient Follow-up:</b></p>" +
			"<p>- Check Mr. Doe's recovery progress</p>" +
			"<p>- Update treatment plan if necessary</p>" +
			"<p>- Schedule next appointment</p>",
	}
}
