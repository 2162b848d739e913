package demo_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/clinicdesk/calendar/pkg/demo"
	"github.com/clinicdesk/calendar/pkg/event"
	"github.com/clinicdesk/calendar/pkg/model"
	"github.com/clinicdesk/calendar/pkg/note"
	"github.com/clinicdesk/calendar/pkg/profile"
	"github.com/clinicdesk/calendar/pkg/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeder_Seed(t *testing.T) {
	ctx := context.Background()
	broker := stream.NewBroker()
	profileService := profile.NewService(profile.NewMemoryRepository())
	eventService := event.NewService(event.NewMemoryRepository(), broker)
	noteService := note.NewService(note.NewMemoryRepository(), broker)
	seeder := demo.NewSeeder(slog.New(slog.NewTextHandler(io.Discard, nil)), profileService, eventService, noteService)
	now := time.Date(2024, time.March, 4, 6, 15, 0, 0, time.UTC)

	require.NoError(t, seeder.Seed(ctx, now, time.UTC))

	profiles, err := profileService.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Dr. Sarah Johnson", profiles[0].FullName)
	assert.Equal(t, "Cardiologist", profiles[0].Specialty)

	events, err := eventService.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 8)

	today, err := eventService.FindByDate(ctx, model.NewDate(2024, time.March, 4, time.UTC))
	require.NoError(t, err)
	require.Len(t, today, 5)
	assert.Equal(t, "Research Meeting", today[0].Title)
	assert.Equal(t, "Patient Rounds", today[4].Title)
	for _, e := range today {
		assert.Equal(t, profiles[0].ID, e.UserID)
	}

	upcoming, err := eventService.FindUpcoming(ctx, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), 0)
	require.NoError(t, err)
	require.Len(t, upcoming, 3)
	assert.Equal(t, "Specialized Surgery", upcoming[0].Title)
	assert.Equal(t, "Journal Club Webinar", upcoming[1].Title)
	assert.Equal(t, "Conference - New Cardiac Procedures", upcoming[2].Title)

	n, err := noteService.FindByDate(ctx, model.NewDate(2024, time.March, 4, time.UTC))
	require.NoError(t, err)
	assert.Contains(t, n.Content, "Research Meeting Notes")
}

func TestSeeder_SeedSkipsNonEmptyCalendar(t *testing.T) {
	ctx := context.Background()
	broker := stream.NewBroker()
	profileService := profile.NewService(profile.NewMemoryRepository())
	eventService := event.NewService(event.NewMemoryRepository(), broker)
	seeder := demo.NewSeeder(slog.New(slog.NewTextHandler(io.Discard, nil)), profileService, eventService, note.NewService(note.NewMemoryRepository(), broker))

	_, err := profileService.Create(ctx, model.UserProfile{FullName: "Dr. Existing"})
	require.NoError(t, err)

	require.NoError(t, seeder.Seed(ctx, time.Now(), time.UTC))

	events, err := eventService.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEvents_FollowTheLocalDay(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	// the day daylight saving time starts
	today := model.NewDate(2024, time.March, 10, newYork)

	events := demo.Events(1, today)

	require.Len(t, events, 8)
	for _, e := range events {
		assert.Equal(t, 0, e.StartTime.Minute(), e.Title)
		assert.True(t, e.EndTime.After(e.StartTime), e.Title)
		assert.True(t, e.EventType.IsValid(), e.Title)
	}
	assert.Equal(t, 8, events[0].StartTime.Hour())
	assert.Equal(t, 10, events[7].StartTime.Hour())
	assert.Equal(t, 12, events[7].StartTime.Day())
}
