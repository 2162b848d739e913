package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/clinicdesk/calendar/internal/errdef"
	"github.com/clinicdesk/calendar/pkg/event"
	"github.com/clinicdesk/calendar/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// EventRepository runs the event repository suite. newRepository must return an empty repository
// on every call.
func EventRepository(t *testing.T, newRepository func(t *testing.T) event.Repository) {
	t.Run("CreateAssignsIncreasingIDs", func(t *testing.T) {
		repository := newRepository(t)
		ctx := context.Background()

		first := rounds(time.Date(2024, 3, 1, 16, 0, 0, 0, time.UTC))
		require.NoError(t, repository.Create(ctx, &first))
		second := rounds(time.Date(2024, 3, 2, 16, 0, 0, 0, time.UTC))
		require.NoError(t, repository.Create(ctx, &second))

		assert.Equal(t, uint(1), first.ID)
		assert.Equal(t, uint(2), second.ID)
	})

	t.Run("CreateAllAssignsIDsInOrder", func(t *testing.T) {
		repository := newRepository(t)
		ctx := context.Background()
		existing := rounds(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC))
		require.NoError(t, repository.Create(ctx, &existing))

		batch := []model.Event{
			rounds(time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)),
			rounds(time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)),
		}
		require.NoError(t, repository.CreateAll(ctx, batch))

		assert.Equal(t, uint(2), batch[0].ID)
		assert.Equal(t, uint(3), batch[1].ID)
		events, err := repository.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assertEventEqual(t, batch[0], events[1])
		assertEventEqual(t, batch[1], events[2])
	})

	t.Run("CreateAllEmpty", func(t *testing.T) {
		repository := newRepository(t)
		ctx := context.Background()

		require.NoError(t, repository.CreateAll(ctx, nil))

		events, err := repository.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("FindByIDReturnsCreatedEvent", func(t *testing.T) {
		repository := newRepository(t)
		ctx := context.Background()
		want := model.Event{
			UserID:       1,
			Title:        "Cardiology Conference",
			Description:  "Annual meeting",
			StartTime:    time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC),
			EndTime:      time.Date(2024, 5, 10, 17, 0, 0, 0, time.UTC),
			Location:     "Convention Center",
			EventType:    model.EventTypeConference,
			Participants: "dr.lee@example.com, Dr. Patel",
			HasReminder:  true,
		}
		created := want
		require.NoError(t, repository.Create(ctx, &created))

		got, err := repository.FindByID(ctx, created.ID)

		require.NoError(t, err)
		assertEventEqual(t, want, got)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("FindByIDNotFound", func(t *testing.T) {
		repository := newRepository(t)

		_, err := repository.FindByID(context.Background(), 42)

		assert.True(t, errdef.IsNotFound(err))
	})

	t.Run("FindAllOrderedByID", func(t *testing.T) {
		repository := newRepository(t)
		ctx := context.Background()
		for _, day := range []int{5, 1, 3} {
			e := rounds(time.Date(2024, 3, day, 8, 0, 0, 0, time.UTC))
			require.NoError(t, repository.Create(ctx, &e))
		}

		events, err := repository.FindAll(ctx)

		require.NoError(t, err)
		require.Len(t, events, 3)
		for i, e := range events {
			assert.Equal(t, uint(i+1), e.ID)
		}
	})

	t.Run("FindByDateMatchesCalendarDay", func(t *testing.T) {
		repository := newRepository(t)
		ctx := context.Background()
		lateEvening := rounds(time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC))
		require.NoError(t, repository.Create(ctx, &lateEvening))
		nextMorning := rounds(time.Date(2024, 3, 2, 0, 1, 0, 0, time.UTC))
		require.NoError(t, repository.Create(ctx, &nextMorning))
		afternoon := rounds(time.Date(2024, 3, 1, 16, 0, 0, 0, time.UTC))
		require.NoError(t, repository.Create(ctx, &afternoon))

		events, err := repository.FindByDate(ctx, model.NewDate(2024, time.March, 1, time.UTC))

		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, afternoon.ID, events[0].ID)
		assert.Equal(t, lateEvening.ID, events[1].ID)
	})

	t.Run("FindByDateUsesDateLocation", func(t *testing.T) {
		repository := newRepository(t)
		ctx := context.Background()
		oslo, err := time.LoadLocation("Europe/Oslo")
		require.NoError(t, err)
		// 23:30 UTC on the 1st is already the 2nd in Oslo
		e := rounds(time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC))
		require.NoError(t, repository.Create(ctx, &e))

		first, err := repository.FindByDate(ctx, model.NewDate(2024, time.March, 1, oslo))
		require.NoError(t, err)
		second, err := repository.FindByDate(ctx, model.NewDate(2024, time.March, 2, oslo))
		require.NoError(t, err)

		assert.Empty(t, first)
		require.Len(t, second, 1)
		assert.Equal(t, e.ID, second[0].ID)
	})

	t.Run("FindUpcomingReturnsEarliestAscending", func(t *testing.T) {
		repository := newRepository(t)
		ctx := context.Background()
		now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		past := rounds(now.Add(-time.Hour))
		require.NoError(t, repository.Create(ctx, &past))
		for _, offset := range []int{5, 2, 4, 1, 3} {
			e := rounds(now.Add(time.Duration(offset) * time.Hour))
			require.NoError(t, repository.Create(ctx, &e))
		}

		events, err := repository.FindUpcoming(ctx, now, 3)

		require.NoError(t, err)
		require.Len(t, events, 3)
		for i, e := range events {
			assert.True(t, e.StartTime.Equal(now.Add(time.Duration(i+1)*time.Hour)), "event %d starts at %s", i, e.StartTime)
		}
	})

	t.Run("FindUpcomingIncludesEventStartingAtFrom", func(t *testing.T) {
		repository := newRepository(t)
		ctx := context.Background()
		now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		e := rounds(now)
		require.NoError(t, repository.Create(ctx, &e))

		events, err := repository.FindUpcoming(ctx, now, 0)

		require.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("FindStartingBetweenIsHalfOpen", func(t *testing.T) {
		repository := newRepository(t)
		ctx := context.Background()
		from := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		to := from.Add(30 * time.Minute)
		for _, start := range []time.Time{from, from.Add(29 * time.Minute), to} {
			e := rounds(start)
			require.NoError(t, repository.Create(ctx, &e))
		}

		events, err := repository.FindStartingBetween(ctx, from, to)

		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("UpdateReplacesAllFieldsButID", func(t *testing.T) {
		repository := newRepository(t)
		ctx := context.Background()
		created := model.Event{
			UserID:       1,
			Title:        "Rounds",
			Description:  "Ward 3",
			StartTime:    time.Date(2024, 3, 1, 16, 0, 0, 0, time.UTC),
			EndTime:      time.Date(2024, 3, 1, 17, 30, 0, 0, time.UTC),
			Location:     "Ward 3",
			EventType:    model.EventTypeRounds,
			Participants: "nurse@example.com",
			HasReminder:  true,
		}
		require.NoError(t, repository.Create(ctx, &created))
		replacement := model.Event{
			ID:        99,
			UserID:    2,
			Title:     "Break",
			StartTime: time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2024, 3, 2, 12, 30, 0, 0, time.UTC),
			EventType: model.EventTypeBreak,
		}

		updated, err := repository.Update(ctx, created.ID, replacement)
		require.NoError(t, err)
		got, err := repository.FindByID(ctx, created.ID)
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assertEventEqual(t, replacement, got)
		assert.Empty(t, got.Description)
		assert.Empty(t, got.Location)
		assert.False(t, got.HasReminder)
		_, err = repository.FindByID(ctx, 99)
		assert.True(t, errdef.IsNotFound(err))
	})

	t.Run("UpdateNotFound", func(t *testing.T) {
		repository := newRepository(t)

		_, err := repository.Update(context.Background(), 7, rounds(time.Now()))

		assert.True(t, errdef.IsNotFound(err))
	})

	t.Run("DeleteNotFound", func(t *testing.T) {
		repository := newRepository(t)

		err := repository.Delete(context.Background(), 7)

		assert.True(t, errdef.IsNotFound(err))
	})

	t.Run("DeletedIDsAreNotReused", func(t *testing.T) {
		repository := newRepository(t)
		ctx := context.Background()
		first := rounds(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC))
		require.NoError(t, repository.Create(ctx, &first))
		second := rounds(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
		require.NoError(t, repository.Create(ctx, &second))

		require.NoError(t, repository.Delete(ctx, second.ID))
		_, err := repository.FindByID(ctx, second.ID)
		require.True(t, errdef.IsNotFound(err))
		third := rounds(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
		require.NoError(t, repository.Create(ctx, &third))

		assert.Equal(t, uint(3), third.ID)
	})
}

func rounds(start time.Time) model.Event {
	return model.Event{
		UserID:    1,
		Title:     "Rounds",
		StartTime: start,
		EndTime:   start.Add(90 * time.Minute),
		EventType: model.EventTypeRounds,
	}
}

// assertEventEqual compares every field but the id. Instants are compared with time.Equal since
// backings may return them in another location.
func assertEventEqual(t *testing.T, want, got model.Event) {
	t.Helper()

	assert.True(t, want.StartTime.Equal(got.StartTime), "start time: want %s, got %s", want.StartTime, got.StartTime)
	assert.True(t, want.EndTime.Equal(got.EndTime), "end time: want %s, got %s", want.EndTime, got.EndTime)
	want.ID, got.ID = 0, 0
	want.StartTime, got.StartTime = time.Time{}, time.Time{}
	want.EndTime, got.EndTime = time.Time{}, time.Time{}
	assert.Equal(t, want, got)
}
