package event_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/clinicdesk/calendar/pkg/event"
	"github.com/clinicdesk/calendar/pkg/inttest"
	"github.com/clinicdesk/calendar/pkg/model"
	"github.com/clinicdesk/calendar/pkg/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository(t *testing.T) {
	t.Parallel()

	db := inttest.SetupDB(t)

	storetest.EventRepository(t, func(t *testing.T) event.Repository {
		require.NoError(t, db.Exec("TRUNCATE TABLE events RESTART IDENTITY").Error)
		return event.NewRepository(db)
	})

	t.Run("CreateAllRollsBackOnFailure", func(t *testing.T) {
		require.NoError(t, db.Exec("TRUNCATE TABLE events RESTART IDENTITY").Error)
		repository := event.NewRepository(db)
		ctx := context.Background()
		start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

		err := repository.CreateAll(ctx, []model.Event{
			{UserID: 1, Title: "Rounds", StartTime: start, EndTime: start.Add(time.Hour), EventType: model.EventTypeRounds},
			{UserID: 1, Title: "Too long", StartTime: start, EndTime: start.Add(time.Hour), EventType: model.EventType(strings.Repeat("x", 40))},
		})

		require.Error(t, err)
		events, err := repository.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
