package event

import (
	"strings"
	"testing"
	"time"

	"github.com/clinicdesk/calendar/internal/errdef"
	"github.com/clinicdesk/calendar/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeAndDecodeICS(t *testing.T) {
	events := []model.Event{
		{
			ID:           1,
			UserID:       1,
			Title:        "Rounds",
			Description:  "Ward 3, then ICU",
			StartTime:    time.Date(2024, 3, 1, 16, 0, 0, 0, time.UTC),
			EndTime:      time.Date(2024, 3, 1, 17, 30, 0, 0, time.UTC),
			Location:     "Ward 3",
			EventType:    model.EventTypeRounds,
			Participants: "nurse@example.com, Dr. Patel",
			HasReminder:  true,
		},
		{
			ID:        2,
			UserID:    1,
			Title:     "Lunch",
			StartTime: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
			EventType: model.EventTypeBreak,
		},
	}

	document := EncodeICS(events, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	assert.Contains(t, document, "BEGIN:VCALENDAR")
	assert.Contains(t, document, "UID:event-1@clinicdesk")
	assert.Contains(t, document, "mailto:nurse@example.com")
	assert.Equal(t, 1, strings.Count(document, "BEGIN:VALARM"))

	decoded, err := DecodeICS(strings.NewReader(document), 7)
	require.NoError(t, err)
	require.Len(t, decoded, 2)

	rounds := decoded[0]
	assert.Equal(t, uint(0), rounds.ID)
	assert.Equal(t, uint(7), rounds.UserID)
	assert.Equal(t, "Rounds", rounds.Title)
	assert.Equal(t, "Ward 3, then ICU", rounds.Description)
	assert.Equal(t, "Ward 3", rounds.Location)
	assert.Equal(t, model.EventTypeRounds, rounds.EventType)
	assert.Equal(t, "nurse@example.com, Dr. Patel", rounds.Participants)
	assert.True(t, rounds.HasReminder)
	assert.True(t, events[0].StartTime.Equal(rounds.StartTime))
	assert.True(t, events[0].EndTime.Equal(rounds.EndTime))

	lunch := decoded[1]
	assert.Equal(t, model.EventTypeBreak, lunch.EventType)
	assert.Empty(t, lunch.Participants)
	assert.False(t, lunch.HasReminder)
}

func TestDecodeICS(t *testing.T) {
	tests := map[string]struct {
		document string
		check    func(t *testing.T, events []model.Event, err error)
	}{
		"UnknownCategoryAndAttendees": {
			document: "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//test//EN\r\n" +
				"BEGIN:VEVENT\r\nUID:1@test\r\nDTSTAMP:20240201T000000Z\r\n" +
				"DTSTART:20240301T090000Z\r\nDTEND:20240301T100000Z\r\n" +
				"SUMMARY:Journal club\r\nCATEGORIES:Reading\r\n" +
				"ATTENDEE:mailto:a@example.com\r\nATTENDEE:mailto:b@example.com\r\n" +
				"END:VEVENT\r\nEND:VCALENDAR\r\n",
			check: func(t *testing.T, events []model.Event, err error) {
				require.NoError(t, err)
				require.Len(t, events, 1)
				assert.Equal(t, model.EventTypeOther, events[0].EventType)
				assert.Equal(t, "a@example.com, b@example.com", events[0].Participants)
				assert.Equal(t, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), events[0].StartTime.UTC())
			},
		},
		"MissingEndDefaultsToOneHour": {
			document: "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//test//EN\r\n" +
				"BEGIN:VEVENT\r\nUID:1@test\r\nDTSTART:20240301T090000Z\r\nSUMMARY:Call\r\n" +
				"END:VEVENT\r\nEND:VCALENDAR\r\n",
			check: func(t *testing.T, events []model.Event, err error) {
				require.NoError(t, err)
				require.Len(t, events, 1)
				assert.Equal(t, time.Hour, events[0].Duration())
			},
		},
		"MissingSummary": {
			document: "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//test//EN\r\n" +
				"BEGIN:VEVENT\r\nUID:1@test\r\nDTSTART:20240301T090000Z\r\n" +
				"END:VEVENT\r\nEND:VCALENDAR\r\n",
			check: func(t *testing.T, _ []model.Event, err error) {
				assert.True(t, errdef.IsBadRequest(err))
				assert.ErrorContains(t, err, "SUMMARY")
			},
		},
		"NoEvents": {
			document: "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//test//EN\r\nEND:VCALENDAR\r\n",
			check: func(t *testing.T, _ []model.Event, err error) {
				assert.True(t, errdef.IsBadRequest(err))
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			events, err := DecodeICS(strings.NewReader(test.document), 1)

			test.check(t, events, err)
		})
	}
}
