package event

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/clinicdesk/calendar/internal/errdef"
	"github.com/clinicdesk/calendar/pkg/model"
)

const (
	icsProductID = "-//clinicdesk//calendar//EN"
	// reminderTrigger is when the VALARM of an event with a reminder fires.
	reminderTrigger = "-PT30M"
	// participantsProperty keeps the participants verbatim since not all of them are addresses.
	participantsProperty = ics.ComponentProperty("X-CLINICDESK-PARTICIPANTS")
)

var (
	textEscaper   = strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\n", `\n`)
	textUnescaper = strings.NewReplacer(`\\`, `\`, `\;`, ";", `\,`, ",", `\n`, "\n", `\N`, "\n")
)

// EncodeICS serializes events into an iCalendar document.
func EncodeICS(events []model.Event, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)

	for _, e := range events {
		vevent := cal.AddEvent(fmt.Sprintf("event-%d@clinicdesk", e.ID))
		vevent.SetDtStampTime(now)
		vevent.SetStartAt(e.StartTime)
		vevent.SetEndAt(e.EndTime)
		vevent.SetSummary(e.Title)
		if e.Description != "" {
			vevent.SetDescription(e.Description)
		}
		if e.Location != "" {
			vevent.SetLocation(e.Location)
		}
		vevent.SetProperty(ics.ComponentPropertyCategories, string(e.EventType))
		if e.Participants != "" {
			vevent.SetProperty(participantsProperty, textEscaper.Replace(e.Participants))
		}
		for _, participant := range e.ParticipantList() {
			if strings.Contains(participant, "@") {
				vevent.AddAttendee("mailto:" + participant)
			}
		}
		if e.HasReminder {
			alarm := vevent.AddAlarm()
			alarm.SetAction(ics.ActionDisplay)
			alarm.SetTrigger(reminderTrigger)
		}
	}

	return cal.Serialize()
}

// DecodeICS parses the VEVENTs of an iCalendar document into events owned by userID. Unknown
// categories become EventTypeOther.
func DecodeICS(r io.Reader, userID uint) ([]model.Event, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, errdef.NewBadRequest("invalid iCalendar document: %v", err)
	}

	vevents := cal.Events()
	if len(vevents) == 0 {
		return nil, errdef.NewBadRequest("iCalendar document contains no events")
	}

	events := make([]model.Event, 0, len(vevents))
	for i, vevent := range vevents {
		event, err := decodeVEvent(vevent, userID)
		if err != nil {
			return nil, errdef.NewBadRequest("event %d: %v", i+1, err)
		}
		events = append(events, event)
	}
	return events, nil
}

func decodeVEvent(vevent *ics.VEvent, userID uint) (model.Event, error) {
	event := model.Event{
		UserID:    userID,
		EventType: model.EventTypeOther,
	}

	if p := vevent.GetProperty(ics.ComponentPropertySummary); p != nil {
		event.Title = textUnescaper.Replace(p.Value)
	}
	if event.Title == "" {
		return model.Event{}, fmt.Errorf("missing SUMMARY")
	}
	if p := vevent.GetProperty(ics.ComponentPropertyDescription); p != nil {
		event.Description = textUnescaper.Replace(p.Value)
	}
	if p := vevent.GetProperty(ics.ComponentPropertyLocation); p != nil {
		event.Location = textUnescaper.Replace(p.Value)
	}
	if p := vevent.GetProperty(ics.ComponentPropertyCategories); p != nil {
		if eventType := model.EventType(strings.ToLower(p.Value)); eventType.IsValid() {
			event.EventType = eventType
		}
	}

	start, err := vevent.GetStartAt()
	if err != nil {
		return model.Event{}, fmt.Errorf("invalid DTSTART: %v", err)
	}
	event.StartTime = start

	end, err := vevent.GetEndAt()
	if err != nil {
		end = start.Add(time.Hour)
	}
	event.EndTime = end

	if p := vevent.GetProperty(participantsProperty); p != nil {
		event.Participants = textUnescaper.Replace(p.Value)
	} else {
		var participants []string
		for _, attendee := range vevent.Attendees() {
			participants = append(participants, attendee.Email())
		}
		event.Participants = strings.Join(participants, ", ")
	}
	event.HasReminder = len(vevent.Alarms()) > 0

	return event, nil
}
