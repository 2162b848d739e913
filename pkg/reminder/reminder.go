package reminder

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/clinicdesk/calendar/pkg/model"
	gomail "github.com/go-mail/mail"
)

func NewNotifier(logger *slog.Logger, finder finder, dialer dialer, from string, lead time.Duration, location *time.Location) *Notifier {
	return &Notifier{
		logger:   logger,
		finder:   finder,
		dialer:   dialer,
		from:     from,
		lead:     lead,
		location: location,
		now:      time.Now,
		sent:     make(map[sentKey]time.Time),
	}
}

type finder interface {
	FindReminders(ctx context.Context, from, to time.Time) ([]model.Event, error)
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Notifier e-mails the participants of events with a reminder shortly before the events start.
// Every event is announced once per start time, so rescheduling an event triggers a new reminder.
type Notifier struct {
	logger   *slog.Logger
	finder   finder
	dialer   dialer
	from     string
	lead     time.Duration
	location *time.Location
	now      func() time.Time

	mu   sync.Mutex
	sent map[sentKey]time.Time
}

type sentKey struct {
	id    uint
	start int64
}

// Run implements cron.Job.
func (n *Notifier) Run() {
	ctx := context.Background()
	sent, err := n.Notify(ctx)
	if err != nil {
		n.logger.ErrorContext(ctx, "Failed to send reminders", "error", err)
		return
	}
	if sent > 0 {
		n.logger.InfoContext(ctx, "Sent reminders", "count", sent)
	}
}

// Notify sends reminders for events starting within the lead time and returns the number of
// e-mails sent. Events without a participant e-mail address are skipped.
func (n *Notifier) Notify(ctx context.Context) (int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	now := n.now()
	n.forget(now)

	events, err := n.finder.FindReminders(ctx, now, now.Add(n.lead))
	if err != nil {
		return 0, err
	}

	var errs []error
	sent := 0
	for _, event := range events {
		key := sentKey{id: event.ID, start: event.StartTime.Unix()}
		if _, ok := n.sent[key]; ok {
			continue
		}

		recipients := Recipients(event)
		if len(recipients) == 0 {
			n.logger.DebugContext(ctx, "Event has no participant to remind", "eventId", event.ID)
			n.sent[key] = event.StartTime
			continue
		}

		if err := n.dialer.DialAndSend(n.message(event, recipients)); err != nil {
			errs = append(errs, fmt.Errorf("failed to send reminder for event %d: %v", event.ID, err))
			continue
		}
		n.sent[key] = event.StartTime
		sent++
	}

	return sent, errors.Join(errs...)
}

// forget drops events that already started.
func (n *Notifier) forget(now time.Time) {
	for key, start := range n.sent {
		if start.Before(now) {
			delete(n.sent, key)
		}
	}
}

func (n *Notifier) message(event model.Event, recipients []string) *gomail.Message {
	start := event.StartTime.In(n.location)

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", fmt.Sprintf("Reminder: %s at %s", event.Title, start.Format("3:04 PM")))

	var body strings.Builder
	fmt.Fprintf(&body, "<p><strong>%s</strong></p>", html.EscapeString(event.Title))
	fmt.Fprintf(&body, "<p>%s - %s</p>", start.Format("Monday, January 2, 2006 3:04 PM"), event.EndTime.In(n.location).Format("3:04 PM"))
	if event.Location != "" {
		fmt.Fprintf(&body, "<p>Location: %s</p>", html.EscapeString(event.Location))
	}
	if event.Description != "" {
		fmt.Fprintf(&body, "<p>%s</p>", html.EscapeString(event.Description))
	}
	m.SetBody("text/html", body.String())
	return m
}

// Recipients returns the participants of event that are e-mail addresses.
func Recipients(event model.Event) []string {
	var recipients []string
	for _, participant := range event.ParticipantList() {
		address, err := mail.ParseAddress(participant)
		if err != nil {
			continue
		}
		recipients = append(recipients, address.Address)
	}
	return recipients
}
