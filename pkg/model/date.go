package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the ISO 8601 calendar date format used on the wire and in the database.
const DateLayout = time.DateOnly

// Date is a calendar day without time of day. The wrapped time is always midnight in the location
// the day was taken from. Dates decoded from JSON or scanned from the database are midnight UTC;
// use In to anchor them in the calendar's time zone.
type Date struct {
	time.Time
}

// DateError reports a value that is not a calendar date.
type DateError struct {
	Value string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid date %q: want format YYYY-MM-DD", e.Value)
}

// DateOf returns the calendar day t falls on in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

// NewDate returns the given calendar day in loc.
func NewDate(year int, month time.Month, day int, loc *time.Location) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, loc)}
}

// ParseDate parses "2006-01-02" in loc. Full RFC 3339 instants are accepted as well and resolve to
// the day in the instant's own offset.
func ParseDate(s string, loc *time.Location) (Date, error) {
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, &DateError{Value: s}
	}
	return DateOf(t), nil
}

// Equal reports whether d and o are the same calendar day regardless of location.
func (d Date) Equal(o Date) bool {
	y1, m1, d1 := d.Date()
	y2, m2, d2 := o.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// In returns the same calendar day at midnight in loc.
func (d Date) In(loc *time.Location) Date {
	y, m, day := d.Date()
	return NewDate(y, m, day, loc)
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &DateError{Value: string(data)}
	}

	parsed, err := ParseDate(s, time.UTC)
	if err != nil {
		return err
	}
	*d = parsed.In(time.UTC)
	return nil
}

// Scan implements sql.Scanner for "date" columns.
func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		y, m, day := v.Date()
		*d = NewDate(y, m, day, time.UTC)
		return nil
	case string:
		parsed, err := ParseDate(v, time.UTC)
		if err != nil {
			return err
		}
		*d = parsed.In(time.UTC)
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}
