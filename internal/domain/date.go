package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DateLayout is the calendar-date format the API uses for task deadlines.
const DateLayout = "2006-01-02"

// localLayout is an ISO 8601 timestamp without an offset, as Python's
// isoformat() writes it. It is read as UTC.
const localLayout = "2006-01-02T15:04:05.999999999"

// timeLayouts are tried in order when reading dates and timestamps.
var timeLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	localLayout,
	"2006-01-02 15:04:05.999999999",
	http.TimeFormat,
	time.RFC1123Z,
}

// parseTime accepts every layout in timeLayouts. Layouts without an
// offset are read as UTC.
func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse time %q: want %s, RFC 3339 or an HTTP date", s, DateLayout)
}

// unquoteTime decodes a JSON string holding a time. null and "" give the
// zero time.
func unquoteTime(data []byte) (time.Time, error) {
	if bytes.Equal(data, []byte("null")) {
		return time.Time{}, nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return time.Time{}, err
	}
	if s == "" {
		return time.Time{}, nil
	}
	return parseTime(s)
}

// Date is a deadline as sent by the API: a bare calendar date
// ("2025-01-01", read as midnight UTC) or a full timestamp.
// It always marshals back as a calendar date.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given calendar day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a calendar date or any timestamp layout the API uses.
func ParseDate(s string) (Date, error) {
	t, err := parseTime(s)
	if err != nil {
		return Date{}, fmt.Errorf("date: %w", err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	t, err := unquoteTime(data)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}
	*d = Date{t}
	return nil
}

// Timestamp is a server-assigned instant (creation time, check-in time).
// It reads the same layouts as Date and marshals as RFC 3339.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t}
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ts.Format(time.RFC3339Nano))
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	t, err := unquoteTime(data)
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	*ts = Timestamp{t}
	return nil
}

// Ptr returns a pointer to v. Handy when filling drafts.
func Ptr[T any](v T) *T {
	return &v
}
