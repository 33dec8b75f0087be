package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the only textual form dates take at the service boundary.
const DateLayout = "2006-01-02"

var ErrInvalidDateRange = errors.New("invalid date range")

// DateOnly drops the time-of-day component and pins the result to UTC so that
// day arithmetic never crosses a DST or zone boundary.
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func AddDays(t time.Time, days int) time.Time {
	return DateOnly(t).AddDate(0, 0, days)
}

func SameDay(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

func ParseDate(raw string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: malformed date %q", ErrInvalidDateRange, raw)
	}
	return parsed, nil
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// FormatEnd formats an optional end date; nil is written as "open".
func FormatEnd(end *time.Time) string {
	if end == nil {
		return "open"
	}
	return FormatDate(*end)
}

// DateRange is a closed interval of calendar days. A nil end means the range
// is open-ended. Values are immutable; derive new ranges with Intersect or WithEnd.
type DateRange struct {
	start time.Time
	end   *time.Time
}

func NewDateRange(start time.Time, end *time.Time) (DateRange, error) {
	if start.IsZero() {
		return DateRange{}, fmt.Errorf("%w: start date is required", ErrInvalidDateRange)
	}
	r := DateRange{start: DateOnly(start)}
	if end != nil {
		e := DateOnly(*end)
		if e.Before(r.start) {
			return DateRange{}, fmt.Errorf("%w: start %s is after end %s", ErrInvalidDateRange, FormatDate(r.start), FormatDate(e))
		}
		r.end = &e
	}
	return r, nil
}

// ParseDateRange builds a range from ISO dates; an empty end means open-ended.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, err
	}
	if strings.TrimSpace(end) == "" {
		return NewDateRange(s, nil)
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(s, &e)
}

func (r DateRange) Start() time.Time { return r.start }

// End returns a copy of the end date, or nil when the range is open-ended.
func (r DateRange) End() *time.Time {
	if r.end == nil {
		return nil
	}
	e := *r.end
	return &e
}

func (r DateRange) IsOpenEnded() bool { return r.end == nil }

func (r DateRange) IsZero() bool { return r.start.IsZero() }

func (r DateRange) Contains(day time.Time) bool {
	day = DateOnly(day)
	if day.Before(r.start) {
		return false
	}
	return r.end == nil || !day.After(*r.end)
}

// ContainsRange reports whether other lies entirely inside r.
func (r DateRange) ContainsRange(other DateRange) bool {
	if other.start.Before(r.start) {
		return false
	}
	return compareEnds(other.end, r.end) <= 0
}

// Intersect returns the overlap of both ranges; ok is false when they are disjoint.
func (r DateRange) Intersect(other DateRange) (DateRange, bool) {
	start := r.start
	if other.start.After(start) {
		start = other.start
	}
	end := r.end
	if compareEnds(other.end, end) < 0 {
		end = other.end
	}
	if end != nil && end.Before(start) {
		return DateRange{}, false
	}
	return DateRange{start: start, end: end}, true
}

func (r DateRange) WithEnd(end *time.Time) (DateRange, error) {
	return NewDateRange(r.start, end)
}

func (r DateRange) Equal(other DateRange) bool {
	return r.start.Equal(other.start) && compareEnds(r.end, other.end) == 0
}

func (r DateRange) String() string {
	if r.end == nil {
		return FormatDate(r.start) + ".."
	}
	return FormatDate(r.start) + ".." + FormatDate(*r.end)
}

type dateRangeJSON struct {
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

// MarshalJSON writes the zero range as null so unfinished drafts round-trip.
func (r DateRange) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}
	out := dateRangeJSON{StartDate: FormatDate(r.start)}
	if r.end != nil {
		e := FormatDate(*r.end)
		out.EndDate = &e
	}
	return json.Marshal(out)
}

func (r *DateRange) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		*r = DateRange{}
		return nil
	}
	var in dateRangeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if strings.TrimSpace(in.StartDate) == "" && (in.EndDate == nil || strings.TrimSpace(*in.EndDate) == "") {
		*r = DateRange{}
		return nil
	}
	end := ""
	if in.EndDate != nil {
		end = *in.EndDate
	}
	parsed, err := ParseDateRange(in.StartDate, end)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// compareEnds orders end dates treating nil as unbounded.
func compareEnds(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case a.Before(*b):
		return -1
	case a.After(*b):
		return 1
	default:
		return 0
	}
}
