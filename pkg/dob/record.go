// Package dob defines the persisted birth record and its file store.
//
// The canonical on-disk format is two lines, friendly to manual editing:
//
//	dd/mm/yyyy
//	hh:mm:ss
//
// Two historical time shapes ("h:m:s.mmm" and "h:m:s:mmm") are still accepted
// on read so old files keep working; writes always produce the canonical form.
package dob

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	errUtils "github.com/agetick/agetick/errors"
)

// Time-of-day used when a record carries no time component.
const (
	DefaultHour   = 12
	DefaultMinute = 0
	DefaultSecond = 0
)

var (
	dateRe = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
	timeRe = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})$`)

	// Legacy time shapes with a millisecond component.
	legacyDotRe   = regexp.MustCompile(`^(\d{1,2}):(\d{1,2}):(\d{1,2})\.(\d{1,3})$`)
	legacyColonRe = regexp.MustCompile(`^(\d{1,2}):(\d{1,2}):(\d{1,2}):(\d{1,3})$`)
)

// Record is a single date/time of birth with millisecond resolution.
type Record struct {
	Day    int
	Month  int
	Year   int
	Hour   int
	Minute int
	Second int
	Millis int
}

// FromTime builds a Record from a time.Time, truncating to milliseconds.
func FromTime(t time.Time) Record {
	return Record{
		Day:    t.Day(),
		Month:  int(t.Month()),
		Year:   t.Year(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
		Millis: t.Nanosecond() / int(time.Millisecond),
	}
}

// Time converts the record to an instant in the host's local time.
func (r Record) Time() time.Time {
	return time.Date(r.Year, time.Month(r.Month), r.Day,
		r.Hour, r.Minute, r.Second, r.Millis*int(time.Millisecond), time.Local)
}

// Validate rejects records that do not name an existing calendar date/time.
// A combination like 31 February fails because constructing it normalizes to
// a different date.
func (r Record) Validate() error {
	if r.Month < 1 || r.Month > 12 || r.Day < 1 || r.Day > 31 {
		return errUtils.Wrapf(errUtils.ErrInvalidDate, "%02d/%02d/%04d", r.Day, r.Month, r.Year)
	}
	t := r.Time()
	if t.Day() != r.Day || int(t.Month()) != r.Month || t.Year() != r.Year {
		return errUtils.Wrapf(errUtils.ErrInvalidDate, "%02d/%02d/%04d", r.Day, r.Month, r.Year)
	}
	if r.Hour < 0 || r.Hour > 23 ||
		r.Minute < 0 || r.Minute > 59 ||
		r.Second < 0 || r.Second > 59 ||
		r.Millis < 0 || r.Millis > 999 {
		return errUtils.Wrapf(errUtils.ErrInvalidTime, "%02d:%02d:%02d.%03d", r.Hour, r.Minute, r.Second, r.Millis)
	}
	return nil
}

// DateString returns the date in the canonical dd/mm/yyyy form.
func (r Record) DateString() string {
	return fmt.Sprintf("%02d/%02d/%04d", r.Day, r.Month, r.Year)
}

// TimeString returns the time in the canonical hh:mm:ss form.
func (r Record) TimeString() string {
	return fmt.Sprintf("%02d:%02d:%02d", r.Hour, r.Minute, r.Second)
}

// String serializes the record in the canonical two-line format.
func (r Record) String() string {
	return r.DateString() + "\n" + r.TimeString() + "\n"
}

// Parse deserializes a record from the two-line format.
//
// A missing time line defaults to noon. Malformed content returns an error
// wrapping ErrInvalidDate or ErrInvalidTime; callers treating the file as a
// best-effort default should discard the record on any error.
func Parse(text string) (Record, error) {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	if len(lines) == 0 {
		return Record{}, errUtils.Wrap(errUtils.ErrInvalidDate, "empty record")
	}

	m := dateRe.FindStringSubmatch(lines[0])
	if m == nil {
		return Record{}, errUtils.Wrapf(errUtils.ErrInvalidDate, "%q", lines[0])
	}
	r := Record{
		Day:    atoi(m[1]),
		Month:  atoi(m[2]),
		Year:   atoi(m[3]),
		Hour:   DefaultHour,
		Minute: DefaultMinute,
		Second: DefaultSecond,
	}

	if len(lines) > 1 {
		hour, minute, second, millis, err := parseTimeOfDay(lines[1])
		if err != nil {
			return Record{}, err
		}
		r.Hour, r.Minute, r.Second, r.Millis = hour, minute, second, millis
	}

	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

// ParseDate parses a dd/mm/yyyy string into day, month and year.
func ParseDate(s string) (day, month, year int, err error) {
	m := dateRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, 0, errUtils.Wrapf(errUtils.ErrInvalidDate, "%q", s)
	}
	return atoi(m[1]), atoi(m[2]), atoi(m[3]), nil
}

// ParseTime parses an hh:mm:ss string into hour, minute and second,
// rejecting out-of-range values.
func ParseTime(s string) (hour, minute, second int, err error) {
	m := timeRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, 0, errUtils.Wrapf(errUtils.ErrInvalidTime, "%q", s)
	}
	hour, minute, second = atoi(m[1]), atoi(m[2]), atoi(m[3])
	if hour > 23 || minute > 59 || second > 59 {
		return 0, 0, 0, errUtils.Wrapf(errUtils.ErrInvalidTime, "%q", s)
	}
	return hour, minute, second, nil
}

func parseTimeOfDay(s string) (hour, minute, second, millis int, err error) {
	if m := timeRe.FindStringSubmatch(s); m != nil {
		return atoi(m[1]), atoi(m[2]), atoi(m[3]), 0, nil
	}
	// Backward compatibility with the historical millisecond formats.
	for _, re := range []*regexp.Regexp{legacyDotRe, legacyColonRe} {
		if m := re.FindStringSubmatch(s); m != nil {
			return atoi(m[1]), atoi(m[2]), atoi(m[3]), atoi(m[4]), nil
		}
	}
	return 0, 0, 0, 0, errUtils.Wrapf(errUtils.ErrInvalidTime, "%q", s)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
