// Package timefmt normalizes instants into the timezone-qualified ISO-8601
// strings the warehouse schema expects for every xs:dateTime field.
//
// Why re-home "naive" instants?
//
// Test stations frequently record wall-clock readings with no zone attached;
// the warehouse, however, refuses documents whose timestamps carry no UTC
// offset. A Go time.Time always has a location, so this package treats an
// instant still carrying the process-local default as a naive reading and
// re-homes its wall-clock value into the configured zone. An instant that was
// given an explicit zone by the caller is formatted exactly as it is.
package timefmt

import (
	"fmt"
	"time"
)

// Layout is the full ISO-8601 form written into the document, including the
// UTC offset. Sub-second digits are kept whenever the instant has them.
const Layout = "2006-01-02T15:04:05.999999999Z07:00"

// NaiveLayout is accepted on input for wall-clock readings without a zone.
const NaiveLayout = "2006-01-02T15:04:05"

// UnknownTimeZoneError reports a zone name the timezone provider does not
// recognize. It is fatal at first use; there is no fallback zone.
type UnknownTimeZoneError struct {
	Name string
	Err  error
}

func (e *UnknownTimeZoneError) Error() string {
	return fmt.Sprintf("unknown time zone %q: %v", e.Name, e.Err)
}

func (e *UnknownTimeZoneError) Unwrap() error {
	return e.Err
}

// LoadZone resolves a zone name through the standard timezone provider. The
// empty name selects the process-local zone.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, &UnknownTimeZoneError{Name: name, Err: err}
	}
	return loc, nil
}

// Format renders the instant in the warehouse dateTime form. Instants still
// carrying the process-local location are treated as naive wall-clock
// readings and re-homed into loc before formatting; instants with an explicit
// zone are formatted as-is. A nil loc formats in the instant's own zone.
func Format(t time.Time, loc *time.Location) string {
	if loc != nil && t.Location() == time.Local {
		t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
	}
	return t.Format(Layout)
}

// ParseInput reads a timestamp from a scenario definition. RFC 3339 values
// keep their explicit offset; naive values stay in the process-local zone so
// Format later re-homes them into the configured one.
func ParseInput(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(NaiveLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: expected %q or RFC 3339", s, NaiveLayout)
	}
	return t, nil
}
