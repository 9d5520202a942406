package ics

import (
	"fmt"
	"strings"
	"time"
)

// Period is the PERIOD value type of RFC 5545 section 3.3.9: a start time
// together with either an explicit end or a Duration.  Which of the two it
// holds is fixed by the constructor used.
type Period struct {
	start    time.Time
	end      time.Time
	duration *Duration
}

// NewPeriodWithEnd returns the period from start to end.
func NewPeriodWithEnd(start, end time.Time) Period {
	return Period{start: start, end: end}
}

// NewPeriodWithDuration returns the period lasting d from start.
func NewPeriodWithDuration(start time.Time, d Duration) Period {
	return Period{start: start, duration: &d}
}

// CopyPeriod returns a period holding the same start and the same end or
// duration as p.
func CopyPeriod(p Period) Period {
	return Period{start: p.start, end: p.end, duration: p.duration}
}

// Start returns the start of the period.
func (p Period) Start() time.Time {
	return p.start
}

// End returns the explicit end and true, or false when the period was made
// with a duration.
func (p Period) End() (time.Time, bool) {
	if p.duration != nil {
		return time.Time{}, false
	}
	return p.end, true
}

// Duration returns the duration and true, or false when the period was made
// with an explicit end.
func (p Period) Duration() (Duration, bool) {
	if p.duration == nil {
		return Duration{}, false
	}
	return *p.duration, true
}

// ResolvedEnd returns the explicit end, or the start moved by the duration.
func (p Period) ResolvedEnd() time.Time {
	if p.duration != nil {
		return p.duration.AddTo(p.start)
	}
	return p.end
}

// Format renders the period as "start/end" or "start/duration" with both
// times written in format f.
func (p Period) Format(f ISOFormat, loc *time.Location) string {
	b := &strings.Builder{}
	b.WriteString(FormatTemporal(p.start, f, loc))
	b.WriteByte('/')
	if p.duration != nil {
		b.WriteString(p.duration.String())
	} else {
		b.WriteString(FormatTemporal(p.end, f, loc))
	}
	return b.String()
}

// String renders the period with UTC basic times, the form RFC 5545 uses in
// FREEBUSY and RDATE values.
func (p Period) String() string {
	return p.Format(ISOFormatUTCTimeBasic, time.UTC)
}

// ParsePeriod parses "start/end" or "start/duration", for example
// "19970101T180000Z/PT5H30M".  The part after the slash is a duration when
// it begins with "P", "+P" or "-P".  Times without a zone designator are
// read in defaultZone.
func ParsePeriod(s string, defaultZone *time.Location) (Period, error) {
	startStr, rest, ok := strings.Cut(s, "/")
	if !ok {
		return Period{}, fmt.Errorf("%w: missing '/' in '%s'", ErrMalformedPeriod, s)
	}
	start, err := ParseTemporal(startStr, defaultZone)
	if err != nil {
		return Period{}, fmt.Errorf("%w: start: %w", ErrMalformedPeriod, err)
	}
	if isDurationText(rest) {
		return NewPeriodWithDuration(start, ParseDuration(rest)), nil
	}
	end, err := ParseTemporal(rest, defaultZone)
	if err != nil {
		return Period{}, fmt.Errorf("%w: end: %w", ErrMalformedPeriod, err)
	}
	return NewPeriodWithEnd(start, end), nil
}

func isDurationText(s string) bool {
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	return strings.HasPrefix(s, "P")
}
