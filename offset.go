package ics

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// UTCOffset is the distance of a local time from UTC as used by the
// UTC-OFFSET value type (RFC 5545 section 3.3.14) and by ISO-8601 date-time
// suffixes.  Hours and Minutes are magnitudes; Negative is the single sign
// applying to both.
//
// Parsing does not range check: "+0075" yields Minutes 75.
type UTCOffset struct {
	Hours    int
	Minutes  int
	Negative bool
}

// UTCOffsetOf returns the offset loc has from UTC at the instant t.  A nil
// loc means time.Local.
func UTCOffsetOf(t time.Time, loc *time.Location) UTCOffset {
	if loc == nil {
		loc = time.Local
	}
	_, seconds := t.In(loc).Zone()
	return UTCOffsetFromSeconds(seconds)
}

// UTCOffsetFromSeconds converts a signed number of seconds east of UTC.  Any
// seconds beyond whole minutes are dropped.
func UTCOffsetFromSeconds(seconds int) UTCOffset {
	o := UTCOffset{Negative: seconds < 0}
	if o.Negative {
		seconds = -seconds
	}
	o.Hours = seconds / 3600
	o.Minutes = seconds % 3600 / 60
	return o
}

// ParseUTCOffset parses an offset such as "+05:30", "-0530", "530" or "-5".
//
// An optional leading sign is followed either by hour and minute parts
// separated by a colon, or by up to four digits: one or two digits are
// hours, three digits are one hour digit and two minute digits, four digits
// are two of each.  Only a leading '-' makes the offset negative.
func ParseUTCOffset(s string) (UTCOffset, error) {
	o := UTCOffset{}
	v := s
	if len(v) > 0 {
		switch v[0] {
		case '-':
			o.Negative = true
			v = v[1:]
		case '+':
			v = v[1:]
		}
	}

	var hourPart, minutePart string
	if h, m, ok := strings.Cut(v, ":"); ok {
		hourPart, minutePart = h, m
	} else {
		switch len(v) {
		case 0, 1, 2:
			hourPart = v
		case 3:
			hourPart, minutePart = v[:1], v[1:]
		case 4:
			hourPart, minutePart = v[:2], v[2:]
		default:
			return UTCOffset{}, fmt.Errorf("%w: too many digits in '%s'", ErrMalformedOffset, s)
		}
	}

	var err error
	if o.Hours, err = parseDigits(hourPart); err != nil {
		return UTCOffset{}, fmt.Errorf("%w: hour of '%s': %v", ErrMalformedOffset, s, err)
	}
	if minutePart != "" || strings.Contains(v, ":") {
		if o.Minutes, err = parseDigits(minutePart); err != nil {
			return UTCOffset{}, fmt.Errorf("%w: minute of '%s': %v", ErrMalformedOffset, s, err)
		}
	}
	return o, nil
}

// parseDigits parses a run of ASCII digits.  Unlike strconv.Atoi it refuses
// signs, so "+05:-30" cannot sneak a second sign in.
func parseDigits(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("no digits")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("unexpected char %q", s[i])
		}
	}
	return strconv.Atoi(s)
}

// IsZero reports whether the offset has no magnitude, whatever its sign.
func (o UTCOffset) IsZero() bool {
	return o.Hours == 0 && o.Minutes == 0
}

// Seconds returns the signed offset in seconds east of UTC.
func (o UTCOffset) Seconds() int {
	s := o.Hours*3600 + o.Minutes*60
	if o.Negative {
		return -s
	}
	return s
}

// Location returns a fixed zone with this offset, named by its basic form.
func (o UTCOffset) Location() *time.Location {
	return time.FixedZone(o.Format(false), o.Seconds())
}

// Format renders the offset as "+HHMM", or "+HH:MM" when extended is set.
// A zero offset is always written with '+'.
func (o UTCOffset) Format(extended bool) string {
	b := &strings.Builder{}
	if o.Negative && !o.IsZero() {
		b.WriteByte('-')
	} else {
		b.WriteByte('+')
	}
	fmt.Fprintf(b, "%02d", o.Hours)
	if extended {
		b.WriteByte(':')
	}
	fmt.Fprintf(b, "%02d", o.Minutes)
	return b.String()
}

// String returns the basic form of the offset.
func (o UTCOffset) String() string {
	return o.Format(false)
}
