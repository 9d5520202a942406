package ics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISOFormat selects one of the ISO-8601 shapes used for DATE and DATE-TIME
// values by iCalendar (RFC 5545 section 3.3.4 and 3.3.5) and by hCard.
type ISOFormat string

const (
	// ISOFormatDateBasic is "YYYYMMDD".
	ISOFormatDateBasic ISOFormat = "DATE_BASIC"
	// ISOFormatDateExtended is "YYYY-MM-DD".
	ISOFormatDateExtended ISOFormat = "DATE_EXTENDED"
	// ISOFormatTimeBasic is "YYYYMMDDTHHMMSS+HHMM" in the given zone.
	ISOFormatTimeBasic ISOFormat = "TIME_BASIC"
	// ISOFormatTimeExtended is "YYYY-MM-DDTHH:MM:SS+HH:MM" in the given zone.
	ISOFormatTimeExtended ISOFormat = "TIME_EXTENDED"
	// ISOFormatHCardTimeTag is "YYYY-MM-DDTHH:MM:SS+HHMM", the form hCard
	// uses inside <time> tags.
	ISOFormatHCardTimeTag ISOFormat = "HCARD_TIME_TAG"
	// ISOFormatUTCTimeBasic is "YYYYMMDDTHHMMSSZ", the FORM #2 date-time of
	// RFC 5545 section 3.3.5.
	ISOFormatUTCTimeBasic ISOFormat = "UTC_TIME_BASIC"
	// ISOFormatUTCTimeExtended is "YYYY-MM-DDTHH:MM:SSZ".
	ISOFormatUTCTimeExtended ISOFormat = "UTC_TIME_EXTENDED"
)

// ISOFormats lists every supported format in a stable order.
var ISOFormats = []ISOFormat{
	ISOFormatDateBasic,
	ISOFormatDateExtended,
	ISOFormatTimeBasic,
	ISOFormatTimeExtended,
	ISOFormatHCardTimeTag,
	ISOFormatUTCTimeBasic,
	ISOFormatUTCTimeExtended,
}

const (
	icalDateFormatBasic         = "20060102"
	icalDateFormatExtended      = "2006-01-02"
	icalTimestampFormatBasic    = "20060102T150405"
	icalTimestampFormatExtended = "2006-01-02T15:04:05"
)

type offsetStyle int

const (
	offsetNone offsetStyle = iota
	offsetBasic
	offsetExtended
	offsetUTC
)

type isoLayout struct {
	layout string
	offset offsetStyle
}

var isoLayouts = map[ISOFormat]isoLayout{
	ISOFormatDateBasic:       {icalDateFormatBasic, offsetNone},
	ISOFormatDateExtended:    {icalDateFormatExtended, offsetNone},
	ISOFormatTimeBasic:       {icalTimestampFormatBasic, offsetBasic},
	ISOFormatTimeExtended:    {icalTimestampFormatExtended, offsetExtended},
	ISOFormatHCardTimeTag:    {icalTimestampFormatExtended, offsetBasic},
	ISOFormatUTCTimeBasic:    {icalTimestampFormatBasic, offsetUTC},
	ISOFormatUTCTimeExtended: {icalTimestampFormatExtended, offsetUTC},
}

// Valid reports whether f is one of the supported formats.
func (f ISOFormat) Valid() bool {
	_, ok := isoLayouts[f]
	return ok
}

// ParseISOFormat looks up a format by name, ignoring case and accepting '-'
// in place of '_'.
func ParseISOFormat(s string) (ISOFormat, error) {
	f := ISOFormat(strings.ToUpper(strings.ReplaceAll(s, "-", "_")))
	if !f.Valid() {
		return "", fmt.Errorf("unknown iso format '%s'", s)
	}
	return f, nil
}

// FormatTemporal renders t in format f.  Fields are taken from t as seen in
// loc, and the offset written is loc's offset at t.  The UTC formats convert
// t to UTC first and ignore loc.  A nil loc means time.Local.  An invalid
// format yields the empty string.
func FormatTemporal(t time.Time, f ISOFormat, loc *time.Location) string {
	l, ok := isoLayouts[f]
	if !ok {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	switch l.offset {
	case offsetUTC:
		return t.UTC().Format(l.layout) + "Z"
	case offsetBasic:
		return t.In(loc).Format(l.layout) + UTCOffsetOf(t, loc).Format(false)
	case offsetExtended:
		return t.In(loc).Format(l.layout) + UTCOffsetOf(t, loc).Format(true)
	default:
		return t.In(loc).Format(l.layout)
	}
}

// TemporalZone records which time zone designator a parsed value carried.
type TemporalZone int

const (
	// TemporalZoneFloating means no designator; the default zone applied.
	TemporalZoneFloating TemporalZone = iota
	// TemporalZoneUTC means a trailing "Z".
	TemporalZoneUTC
	// TemporalZoneOffset means an explicit "+HHMM" or "+HH:MM" suffix.
	TemporalZoneOffset
)

func (z TemporalZone) String() string {
	switch z {
	case TemporalZoneFloating:
		return "floating"
	case TemporalZoneUTC:
		return "utc"
	case TemporalZoneOffset:
		return "offset"
	default:
		return "unknown"
	}
}

// TemporalValue is a parsed DATE or DATE-TIME value.
type TemporalValue struct {
	// Time is the instant the value denotes, normalised to UTC.
	Time time.Time
	// HasTime is false for date-only values, which denote midnight.
	HasTime bool
	Zone    TemporalZone
	// Offset is the explicit offset when Zone is TemporalZoneOffset.
	Offset UTCOffset
}

var temporalVariations = regexp.MustCompile(`^([0-9]{4})-?([0-9]{2})-?([0-9]{2})(?:T([0-9]{2}):?([0-9]{2}):?([0-9]{2})(?:[.,]([0-9]{1,9}))?)?(.*)$`)

// ParseTemporal parses a date or date-time in basic or extended form and
// returns the instant it denotes in UTC.  Values without a "Z" or offset
// designator are read in defaultZone; a nil defaultZone means time.Local.
//
// Accepted shapes include "20120701", "2012-07-01", "20120701T080130Z",
// "2012-07-01T11:01:30+03:00" and "20120701T110130+0300".
func ParseTemporal(s string, defaultZone *time.Location) (time.Time, error) {
	v, err := ParseTemporalValue(s, defaultZone)
	if err != nil {
		return time.Time{}, err
	}
	return v.Time, nil
}

// ParseTemporalValue parses s as ParseTemporal does and also reports the
// shape it was written in.
func ParseTemporalValue(s string, defaultZone *time.Location) (TemporalValue, error) {
	matched := temporalVariations.FindStringSubmatch(s)
	if matched == nil {
		return TemporalValue{}, fmt.Errorf("%w: got '%s'", ErrMalformedTemporalValue, s)
	}
	if defaultZone == nil {
		defaultZone = time.Local
	}

	fields := [6]int{}
	for i := range fields {
		if matched[i+1] == "" {
			continue
		}
		// the pattern only admits digits, so this cannot fail
		fields[i], _ = strconv.Atoi(matched[i+1])
	}
	year, month, day, hour, minute, second := fields[0], fields[1], fields[2], fields[3], fields[4], fields[5]
	v := TemporalValue{HasTime: matched[4] != ""}

	nanos := 0
	if frac := matched[7]; frac != "" {
		nanos, _ = strconv.Atoi(frac + strings.Repeat("0", 9-len(frac)))
	}

	if month < 1 || month > 12 || day < 1 || day > daysIn(time.Month(month), year) {
		return TemporalValue{}, fmt.Errorf("%w: date out of range in '%s'", ErrMalformedTemporalValue, s)
	}
	if hour > 23 || minute > 59 || second > 60 {
		return TemporalValue{}, fmt.Errorf("%w: time out of range in '%s'", ErrMalformedTemporalValue, s)
	}

	loc := defaultZone
	switch zone := matched[8]; {
	case zone == "":
		v.Zone = TemporalZoneFloating
	case zone == "Z":
		v.Zone = TemporalZoneUTC
		loc = time.UTC
	case v.HasTime && (zone[0] == '+' || zone[0] == '-'):
		o, err := ParseUTCOffset(zone)
		if err != nil {
			return TemporalValue{}, fmt.Errorf("%w: %w", ErrMalformedTemporalValue, err)
		}
		v.Zone = TemporalZoneOffset
		v.Offset = o
		loc = o.Location()
	default:
		return TemporalValue{}, fmt.Errorf("%w: unexpected '%s' in '%s'", ErrMalformedTemporalValue, zone, s)
	}

	v.Time = time.Date(year, time.Month(month), day, hour, minute, second, nanos, loc).UTC()
	return v, nil
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
