package ics

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DurationComponent identifies one field of a Duration by the designator
// letter that follows it in the text form.
type DurationComponent byte

const (
	DurationWeeks   DurationComponent = 'W'
	DurationDays    DurationComponent = 'D'
	DurationHours   DurationComponent = 'H'
	DurationMinutes DurationComponent = 'M'
	DurationSeconds DurationComponent = 'S'
)

// DurationComponents lists the components in the order they are written.
var DurationComponents = []DurationComponent{
	DurationWeeks,
	DurationDays,
	DurationHours,
	DurationMinutes,
	DurationSeconds,
}

const maxDuration = time.Duration(math.MaxInt64)

var durationComponentPatterns = map[DurationComponent]*regexp.Regexp{}

func init() {
	for _, c := range DurationComponents {
		durationComponentPatterns[c] = regexp.MustCompile(`([0-9]+)` + string(rune(c)))
	}
}

func (c DurationComponent) index() int {
	switch c {
	case DurationWeeks:
		return 0
	case DurationDays:
		return 1
	case DurationHours:
		return 2
	case DurationMinutes:
		return 3
	case DurationSeconds:
		return 4
	}
	return -1
}

func (c DurationComponent) String() string {
	return string(rune(c))
}

type optionalInt struct {
	value int
	ok    bool
}

// Duration is the DURATION value type of RFC 5545 section 3.3.6, for
// example "P15DT5H0M20S" or "-PT15M".
//
// Each of weeks, days, hours, minutes and seconds is either present or
// absent; "PT0S" and "P" are different values.  Prior marks a negative
// duration, one that points back from its reference time.
//
// A Duration is immutable.  Use a DurationBuilder to make or derive one.
type Duration struct {
	fields [5]optionalInt
	prior  bool
}

// ParseDuration reads a duration leniently.  The value is prior when it
// starts with '-', and each component is the first run of digits directly
// followed by that component's letter anywhere in s.  No "P" or "T" is
// required and the order of components is not checked, so "P1S1H" parses
// as one hour and one second.
//
// ParseDuration never fails.  Text without any digit and letter pairs gives
// a Duration with every component absent, and a component too large for an
// int is left absent.
func ParseDuration(s string) Duration {
	b := NewDurationBuilder().Prior(strings.HasPrefix(s, "-"))
	for _, c := range DurationComponents {
		m := durationComponentPatterns[c].FindStringSubmatch(s)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		b.Set(c, n)
	}
	return b.Build()
}

// Get returns a component and whether it is present.
func (d Duration) Get(c DurationComponent) (int, bool) {
	i := c.index()
	if i < 0 {
		return 0, false
	}
	return d.fields[i].value, d.fields[i].ok
}

// Weeks returns the number of weeks and whether it is set.
func (d Duration) Weeks() (int, bool) { return d.Get(DurationWeeks) }

// Days returns the number of days and whether it is set.
func (d Duration) Days() (int, bool) { return d.Get(DurationDays) }

// Hours returns the number of hours and whether it is set.
func (d Duration) Hours() (int, bool) { return d.Get(DurationHours) }

// Minutes returns the number of minutes and whether it is set.
func (d Duration) Minutes() (int, bool) { return d.Get(DurationMinutes) }

// Seconds returns the number of seconds and whether it is set.
func (d Duration) Seconds() (int, bool) { return d.Get(DurationSeconds) }

// Prior reports whether the duration is negative.
func (d Duration) Prior() bool {
	return d.prior
}

// HasTime reports whether any of hours, minutes or seconds is present.
func (d Duration) HasTime() bool {
	for _, c := range []DurationComponent{DurationHours, DurationMinutes, DurationSeconds} {
		if _, ok := d.Get(c); ok {
			return true
		}
	}
	return false
}

// String writes the duration in canonical order, for example "P4DT1H".  The
// "T" designator appears only when a time component is present.
func (d Duration) String() string {
	b := &strings.Builder{}
	if d.prior {
		b.WriteByte('-')
	}
	b.WriteByte('P')
	for _, c := range DurationComponents {
		if c == DurationHours && d.HasTime() {
			b.WriteByte('T')
		}
		if n, ok := d.Get(c); ok {
			b.WriteString(strconv.Itoa(n))
			b.WriteByte(byte(c))
		}
	}
	return b.String()
}

// Builder returns a DurationBuilder initialised with a copy of d.
func (d Duration) Builder() *DurationBuilder {
	return &DurationBuilder{d: d}
}

// TimeDuration converts d to an exact time.Duration counting a week as 168
// hours and a day as 24 hours.  Absent components count as zero.  A value
// beyond the range of time.Duration saturates at its largest magnitude.
func (d Duration) TimeDuration() time.Duration {
	units := [5]time.Duration{7 * 24 * time.Hour, 24 * time.Hour, time.Hour, time.Minute, time.Second}
	var r time.Duration
	for i, f := range d.fields {
		if !f.ok {
			continue
		}
		n := time.Duration(f.value)
		if n > (maxDuration-r)/units[i] {
			r = maxDuration
			break
		}
		r += n * units[i]
	}
	if d.prior {
		return -r
	}
	return r
}

// AddTo returns t moved by d.  Weeks and days are nominal: they move the
// calendar date in t's location, so a day across a daylight saving change
// is not 24 hours.  Hours, minutes and seconds are exact.
func (d Duration) AddTo(t time.Time) time.Time {
	sign := 1
	if d.prior {
		sign = -1
	}
	days := 0
	if w, ok := d.Weeks(); ok {
		days += 7 * w
	}
	if n, ok := d.Days(); ok {
		days += n
	}
	exact := d.Builder().Clear(DurationWeeks).Clear(DurationDays).Prior(false).Build().TimeDuration()
	return t.AddDate(0, 0, sign*days).Add(time.Duration(sign) * exact)
}

// DurationFromTime converts an exact time.Duration into days, hours,
// minutes and seconds, omitting zero components.  Sub-second precision is
// dropped.  A zero duration becomes "PT0S".
func DurationFromTime(td time.Duration) Duration {
	b := NewDurationBuilder().Prior(td < 0)
	if td < 0 {
		td = -td
	}
	total := int64(td / time.Second)
	if total == 0 {
		return b.Seconds(0).Build()
	}
	parts := []struct {
		c    DurationComponent
		size int64
	}{
		{DurationDays, 86400},
		{DurationHours, 3600},
		{DurationMinutes, 60},
		{DurationSeconds, 1},
	}
	for _, p := range parts {
		if n := total / p.size; n > 0 {
			b.Set(p.c, int(n))
		}
		total %= p.size
	}
	return b.Build()
}

// DurationBuilder assembles a Duration.  The zero value builds "P".
type DurationBuilder struct {
	d Duration
}

// NewDurationBuilder returns a builder with every component absent.
func NewDurationBuilder() *DurationBuilder {
	return &DurationBuilder{}
}

// Set makes c present with value n.  Unknown components are ignored.
func (b *DurationBuilder) Set(c DurationComponent, n int) *DurationBuilder {
	if i := c.index(); i >= 0 {
		b.d.fields[i] = optionalInt{value: n, ok: true}
	}
	return b
}

// Clear makes c absent.
func (b *DurationBuilder) Clear(c DurationComponent) *DurationBuilder {
	if i := c.index(); i >= 0 {
		b.d.fields[i] = optionalInt{}
	}
	return b
}

func (b *DurationBuilder) Weeks(n int) *DurationBuilder   { return b.Set(DurationWeeks, n) }
func (b *DurationBuilder) Days(n int) *DurationBuilder    { return b.Set(DurationDays, n) }
func (b *DurationBuilder) Hours(n int) *DurationBuilder   { return b.Set(DurationHours, n) }
func (b *DurationBuilder) Minutes(n int) *DurationBuilder { return b.Set(DurationMinutes, n) }
func (b *DurationBuilder) Seconds(n int) *DurationBuilder { return b.Set(DurationSeconds, n) }

// Prior sets whether the duration is negative.
func (b *DurationBuilder) Prior(prior bool) *DurationBuilder {
	b.d.prior = prior
	return b
}

// Build returns the Duration.  The builder may keep being used afterwards
// without affecting values already built.
func (b *DurationBuilder) Build() Duration {
	return b.d
}
