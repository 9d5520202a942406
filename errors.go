package ics

import (
	"errors"
)

var (
	// ErrMalformedOffset is returned when a UTC offset such as "+0530" or
	// "-05:30" contains non-digit content or has an unsupported shape.
	ErrMalformedOffset = errors.New("malformed utc offset")
	// ErrMalformedTemporalValue is returned when a DATE or DATE-TIME value
	// does not match any recognised basic or extended shape.
	ErrMalformedTemporalValue = errors.New("malformed date-time value")
	// ErrMalformedPeriod is returned when a PERIOD value is not of the form
	// start "/" end or start "/" duration.
	ErrMalformedPeriod = errors.New("malformed period value")
	// ErrStream wraps read failures of the reader underneath a LineUnfolder.
	ErrStream = errors.New("reading folded stream")
)
