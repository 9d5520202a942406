package ics

// The WithNewLine constants select the line terminator written by the
// folding functions.  RFC 5545 section 3.1 requires CRLF ("\r\n"), while
// LineUnfolder accepts either form when reading.
const (
	// WithNewLineUnix terminates folded lines with LF.
	WithNewLineUnix WithNewLine = "\n"
	// WithNewLineWindows terminates folded lines with CRLF as RFC 5545
	// section 3.1 requires.
	WithNewLineWindows WithNewLine = "\r\n"
)
