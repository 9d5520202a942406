package ics

// NewLine is the terminator FoldLine writes when no WithNewLine option is
// given.  On Windows it is WithNewLineWindows.
const (
	NewLine = WithNewLineWindows
)
