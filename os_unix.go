//go:build !windows

package ics

// NewLine is the terminator FoldLine writes when no WithNewLine option is
// given.  Outside Windows it is WithNewLineUnix.
const (
	NewLine = WithNewLineUnix
)
