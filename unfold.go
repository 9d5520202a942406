package ics

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ContentLine is a single logical line with any folding removed.
type ContentLine string

// LineUnfolder reads logical lines from a folded iCalendar stream.  RFC 5545
// section 3.1 folds long lines by inserting a line break followed by
// whitespace; LineUnfolder undoes that so callers only ever see whole
// content lines.
//
// Folding is detected leniently: any non-empty physical line starting with
// whitespace continues the previous line, and all of its leading whitespace
// is dropped before it is appended.  Non-breaking spaces do not count as
// whitespace here.  Empty physical lines are skipped, and a lone carriage
// return ends a physical line as "\n" and "\r\n" do.
//
// A LineUnfolder holds one line of lookahead and must not be shared between
// goroutines.
type LineUnfolder struct {
	b       *bufio.Reader
	pending *string
	err     error
}

// NewLineUnfolder wraps r so the caller can read unfolded content lines.
func NewLineUnfolder(r io.Reader) *LineUnfolder {
	return &LineUnfolder{
		b: bufio.NewReader(r),
	}
}

// ReadLine returns the next non-empty logical line.  It returns io.EOF once
// the underlying reader is exhausted and no buffered line remains.  Any
// other read failure is wrapped with ErrStream and returned on every
// subsequent call.
func (u *LineUnfolder) ReadLine() (ContentLine, error) {
	var first string
	if u.pending != nil {
		first = *u.pending
		u.pending = nil
	} else {
		l, err := u.readNonEmptyLine()
		if err != nil {
			return "", err
		}
		first = l
	}

	b := &strings.Builder{}
	b.WriteString(first)
	for {
		l, err := u.readNonEmptyLine()
		switch err {
		case nil:
		case io.EOF:
			return ContentLine(b.String()), nil
		default:
			return "", err
		}
		r, _ := utf8.DecodeRuneInString(l)
		if !isFoldSpace(r) {
			u.pending = &l
			return ContentLine(b.String()), nil
		}
		b.WriteString(strings.TrimLeftFunc(l, isFoldSpace))
	}
}

// readNonEmptyLine returns the next physical line that has at least one
// character once its terminator is removed.
func (u *LineUnfolder) readNonEmptyLine() (string, error) {
	for {
		l, err := u.readPhysicalLine()
		if err != nil {
			return "", err
		}
		if len(l) > 0 {
			return l, nil
		}
	}
}

// readPhysicalLine reads the next physical line and strips its terminator,
// which is "\n", "\r\n" or a lone "\r".  A final line without a terminator
// is returned before the read error that ended it.
func (u *LineUnfolder) readPhysicalLine() (string, error) {
	if u.err != nil {
		return "", u.err
	}
	b := &strings.Builder{}
	for {
		c, err := u.b.ReadByte()
		if err != nil {
			if err != io.EOF {
				err = fmt.Errorf("%w: %w", ErrStream, err)
			}
			u.err = err
			if b.Len() == 0 {
				return "", err
			}
			return b.String(), nil
		}
		switch c {
		case '\n':
			return b.String(), nil
		case '\r':
			if next, err := u.b.Peek(1); err == nil && next[0] == '\n' {
				_, _ = u.b.ReadByte()
			}
			return b.String(), nil
		}
		b.WriteByte(c)
	}
}

// isFoldSpace reports whether r may introduce a continuation line.  It
// matches space separators other than the non-breaking ones, plus the ASCII
// control whitespace and the U+001C..U+001F separators.
func isFoldSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\x1c', '\x1d', '\x1e', '\x1f':
		return true
	case '\u00a0', '\u2007', '\u202f':
		return false
	}
	return unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp)
}

// UnfoldLines reads every logical line from r.
func UnfoldLines(r io.Reader) ([]ContentLine, error) {
	u := NewLineUnfolder(r)
	lines := []ContentLine{}
	for {
		l, err := u.ReadLine()
		switch err {
		case nil:
			lines = append(lines, l)
		case io.EOF:
			return lines, nil
		default:
			return lines, err
		}
	}
}
