package ics

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"unicode/utf8"
)

type WithLineLength int
type WithNewLine string

// SerializationConfiguration controls how logical lines are folded when
// written.  MaxLength corresponds to the 75 octet line length recommendation
// from RFC 5545 section 3.1 and includes the leading space of continuation
// lines.  NewLine selects the line termination sequence.
type SerializationConfiguration struct {
	MaxLength int
	NewLine   string
}

// parseSerializeOps interprets the optional arguments provided to FoldLine or
// FoldLines.  It accepts WithLineLength, WithNewLine or a
// *SerializationConfiguration.  Unsupported types return an error.
func parseSerializeOps(ops []any) (*SerializationConfiguration, error) {
	serializeConfig := defaultSerializationOptions()
	for opi, op := range ops {
		switch op := op.(type) {
		case WithLineLength:
			serializeConfig.MaxLength = int(op)
		case WithNewLine:
			serializeConfig.NewLine = string(op)
		case *SerializationConfiguration:
			if op == nil {
				return nil, fmt.Errorf("op %d is a nil configuration", opi)
			}
			c := *op
			serializeConfig = &c
		case error:
			return nil, op
		default:
			return nil, fmt.Errorf("unknown op %d of type %s", opi, reflect.TypeOf(op))
		}
	}
	if serializeConfig.MaxLength < 2 {
		return nil, fmt.Errorf("line length %d too short to fold", serializeConfig.MaxLength)
	}
	return serializeConfig, nil
}

// defaultSerializationOptions returns the default values used for folding.
// The line length defaults to the 75 octets recommended by RFC 5545
// and the newline is platform specific.
func defaultSerializationOptions() *SerializationConfiguration {
	return &SerializationConfiguration{
		MaxLength: 75,
		NewLine:   string(NewLine),
	}
}

// foldPoint returns the largest byte offset no greater than maxLength that
// falls on a rune boundary of s and is not followed by whitespace.  Text
// after a fold point begins a continuation line, and LineUnfolder drops
// leading whitespace there.  When s offers no such offset the plain rune
// boundary is returned.
func foldPoint(maxLength int, s string) int {
	if len(s) <= maxLength {
		return len(s)
	}
	length := 0
	for _, r := range s {
		newLength := length + utf8.RuneLen(r)
		if newLength > maxLength {
			break
		}
		length = newLength
	}
	for p := length; p > 0; {
		r, _ := utf8.DecodeRuneInString(s[p:])
		if !isFoldSpace(r) {
			return p
		}
		_, size := utf8.DecodeLastRuneInString(s[:p])
		p -= size
	}
	if length == 0 {
		// a single rune wider than the limit still has to be written
		_, size := utf8.DecodeRuneInString(s)
		return size
	}
	return length
}

// FoldLine writes line to w, folding it across physical lines so that none
// exceeds the configured length.
//
// LineUnfolder reads the output back as line, except in three cases: a line
// that starts with whitespace is joined onto the line before it, an empty
// line is skipped, and a whitespace run longer than the line length loses
// the whitespace at the fold.
func FoldLine(w io.Writer, line string, ops ...any) error {
	serializeConfig, err := parseSerializeOps(ops)
	if err != nil {
		return err
	}
	return foldLine(w, line, serializeConfig)
}

// FoldLines writes each of lines folded, as FoldLine does.
func FoldLines(w io.Writer, lines []ContentLine, ops ...any) error {
	serializeConfig, err := parseSerializeOps(ops)
	if err != nil {
		return err
	}
	for _, l := range lines {
		if err := foldLine(w, string(l), serializeConfig); err != nil {
			return err
		}
	}
	return nil
}

// FoldString returns line folded with the given options.
func FoldString(line string, ops ...any) (string, error) {
	b := &strings.Builder{}
	if err := FoldLine(b, line, ops...); err != nil {
		return "", err
	}
	return b.String(), nil
}

func foldLine(w io.Writer, r string, serializeConfig *SerializationConfiguration) error {
	p := foldPoint(serializeConfig.MaxLength, r)
	if _, err := io.WriteString(w, r[:p]+serializeConfig.NewLine); err != nil {
		return err
	}
	r = r[p:]
	for len(r) > 0 {
		p = foldPoint(serializeConfig.MaxLength-1, r)
		if _, err := io.WriteString(w, " "+r[:p]+serializeConfig.NewLine); err != nil {
			return err
		}
		r = r[p:]
	}
	return nil
}
