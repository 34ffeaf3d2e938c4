package ihex

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidFraming        = errors.New("not starting with ':' or too short")
	ErrInvalidDigit          = errors.New("not a hexadecimal character")
	ErrLengthMismatch        = errors.New("mismatched length")
	ErrChecksumMismatch      = errors.New("checksum error")
	ErrInvalidPayload        = errors.New("invalid payload for record type")
	ErrUnsupportedRecordType = errors.New("unhandled record type")
	ErrUnexpectedEOF         = errors.New("input ended before end-of-file record")
)

// ParseError reports a failure to decode one line of an Intel HEX stream.
// Line is 1-based, Column is the 0-based offset of the offending character.
// It unwraps to one of the Err* sentinel values above.
type ParseError struct {
	Line   int
	Column int
	Text   string
	Err    error
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "parse error at %d:%d: %v", e.Line, e.Column, e.Err)
	if len(e.Text) > 0 {
		sb.WriteByte('\n')
		sb.WriteString(e.Text)
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(" ", e.Column))
		sb.WriteByte('^')
	}
	return sb.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErr(line, column int, text []byte, err error) *ParseError {
	return &ParseError{Line: line, Column: column, Text: string(text), Err: err}
}
