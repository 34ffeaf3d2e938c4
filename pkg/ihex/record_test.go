package ihex

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecord(t *testing.T) {
	rec, err := DecodeRecord([]byte(":03000000010203F7"))
	require.NoError(t, err)
	assert.Equal(t, Data, rec.Type)
	assert.Equal(t, uint16(0), rec.Address)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, rec.Payload)
	assert.Equal(t, byte(0xF7), rec.Checksum())
	assert.Equal(t, []byte(":03000000010203F7\r\n"), rec.Encode())
}

func TestDecodeRecord_LowercaseAndCR(t *testing.T) {
	rec, err := DecodeRecord([]byte(":030000000a0b0cdc\r"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0A, 0x0B, 0x0C}, rec.Payload)
	assert.Equal(t, []byte(":030000000A0B0CDC\r\n"), rec.Encode())
}

func TestDecodeRecord_EndOfFile(t *testing.T) {
	rec, err := DecodeRecord([]byte(":00000001FF"))
	require.NoError(t, err)
	assert.Equal(t, EndOfFile, rec.Type)
	assert.Empty(t, rec.Payload)
	assert.Equal(t, byte(0xFF), rec.Checksum())
}

func TestDecodeRecord_ExtendedLinearAddress(t *testing.T) {
	rec, err := DecodeRecord([]byte(":020000040800F2"))
	require.NoError(t, err)
	assert.Equal(t, ExtendedLinearAddress, rec.Type)
	assert.Equal(t, []byte{0x08, 0x00}, rec.Payload)
}

func TestDecodeRecord_Neg(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   error
		column int
	}{
		{"too short", ":01", ErrInvalidFraming, 0},
		{"no colon", "030000000102030A", ErrInvalidFraming, 0},
		{"bad digit", ":0300000001020ZF7", ErrInvalidDigit, 14},
		{"flipped payload digit", ":03000000110203F7", ErrChecksumMismatch, 15},
		{"declared length too long", ":0500000001020306", ErrLengthMismatch, 1},
		{"dangling nibble", ":03000000010203F71", ErrLengthMismatch, 1},
		{"unknown type", ":00000003FD", ErrUnsupportedRecordType, 7},
		{"end-of-file with payload", ":01000001AA54", ErrInvalidPayload, 9},
		{"extended address wrong size", ":0100000408F3", ErrInvalidPayload, 9},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := DecodeRecord([]byte(test.line))
			require.Error(t, err)
			assert.ErrorIs(t, err, test.want)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, 1, parseErr.Line)
			assert.Equal(t, test.column, parseErr.Column)
		})
	}
}

func TestParseError_Caret(t *testing.T) {
	_, err := DecodeRecord([]byte(":0300000001020ZF7"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse error at 1:14")
	assert.Contains(t, err.Error(), "\n"+strings.Repeat(" ", 14)+"^")
	t.Log(err)
}

func TestRecordChecksum(t *testing.T) {
	rec := Record{Type: Data, Address: 0x0010, Payload: []byte{0x0A, 0x0B, 0x0C}}
	assert.Equal(t, byte(0xCC), rec.Checksum())
	assert.Equal(t, []byte(":030010000A0B0CCC\r\n"), rec.Encode())

	// The checksum derivation must track payload mutations.
	rec.Payload[0] ^= 0xFF
	line := rec.Encode()
	var sum byte
	for i := 1; i < len(line)-2; i += 2 {
		hi, _ := hexNibble(line[i])
		lo, _ := hexNibble(line[i+1])
		sum += hi<<4 | lo
	}
	assert.Equal(t, byte(0), sum)
}
