package ihex

import "bytes"

// RecordType identifies the kind of one Intel HEX record.
// Only the three types below are supported; any other value is rejected at
// decode time.
type RecordType uint8

const (
	Data                  RecordType = 0x00
	EndOfFile             RecordType = 0x01
	ExtendedLinearAddress RecordType = 0x04
)

// Record is one decoded Intel HEX line. Address is the 16-bit value as stored
// on the line, not combined with any extended base. The checksum is not a
// field: it is validated on decode and derived fresh on every encode, so a
// stale checksum can never survive a payload mutation.
type Record struct {
	Type    RecordType
	Address uint16
	Payload []byte
}

// Checksum derives the two's-complement checksum of the record's fields: the
// byte that makes length + addressHi + addressLo + type + payload bytes sum
// to zero mod 256.
func (r Record) Checksum() byte {
	sum := byte(len(r.Payload)) + byte(r.Address>>8) + byte(r.Address) + byte(r.Type)
	for _, b := range r.Payload {
		sum += b
	}
	return -sum
}

const hexDigits = "0123456789ABCDEF"

func appendHexByte(dst []byte, b byte) []byte {
	return append(dst, hexDigits[b>>4], hexDigits[b&0xf])
}

// Encode formats the record as one Intel HEX line, ':' followed by uppercase
// hex fields and a CRLF terminator. The checksum is recomputed from the
// current field values.
func (r Record) Encode() []byte {
	line := make([]byte, 0, 13+2*len(r.Payload))
	line = append(line, ':')
	line = appendHexByte(line, byte(len(r.Payload)))
	line = appendHexByte(line, byte(r.Address>>8))
	line = appendHexByte(line, byte(r.Address))
	line = appendHexByte(line, byte(r.Type))
	for _, b := range r.Payload {
		line = appendHexByte(line, b)
	}
	line = appendHexByte(line, r.Checksum())
	return append(line, '\r', '\n')
}

// DecodeRecord decodes a single Intel HEX line into a Record.
// One trailing carriage return is tolerated. Failures are reported as a
// *ParseError carrying the failing column; the line number is always 1, since
// only Parse knows a record's position in a stream.
func DecodeRecord(line []byte) (Record, error) {
	return decodeRecord(1, line)
}

func decodeRecord(lineNum int, line []byte) (Record, error) {
	text := bytes.TrimSuffix(line, []byte{'\r'})
	if len(text) < 11 || text[0] != ':' {
		return Record{}, parseErr(lineNum, 0, text, ErrInvalidFraming)
	}

	buf := make([]byte, 0, (len(text)-1)/2)
	var hi byte
	for i := 1; i < len(text); i++ {
		nibble, ok := hexNibble(text[i])
		if !ok {
			return Record{}, parseErr(lineNum, i, text, ErrInvalidDigit)
		}
		if i&1 == 1 {
			hi = nibble
		} else {
			buf = append(buf, hi<<4|nibble)
		}
	}

	length := buf[0]
	if len(text)&1 == 0 || int(length)+5 != len(buf) {
		return Record{}, parseErr(lineNum, 1, text, ErrLengthMismatch)
	}

	var sum byte
	for _, b := range buf {
		sum += b
	}
	if sum != 0 {
		return Record{}, parseErr(lineNum, len(text)-2, text, ErrChecksumMismatch)
	}

	rec := Record{
		Type:    RecordType(buf[3]),
		Address: uint16(buf[1])<<8 | uint16(buf[2]),
		Payload: buf[4 : 4+int(length)],
	}
	switch rec.Type {
	case Data:
	case EndOfFile:
		if length != 0 {
			return Record{}, parseErr(lineNum, 9, text, ErrInvalidPayload)
		}
	case ExtendedLinearAddress:
		if length != 2 {
			return Record{}, parseErr(lineNum, 9, text, ErrInvalidPayload)
		}
	default:
		return Record{}, parseErr(lineNum, 7, text, ErrUnsupportedRecordType)
	}
	return rec, nil
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
