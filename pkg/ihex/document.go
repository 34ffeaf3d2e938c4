package ihex

import (
	"bufio"
	"bytes"
	"io"
)

// Document is the ordered sequence of records of one Intel HEX file, exactly
// as they appeared in the source. The last record is always the end-of-file
// record. The Document owns its records and their payload storage.
type Document struct {
	records []Record
}

// NewDocument builds a Document from records in the given order.
// It performs no validation; it exists for callers that assemble records
// programmatically rather than through Parse.
func NewDocument(records ...Record) *Document {
	return &Document{records: records}
}

// Parse reads Intel HEX lines from r until an end-of-file record is decoded.
// Input after that record is not read. Any malformed line aborts the parse
// with a *ParseError; there is no partial-document recovery. If the stream
// ends before an end-of-file record is seen, the error unwraps to
// ErrUnexpectedEOF.
func Parse(r io.Reader) (*Document, error) {
	var (
		doc     Document
		scanner = bufio.NewScanner(r)
		lineNum int
	)
	for scanner.Scan() {
		lineNum++
		rec, err := decodeRecord(lineNum, scanner.Bytes())
		if err != nil {
			return nil, err
		}
		doc.records = append(doc.records, rec)
		if rec.Type == EndOfFile {
			return &doc, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nil, parseErr(lineNum+1, 0, nil, ErrUnexpectedEOF)
}

// Serialize encodes every record in original order to w. Checksums are
// derived fresh for each line.
func (d *Document) Serialize(w io.Writer) error {
	buffered := bufio.NewWriter(w)
	for _, rec := range d.records {
		if _, err := buffered.Write(rec.Encode()); err != nil {
			return err
		}
	}
	return buffered.Flush()
}

// Records exposes the record sequence. The returned slice is backed by the
// Document's own storage: payload mutations through it are visible on the
// next Serialize.
func (d *Document) Records() []Record {
	return d.records
}

// Len returns the number of records, including the end-of-file record.
func (d *Document) Len() int {
	return len(d.records)
}

// Equal reports whether both documents hold the same record sequence,
// comparing type, address, and payload element-wise. Checksums are derived
// values and take no part in equality.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	if len(d.records) != len(other.records) {
		return false
	}
	for i, rec := range d.records {
		o := other.records[i]
		if rec.Type != o.Type || rec.Address != o.Address || !bytes.Equal(rec.Payload, o.Payload) {
			return false
		}
	}
	return true
}

// AbsoluteAddress computes the 32-bit address of record i by combining its
// stored 16-bit address with the base from the nearest preceding extended
// linear address record, or zero if there is none. The stored records are
// never mutated to hold absolute addresses.
func (d *Document) AbsoluteAddress(i int) uint32 {
	var base uint32
	for _, rec := range d.records[:i] {
		if rec.Type == ExtendedLinearAddress {
			base = uint32(rec.Payload[0])<<24 | uint32(rec.Payload[1])<<16
		}
	}
	return base | uint32(d.records[i].Address)
}
