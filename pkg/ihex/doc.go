/*
Package ihex reads and writes Intel HEX files as ordered record sequences.

An Intel HEX file is a line-oriented text format. Each line is one record:

	:LLAAAATT[DD...]CC

LL is the payload length, AAAA the 16-bit address as stored on the line, TT
the record type, DD the payload bytes, and CC a two's-complement checksum of
every preceding byte. Hex digits are accepted in either case on input and
always emitted uppercase, with CRLF line endings.

# How it works:

Parse decodes one line at a time into a Record and appends it to a Document in
input order. Parsing stops at the first end-of-file record, which must be
present. Records are never merged or re-keyed by absolute address, and no
extended address records are synthesized on output, so a parsed Document
serializes back to the byte-exact input. Folding records into an address map
would lose duplicate records and record order, breaking that guarantee.

Checksums are validated on decode and derived fresh on every encode. A decoded
checksum is never stored or trusted afterward, so mutating a record's payload
between Parse and Serialize cannot desynchronize the file.

Extended linear address records are kept in place as ordinary records. A
consumer that needs the absolute address of a record can ask the Document for
it, which scans the preceding extended address records on demand.
*/
package ihex
