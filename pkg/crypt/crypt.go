// Package crypt applies an ARCFOUR keystream to the data records of an Intel
// HEX document. Applying it twice with the same key is the identity.
package crypt

import (
	"github.com/saylorsolutions/hexcrypt/pkg/arcfour"
	"github.com/saylorsolutions/hexcrypt/pkg/ihex"
)

// DropLen is the number of keystream bytes discarded after key scheduling,
// before the first payload byte is ciphered. The very first RC4 output bytes
// allow key recovery when paired with known plaintext, so neither direction
// may ever use them. The drop happens once per document, not per record.
const DropLen = 256

// Apply XORs a continuous keystream derived from key into the payload of
// every data record of doc, in record order. Extended linear address and
// end-of-file records are left untouched: their payloads carry addressing and
// termination structure, not content. The document is mutated in place, and
// its checksums stay correct because they are derived at encode time.
//
// ARCFOUR is symmetric, so Apply both enciphers and deciphers: a second call
// with the same key consumes the identical keystream and restores the
// original payloads. The only failure mode is an empty key.
func Apply(doc *ihex.Document, key []byte) error {
	state, err := arcfour.KeySchedule(key)
	if err != nil {
		return err
	}
	state.Drop(DropLen)

	for _, rec := range doc.Records() {
		if rec.Type != ihex.Data {
			continue
		}
		state.XORKeyStream(rec.Payload)
	}
	return nil
}
