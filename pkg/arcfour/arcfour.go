package arcfour

import "errors"

// ErrEmptyKey is returned by KeySchedule when no key material is provided.
var ErrEmptyKey = errors.New("cannot use an empty key")

// State is the keystream generator state: a 256-byte permutation plus the two
// cursor positions. A State is owned by a single caller; it is advanced by
// every Generate, XORKeyStream, and Drop call and is never safe to share.
type State struct {
	perm [256]byte
	i, j uint8
}

// KeySchedule initializes a State from the given key. Key bytes are folded
// into an identity permutation over 256 swap rounds, repeating the key
// cyclically when it is shorter than 256 bytes. The result is deterministic
// for a given key.
func KeySchedule(key []byte) (*State, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	s := new(State)
	for i := range s.perm {
		s.perm[i] = byte(i)
	}
	var j uint8
	for i := 0; i < 256; i++ {
		j += s.perm[i] + key[i%len(key)]
		s.perm[i], s.perm[j] = s.perm[j], s.perm[i]
	}
	return s, nil
}

// XORKeyStream XORs the next len(buf) keystream bytes into buf in place,
// advancing the state. Calling it twice over the same data with identically
// scheduled states restores the original bytes.
func (s *State) XORKeyStream(buf []byte) {
	i, j := s.i, s.j
	for k := range buf {
		i++
		j += s.perm[i]
		s.perm[i], s.perm[j] = s.perm[j], s.perm[i]
		buf[k] ^= s.perm[s.perm[i]+s.perm[j]]
	}
	s.i, s.j = i, j
}

// Generate returns the next n keystream bytes. Consecutive calls continue the
// same keystream; the sequence never resets mid-state.
func (s *State) Generate(n int) []byte {
	out := make([]byte, n)
	s.XORKeyStream(out)
	return out
}

// Drop advances the state past the next n keystream bytes without producing
// them.
func (s *State) Drop(n int) {
	i, j := s.i, s.j
	for k := 0; k < n; k++ {
		i++
		j += s.perm[i]
		s.perm[i], s.perm[j] = s.perm[j], s.perm[i]
	}
	s.i, s.j = i, j
}
