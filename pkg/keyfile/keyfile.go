// Package keyfile loads, derives, and generates the raw key material consumed
// by the cipher. A key is an opaque byte sequence of length >= 1.
package keyfile

import (
	"crypto/rand"
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/scrypt"
)

var (
	ErrEmptyKey        = errors.New("key file is empty")
	ErrEmptyPassphrase = errors.New("cannot use an empty passphrase")
)

const (
	derivedKeyLen = 32

	// scrypt cost parameters. These are part of the derived-key contract:
	// changing any of them changes every derived key.
	scryptIterations   = 1 << 15
	scryptRelBlockSize = 8
	scryptCPUCost      = 1
)

// derivationSalt is deliberately constant. Enciphering and deciphering must
// arrive at the identical key from the same passphrase, so there is no place
// to store a random salt.
var derivationSalt = []byte("hexcrypt/scrypt/v1")

// Load reads the whole file at path as key material. The file is raw binary;
// every byte of it becomes part of the key.
func Load(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyKey, path)
	}
	return key, nil
}

// Derive generates key material from a human-readable passphrase using
// scrypt. The salt and cost parameters are fixed so the same passphrase
// always yields the same key.
func Derive(passphrase []byte) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, ErrEmptyPassphrase
	}
	return scrypt.Key(passphrase, derivationSalt, scryptIterations, scryptRelBlockSize, scryptCPUCost, derivedKeyLen)
}

// Generate writes length secure random bytes to a new key file at path,
// readable only by the owner.
func Generate(path string, length int) error {
	if length <= 0 {
		return errors.New("asked to generate a 0-length key")
	}
	key := make([]byte, length)
	if n, err := rand.Read(key); n < length {
		return fmt.Errorf("failed to read requested bytes: %v", err)
	}
	return os.WriteFile(path, key, 0600)
}
