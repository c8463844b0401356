package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

var randReader io.Reader = rand.Reader

// ParseKey decodes a hex-encoded AES-256 key. Surrounding whitespace is
// ignored; the decoded key must be exactly KeySize bytes.
func ParseKey(hexKey string) ([]byte, error) {
	key, err := hex.DecodeString(strings.TrimSpace(hexKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: %w: got %d bytes, want %d", ErrInvalidKey, ErrInvalidKeySize, len(key), KeySize)
	}
	return key, nil
}

// GenerateKey returns a fresh random AES-256 key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(randReader, key); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return key, nil
}

// EncodeKey hex-encodes a key in the form expected by ParseKey.
func EncodeKey(key []byte) string {
	return hex.EncodeToString(key)
}
