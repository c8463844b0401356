package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveKey derives an AES-256 key from secret using HKDF-SHA-256.
// An empty info defaults to HKDFContext. The same inputs always produce
// the same key, which makes it suitable for reproducible sandbox keys.
func DeriveKey(secret, salt, info []byte) ([]byte, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: empty secret", ErrInvalidKey)
	}
	if len(salt) == 0 {
		salt = make([]byte, sha256.Size)
	}
	if len(info) == 0 {
		info = []byte(HKDFContext)
	}

	reader := hkdf.New(sha256.New, secret, salt, info)
	key := make([]byte, KeySize)

	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return key, nil
}
