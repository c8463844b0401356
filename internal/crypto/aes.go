package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"fmt"
	"io"
)

// newGCM builds an AES-256-GCM AEAD using the envelope's 16-byte IV.
func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, IVSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return gcm, nil
}

// SealBytes encrypts plaintext with a fresh random IV.
// Returns: IV (16 bytes) || ciphertext || tag (16 bytes)
func SealBytes(key, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	out := make([]byte, IVSize, IVSize+len(plaintext)+TagSize)
	if _, err := io.ReadFull(randReader, out); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}

	return gcm.Seal(out, out[:IVSize], plaintext, nil), nil
}

// OpenBytes reverses SealBytes. The tag is checked as part of decryption, so
// a tampered envelope never yields plaintext.
func OpenBytes(key, envelope []byte) ([]byte, error) {
	if len(envelope) < MinEnvelopeSize {
		return nil, fmt.Errorf("%w: got %d bytes, want at least %d", ErrMalformedEnvelope, len(envelope), MinEnvelopeSize)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	iv := envelope[:IVSize]
	ciphertextWithTag := envelope[IVSize:]

	plaintext, err := gcm.Open(nil, iv, ciphertextWithTag, nil)
	if err != nil {
		return nil, ErrIntegrity
	}
	if plaintext == nil {
		plaintext = []byte{}
	}
	return plaintext, nil
}

// Seal encrypts plaintext and hex-encodes the envelope.
func Seal(key, plaintext []byte) (string, error) {
	raw, err := SealBytes(key, plaintext)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// Open hex-decodes an envelope produced by Seal and decrypts it.
func Open(key []byte, envelope string) ([]byte, error) {
	raw, err := hex.DecodeString(envelope)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	return OpenBytes(key, raw)
}

// SealString is Seal for UTF-8 text.
func SealString(key []byte, plaintext string) (string, error) {
	return Seal(key, []byte(plaintext))
}

// OpenString is Open returning UTF-8 text.
func OpenString(key []byte, envelope string) (string, error) {
	plaintext, err := Open(key, envelope)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
