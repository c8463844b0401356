package crypto

import "errors"

var (
	// ErrMalformedEnvelope is returned when an envelope is not valid hex or
	// decodes to fewer than MinEnvelopeSize bytes.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrIntegrity is returned when the authentication tag does not verify.
	// This covers both tampered envelopes and envelopes sealed with another key.
	ErrIntegrity = errors.New("envelope integrity check failed")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidKey is returned when a hex-encoded key cannot be parsed.
	ErrInvalidKey = errors.New("invalid API key")
)
