// Package crypto implements the envelope codec used for Triumph API payloads.
//
// # Envelope Format
//
// Every request and response body sent through the encrypted path is an
// AES-256-GCM envelope:
//
//	IV (16 bytes) || ciphertext || tag (16 bytes)
//
// serialized as a lowercase hex string. The IV is freshly drawn from
// crypto/rand for each message, so sealing the same plaintext twice yields
// different envelopes. A decoded envelope shorter than [MinEnvelopeSize] is
// rejected with [ErrMalformedEnvelope].
//
// # Integrity
//
// The authentication tag is verified by the AEAD as part of [Open]; there is
// no separate comparison step. A flipped bit anywhere in the ciphertext or tag,
// or a key other than the one used to seal, fails with [ErrIntegrity].
//
// AES-GCM nonces MUST be unique for each encryption with the same key. Nonce
// reuse completely breaks the security of AES-GCM, allowing attackers to
// recover the authentication key and forge messages.
//
// # Key Management
//
// Keys are 32 bytes, exchanged as 64 hex characters. Use [ParseKey] to decode
// a configured key, [GenerateKey] to create a new one, and [DeriveKey] to
// derive one from a passphrase with HKDF-SHA-256.
//
// Keep keys secure. They should never be logged, transmitted in
// plaintext, or stored in version control.
package crypto
