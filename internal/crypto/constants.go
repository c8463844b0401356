package crypto

const (
	// KeySize is the size of an AES-256 key in bytes.
	KeySize = 32
	// IVSize is the size of the per-message GCM nonce in bytes. The wire
	// format uses a 16-byte IV rather than the 12-byte GCM default.
	IVSize = 16
	// TagSize is the size of an AES-GCM authentication tag in bytes.
	TagSize = 16

	// MinEnvelopeSize is the smallest decoded envelope: IV and tag around an
	// empty ciphertext.
	MinEnvelopeSize = IVSize + TagSize

	// HKDFContext is the info string used by DeriveKey for domain separation.
	HKDFContext = "triumph:api-key:v1"
)

// Ciphersuite is the canonical name of the envelope algorithm.
const Ciphersuite = "AES-256-GCM:IV16:TAG16:HEX"
