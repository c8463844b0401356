package crypto

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func newTestKey(t testing.TB) []byte {
	t.Helper()
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		t.Fatal(err)
	}
	return key
}

func TestSeal_Open_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"empty", []byte{}},
		{"simple", []byte("hello world")},
		{"json", []byte(`{"a":1}`)},
		{"unicode", []byte("héllo wörld ✓")},
		{"binary", []byte{0x00, 0xff, 0x7f, 0x80}},
		{"large", make([]byte, 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := newTestKey(t)

			envelope, err := Seal(key, tt.plaintext)
			if err != nil {
				t.Fatalf("Seal() error = %v", err)
			}

			// Envelope should be hex of IV + ciphertext + tag
			expectedLen := 2 * (IVSize + len(tt.plaintext) + TagSize)
			if len(envelope) != expectedLen {
				t.Errorf("envelope length = %d, want %d", len(envelope), expectedLen)
			}
			if len(envelope)%2 != 0 {
				t.Error("envelope has odd hex length")
			}

			decrypted, err := Open(key, envelope)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}

			if !bytes.Equal(decrypted, tt.plaintext) {
				t.Errorf("decrypted = %v, want %v", decrypted, tt.plaintext)
			}
		})
	}
}

func TestSealString_OpenString(t *testing.T) {
	key := newTestKey(t)

	envelope, err := SealString(key, `{"ok":true}`)
	if err != nil {
		t.Fatalf("SealString() error = %v", err)
	}

	got, err := OpenString(key, envelope)
	if err != nil {
		t.Fatalf("OpenString() error = %v", err)
	}
	if got != `{"ok":true}` {
		t.Errorf("OpenString() = %q, want %q", got, `{"ok":true}`)
	}
}

func TestSeal_FreshIV(t *testing.T) {
	key := newTestKey(t)
	plaintext := []byte("same message")

	first, err := Seal(key, plaintext)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Seal(key, plaintext)
	if err != nil {
		t.Fatal(err)
	}

	if first == second {
		t.Fatal("sealing the same plaintext twice produced identical envelopes")
	}
	if first[:2*IVSize] == second[:2*IVSize] {
		t.Error("IV was reused")
	}

	for _, envelope := range []string{first, second} {
		got, err := Open(key, envelope)
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if !bytes.Equal(got, plaintext) {
			t.Errorf("Open() = %q, want %q", got, plaintext)
		}
	}
}

func TestSeal_UsesRandReader(t *testing.T) {
	iv := bytes.Repeat([]byte{0xab}, IVSize)
	restore := SetRandReaderForTesting(bytes.NewReader(iv))
	defer restore()

	envelope, err := Seal(make([]byte, KeySize), []byte("x"))
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}
	if !strings.HasPrefix(envelope, hex.EncodeToString(iv)) {
		t.Errorf("envelope %s does not start with IV %x", envelope, iv)
	}
}

func TestSeal_RandFailure(t *testing.T) {
	restore := SetRandReaderForTesting(bytes.NewReader(nil))
	defer restore()

	if _, err := Seal(make([]byte, KeySize), []byte("x")); err == nil {
		t.Error("expected error when the random source is exhausted")
	}
}

func TestSeal_InvalidKeySize(t *testing.T) {
	tests := []struct {
		name    string
		keySize int
	}{
		{"empty", 0},
		{"aes-128", 16},
		{"aes-192", 24},
		{"too long", 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Seal(make([]byte, tt.keySize), []byte("test"))
			if !errors.Is(err, ErrInvalidKeySize) {
				t.Errorf("expected ErrInvalidKeySize, got %v", err)
			}
		})
	}
}

func TestOpen_InvalidKeySize(t *testing.T) {
	envelope := strings.Repeat("00", MinEnvelopeSize+10)

	_, err := Open(make([]byte, 16), envelope)
	if !errors.Is(err, ErrInvalidKeySize) {
		t.Errorf("expected ErrInvalidKeySize, got %v", err)
	}
}

func TestOpen_Malformed(t *testing.T) {
	key := newTestKey(t)

	tests := []struct {
		name     string
		envelope string
	}{
		{"empty", ""},
		{"only IV", strings.Repeat("00", IVSize)},
		{"one byte short", strings.Repeat("00", MinEnvelopeSize-1)},
		{"63 hex chars", strings.Repeat("a", 2*MinEnvelopeSize-1)},
		{"not hex", strings.Repeat("zz", MinEnvelopeSize)},
		{"odd length", strings.Repeat("0", 2*MinEnvelopeSize+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(key, tt.envelope)
			if !errors.Is(err, ErrMalformedEnvelope) {
				t.Errorf("expected ErrMalformedEnvelope, got %v", err)
			}
		})
	}
}

func TestOpen_MinimumLengthIsNotMalformed(t *testing.T) {
	// 32 zero bytes is structurally valid; it must fail authentication instead.
	_, err := Open(newTestKey(t), strings.Repeat("00", MinEnvelopeSize))
	if !errors.Is(err, ErrIntegrity) {
		t.Errorf("expected ErrIntegrity, got %v", err)
	}
}

func TestOpen_TamperedEveryByte(t *testing.T) {
	key := newTestKey(t)

	raw, err := SealBytes(key, []byte("sensitive data"))
	if err != nil {
		t.Fatal(err)
	}

	// Flip one bit in each byte of the ciphertext and tag regions.
	for i := IVSize; i < len(raw); i++ {
		for _, bit := range []byte{0x01, 0x80} {
			tampered := bytes.Clone(raw)
			tampered[i] ^= bit

			_, err := Open(key, hex.EncodeToString(tampered))
			if !errors.Is(err, ErrIntegrity) {
				t.Fatalf("byte %d bit %#x: expected ErrIntegrity, got %v", i, bit, err)
			}
		}
	}
}

func TestOpen_TamperedIV(t *testing.T) {
	key := newTestKey(t)

	raw, err := SealBytes(key, []byte("sensitive data"))
	if err != nil {
		t.Fatal(err)
	}
	raw[0] ^= 0xff

	_, err = OpenBytes(key, raw)
	if !errors.Is(err, ErrIntegrity) {
		t.Errorf("expected ErrIntegrity, got %v", err)
	}
}

func TestOpen_WrongKey(t *testing.T) {
	key1 := newTestKey(t)
	key2 := newTestKey(t)

	envelope, err := Seal(key1, []byte("sensitive data"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = Open(key2, envelope)
	if !errors.Is(err, ErrIntegrity) {
		t.Errorf("expected ErrIntegrity, got %v", err)
	}
}

func BenchmarkSeal(b *testing.B) {
	key := newTestKey(b)
	plaintext := make([]byte, 1000)
	rand.Read(plaintext)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Seal(key, plaintext)
	}
}

func BenchmarkOpen(b *testing.B) {
	key := newTestKey(b)
	plaintext := make([]byte, 1000)
	rand.Read(plaintext)

	envelope, _ := Seal(key, plaintext)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Open(key, envelope)
	}
}

// Example_sealOpen demonstrates sealing and opening a JSON payload.
func Example_sealOpen() {
	key, err := ParseKey("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	if err != nil {
		panic(err)
	}

	envelope, err := SealString(key, `{"a":1}`)
	if err != nil {
		panic(err)
	}

	plaintext, err := OpenString(key, envelope)
	if err != nil {
		panic(err)
	}

	fmt.Println(plaintext)
	// Output: {"a":1}
}
