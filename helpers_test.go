package triumph

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/triumpharcade/triumph-go/internal/crypto"
)

const testOrg = "acme-games"

// testKeyHex is a fixed 32-byte key for tests.
var testKeyHex = strings.Repeat("2a", crypto.KeySize)

func testKey(t *testing.T) []byte {
	t.Helper()
	key, err := crypto.ParseKey(testKeyHex)
	require.NoError(t, err)
	return key
}

// newTestClient returns a client pointed at baseURL.
func newTestClient(t *testing.T, baseURL string, opts ...Option) *Client {
	t.Helper()
	cfg := NewConfiguration(ConfigurationParameters{
		Organization: testOrg,
		APIKey:       testKeyHex,
		Env:          EnvSandbox,
	})
	client, err := New(cfg, append([]Option{WithBaseURL(baseURL)}, opts...)...)
	require.NoError(t, err)
	return client
}

// envelopeHandler opens the request envelope, hands the plaintext to reply
// and seals whatever reply returns.
func envelopeHandler(t *testing.T, key []byte, reply func(r *http.Request, plaintext []byte) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
			http.Error(w, "read", http.StatusBadRequest)
			return
		}
		plaintext, err := crypto.Open(key, string(body))
		if err != nil {
			t.Errorf("open request envelope: %v", err)
			http.Error(w, "envelope", http.StatusBadRequest)
			return
		}
		sealed, err := crypto.SealString(key, reply(r, plaintext))
		if err != nil {
			t.Errorf("seal reply: %v", err)
			http.Error(w, "seal", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(sealed))
	}
}

func newServer(t *testing.T, h http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return server
}
