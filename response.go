package triumph

import (
	"encoding/json"
	"net/http"
)

// Response is a successful API response.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// StatusText is the reason phrase, e.g. "OK".
	StatusText string
	// Header holds the response headers.
	Header http.Header
	// Body is the decrypted JSON plaintext for POST and the raw body for GET.
	Body []byte
	// Data is the parsed JSON value of Body. For GET responses that are not
	// JSON it holds the body as a string.
	Data any
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return &ResponseDecodeError{Err: errEmptyBody}
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return &ResponseDecodeError{Err: err}
	}
	return nil
}

// parseBody mirrors the transport's content handling for plaintext responses:
// JSON bodies become their parsed value, anything else stays a string.
func parseBody(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		var v any
		if err := json.Unmarshal(body, &v); err == nil {
			return v
		}
	}
	return string(body)
}
