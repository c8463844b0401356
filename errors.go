package triumph

import (
	"errors"

	"github.com/triumpharcade/triumph-go/internal/apierrors"
	"github.com/triumpharcade/triumph-go/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingConfiguration is returned when New is called with a nil Configuration.
	ErrMissingConfiguration = errors.New("configuration is required")

	// ErrMissingOrganization is returned when no organization id is configured.
	ErrMissingOrganization = errors.New("organization is required")

	// ErrInvalidKey is returned when the API key is not 64 hex characters.
	ErrInvalidKey = crypto.ErrInvalidKey

	// ErrMalformedEnvelope is returned when a response envelope is not valid
	// hex or is shorter than 32 bytes.
	ErrMalformedEnvelope = crypto.ErrMalformedEnvelope

	// ErrIntegrity is returned when a response envelope fails authentication,
	// either because it was tampered with or sealed under another key.
	ErrIntegrity = crypto.ErrIntegrity

	// ErrResponseDecode is returned when a decrypted response is not valid JSON.
	ErrResponseDecode = apierrors.ErrResponseDecode

	// ErrHTTPStatus is matched by every HTTPStatusError.
	ErrHTTPStatus = apierrors.ErrHTTPStatus

	// ErrNoResponse is returned when a request was sent but no response arrived.
	ErrNoResponse = apierrors.ErrNoResponse

	// ErrRequestSetup is returned when a request could not be constructed.
	ErrRequestSetup = apierrors.ErrRequestSetup

	// ErrUnauthorized is returned for 401 and 403 responses.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrNotFound is returned for 404 responses.
	ErrNotFound = apierrors.ErrNotFound

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = apierrors.ErrRateLimited
)

// TriumphError is implemented by all client errors carrying request context.
type TriumphError interface {
	error
	TriumphError() // marker method
}

// HTTPStatusError is returned when the server answered with a non-2xx status.
type HTTPStatusError = apierrors.HTTPStatusError

// NoResponseError is returned when a request was sent but no response arrived.
type NoResponseError = apierrors.NoResponseError

// RequestSetupError is returned when a request could not be constructed.
type RequestSetupError = apierrors.RequestSetupError

// ResponseDecodeError is returned when a decrypted response is not valid JSON.
type ResponseDecodeError = apierrors.ResponseDecodeError

// EnvelopeError is returned when a response envelope cannot be opened. It
// matches ErrMalformedEnvelope or ErrIntegrity.
type EnvelopeError = apierrors.EnvelopeError
