package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/triumpharcade/triumph-go/internal/apierrors"
)

// dispatch records whether a request reached the transport. It is set by the
// pre-request hook, which resty runs after the *http.Request is built and
// immediately before it is sent.
type dispatch struct {
	sent bool
}

type dispatchKey struct{}

func withDispatch(ctx context.Context, d *dispatch) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, dispatchKey{}, d)
}

func markDispatched(_ *resty.Client, req *http.Request) error {
	if d, ok := req.Context().Value(dispatchKey{}).(*dispatch); ok {
		d.sent = true
	}
	return nil
}

// classify maps the outcome of a transport call onto the error taxonomy.
// Priority: a non-2xx response, then a dispatched request with no response,
// then a request that never left the client. Returns nil on 2xx.
func classify(resp *resty.Response, err error, sent bool) error {
	if resp != nil && resp.RawResponse != nil && !resp.IsSuccess() {
		return &apierrors.HTTPStatusError{
			StatusCode: resp.StatusCode(),
			StatusText: statusText(resp),
		}
	}

	if err != nil {
		if sent {
			return &apierrors.NoResponseError{Err: err}
		}
		return &apierrors.RequestSetupError{Message: err.Error(), Err: err}
	}

	if resp == nil || resp.RawResponse == nil {
		return &apierrors.NoResponseError{}
	}
	return nil
}

// statusText returns the reason phrase of the status line, e.g. "Not Found"
// for "404 Not Found", falling back to the standard text for the code.
func statusText(resp *resty.Response) string {
	code := resp.StatusCode()
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status(), strconv.Itoa(code)))
	if text == "" {
		text = http.StatusText(code)
	}
	return text
}
