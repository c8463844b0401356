// Package api provides the HTTP transport for the Triumph API. It sends
// requests with a fixed set of headers and a per-request timeout, and folds
// every transport failure into a small error taxonomy.
//
// # Client Creation
//
// Use [NewClient] with a [Config]. Only the base URL is required; the
// timeout defaults to [DefaultTimeout]. The organization id is sent in the
// [OrganizationHeader] header, which callers supply through Config.Headers.
//
// # Error Classification
//
// [Client.Do] returns nil error only for 2xx responses. Every other outcome
// maps to exactly one error type from the apierrors package, in this order:
//
//   - HTTPStatusError: the server answered with a non-2xx status.
//   - NoResponseError: the request was sent but no response arrived
//     (connection refused, timeout, context cancellation).
//   - RequestSetupError: the request could not be built or never left
//     the client.
//
// The client never retries. Response bodies are returned as raw bytes;
// envelope handling belongs to the caller.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
