package simplify

import "fmt"

// ErrorKind classifies processing failures so callers can branch on the
// cause instead of matching message text.
type ErrorKind string

const (
	// KindNetworkFailure covers transport-level failures: connection
	// refused, DNS errors, timeouts. The remote service never answered.
	KindNetworkFailure ErrorKind = "network_failure"

	// KindRemoteError means the remote service answered with a non-2xx
	// status. Status and Body carry the raw response.
	KindRemoteError ErrorKind = "remote_error"

	// KindBadResponse means the service returned 2xx but the body did
	// not have the expected shape (no choices, no candidates, bad JSON).
	KindBadResponse ErrorKind = "bad_response"
)

// Error is a processing failure from a remote provider.
type Error struct {
	Kind   ErrorKind
	Status int    // HTTP status, set for KindRemoteError
	Body   string // raw response body, set for KindRemoteError
	Err    error  // underlying error, if any
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindRemoteError:
		return fmt.Sprintf("remote service returned %d: %s", e.Status, e.Body)
	case KindNetworkFailure:
		return fmt.Sprintf("network failure: %v", e.Err)
	default:
		if e.Err != nil {
			return fmt.Sprintf("unrecognized response: %v", e.Err)
		}
		return "unrecognized response shape"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}
