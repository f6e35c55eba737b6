package upstream

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// TransportKind classifies a failed transport call.
type TransportKind int

const (
	KindTimeout TransportKind = iota
	KindConnectionFailed
	KindHTTPStatus
)

func (k TransportKind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindConnectionFailed:
		return "connection_failed"
	case KindHTTPStatus:
		return "http_status"
	default:
		return "unknown"
	}
}

// TransportError is the failure surface of the Transport. StatusCode
// and Body are populated only for KindHTTPStatus.
type TransportError struct {
	Kind       TransportKind
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("upstream http %d: %s", e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("upstream %s: %v", e.Kind, e.Err)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// Transient reports whether retrying the call may succeed: timeouts,
// network failures and 5xx. 4xx is a caller/data problem and is final.
func (e *TransportError) Transient() bool {
	switch e.Kind {
	case KindTimeout, KindConnectionFailed:
		return true
	case KindHTTPStatus:
		return e.StatusCode >= 500
	default:
		return false
	}
}

// FinalError wraps the last transient failure once the retry budget is
// spent.
type FinalError struct {
	Attempts int
	Cause    error
}

func (e *FinalError) Error() string {
	return fmt.Sprintf("retries exhausted after %d attempts: %v", e.Attempts, e.Cause)
}

func (e *FinalError) Unwrap() error { return e.Cause }

// classifyNetErr folds a net/http client error into the taxonomy.
func classifyNetErr(err error) *TransportError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TransportError{Kind: KindTimeout, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TransportError{Kind: KindTimeout, Err: err}
	}
	return &TransportError{Kind: KindConnectionFailed, Err: err}
}
