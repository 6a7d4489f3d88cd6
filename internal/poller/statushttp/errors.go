// internal/poller/statushttp/errors.go
package statushttp

import "errors"

// Cycle-scoped failure kinds. Every one of them abandons the current
// cycle and leaves roster state frozen; none is fatal to the process.
var (
	// ErrConnectionFailed means the connect-retry budget is exhausted.
	ErrConnectionFailed = errors.New("statushttp: connection retries exhausted")

	// ErrResponseTimeout means the dead-time budget expired while
	// waiting for response bytes (first byte or mid-body).
	ErrResponseTimeout = errors.New("statushttp: response timeout")

	// ErrBufferOverflow means the extracted object would exceed the
	// configured payload capacity. No partial buffer is returned.
	ErrBufferOverflow = errors.New("statushttp: payload exceeds capacity")
)
