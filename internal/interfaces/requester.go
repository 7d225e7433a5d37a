// Package interfaces defines the narrow contracts shared across layers.
// The session depends on these abstractions rather than on a concrete
// transport, so the protocol layer stays swappable.
package interfaces

import (
	"context"
	"time"
)

// Executor performs one HTTP exchange and reduces its outcome to a
// displayable string. Failures are collapsed into fixed sentinel
// strings rather than surfaced as structured errors:
//
//   - an unrecognized method yields "Invalid Method" with no network
//     activity;
//   - any transport or decode failure yields "Failed to make request".
//
// A successful exchange yields the response body as text, whatever the
// HTTP status was.
type Executor interface {
	Execute(ctx context.Context, method, url string, headers map[string]string, body string) string
}

// TimingInfo records when an exchange started and finished.
type TimingInfo struct {
	StartTime time.Time
	EndTime   time.Time
	Total     time.Duration
}
