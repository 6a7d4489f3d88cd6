// internal/poller/types.go
package poller

import (
	"time"

	"github.com/tamzrod/presence-lamp/internal/status"
)

// PollResult is the outcome of one poll cycle.
type PollResult struct {
	At time.Time

	// Record is the parsed status snapshot. When Err is non-nil it is
	// the canonical failed record and carries no usable data.
	Record status.Record

	Err error // non-nil means the poll cycle failed
}
