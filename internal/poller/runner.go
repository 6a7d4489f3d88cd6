// internal/poller/runner.go
package poller

import (
	"context"
	"time"
)

// Run executes poll cycles until ctx is done. Each cycle runs to full
// completion through sink before the inter-cycle delay starts, so
// cycles never overlap and sink needs no locking. Cancellation is
// observed only between cycles, never mid-cycle.
func (p *Poller) Run(ctx context.Context, sink func(PollResult)) {
	for {
		sink(p.PollOnce())

		select {
		case <-ctx.Done():
			return
		case <-time.After(p.cfg.Interval):
		}
	}
}
