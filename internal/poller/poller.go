// internal/poller/poller.go
package poller

import (
	"errors"
	"time"

	"github.com/tamzrod/presence-lamp/internal/status"
)

// Client abstracts the raw payload source.
// The poller depends on bytes only; transport lives in the adapter.
type Client interface {
	Fetch() ([]byte, error)
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	Interval time.Duration
}

// Poller is a dumb, clock-driven fetch-and-parse pipeline.
type Poller struct {
	cfg    Config
	client Client
}

// New creates a poller with immutable config.
func New(cfg Config, client Client) (*Poller, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if client == nil {
		return nil, errors.New("poller: client required")
	}
	return &Poller{cfg: cfg, client: client}, nil
}

// PollOnce performs exactly one poll cycle.
// All-or-nothing: any failure yields the failed record and an error;
// no partial state escapes the cycle.
func (p *Poller) PollOnce() PollResult {
	res := PollResult{
		At:     time.Now(),
		Record: status.Failure(),
	}

	raw, err := p.client.Fetch()
	if err != nil {
		res.Err = err
		return res
	}

	rec, err := status.Parse(raw)
	if err != nil {
		res.Err = err
		return res
	}

	res.Record = rec
	return res
}
