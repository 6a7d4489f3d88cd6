// internal/poller/builder.go
package poller

import (
	"time"

	cfg "github.com/tamzrod/presence-lamp/internal/config"
	"github.com/tamzrod/presence-lamp/internal/poller/statushttp"
)

// Build constructs a Poller wired to the status endpoint from config.
// Config must already be validated and normalized.
func Build(lamp cfg.LampConfig) (*Poller, error) {
	client, err := statushttp.New(statushttp.Config{
		Host:           lamp.Server.Host,
		Port:           lamp.Server.Port,
		Path:           lamp.Server.Path,
		ConnectRetries: lamp.Server.ConnectRetries,
		ConnectTimeout: time.Duration(lamp.Server.ConnectTimeoutMs) * time.Millisecond,
		ResponseWait:   time.Duration(lamp.Server.ResponseWaitMs) * time.Millisecond,
		Capacity:       lamp.Poll.PayloadCapacity,
	}, nil)
	if err != nil {
		return nil, err
	}

	return New(Config{
		Interval: time.Duration(lamp.Poll.IntervalMs) * time.Millisecond,
	}, client)
}
