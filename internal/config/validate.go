// internal/config/validate.go
package config

import (
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	lamp := &cfg.Lamp

	// ------------------------------------------------------------
	// SERVER
	// ------------------------------------------------------------

	if lamp.Server.Host == "" {
		return fmt.Errorf("server: host is required")
	}
	if lamp.Server.Port < 0 || lamp.Server.Port > 65535 {
		return fmt.Errorf("server: port %d out of range", lamp.Server.Port)
	}
	if lamp.Server.ConnectRetries < 0 {
		return fmt.Errorf("server: connect_retries must be >= 0")
	}

	// ------------------------------------------------------------
	// POLL
	// ------------------------------------------------------------

	if lamp.Poll.IntervalMs < 0 {
		return fmt.Errorf("poll: interval_ms must be >= 0")
	}
	if lamp.Poll.PayloadCapacity < 0 {
		return fmt.Errorf("poll: payload_capacity must be >= 0")
	}

	// ------------------------------------------------------------
	// DISPLAY
	// ------------------------------------------------------------

	switch lamp.Display.Driver {
	case "modbus":
		if lamp.Display.Modbus == nil {
			return fmt.Errorf("display: driver is modbus but no modbus section given")
		}
		if lamp.Display.Modbus.Endpoint == "" {
			return fmt.Errorf("display: modbus endpoint is required")
		}
	case "term":
		// no driver-specific config
	default:
		return fmt.Errorf("display: unknown driver %q", lamp.Display.Driver)
	}

	if lamp.Display.Positions < 1 {
		return fmt.Errorf("display: positions must be >= 1")
	}

	// ------------------------------------------------------------
	// ROSTER
	// ------------------------------------------------------------

	if len(lamp.Roster) == 0 {
		return fmt.Errorf("roster: at least one slot is required")
	}

	// Roster must fit on the physical strip. Startup-time invariant:
	// the runtime never re-checks it.
	if len(lamp.Roster) > lamp.Display.Positions {
		return fmt.Errorf(
			"roster: %d slots exceed %d display positions",
			len(lamp.Roster),
			lamp.Display.Positions,
		)
	}

	seen := make(map[string]int)
	wildcards := 0

	for i, s := range lamp.Roster {
		if s.Wildcard && s.Name != "" {
			return fmt.Errorf(
				"roster: slot %d sets both name %q and wildcard",
				i, s.Name,
			)
		}
		if !s.Wildcard && s.Name == "" {
			return fmt.Errorf("roster: slot %d sets neither name nor wildcard", i)
		}

		if s.Wildcard {
			wildcards++
			if wildcards > 1 {
				return fmt.Errorf("roster: at most one wildcard slot is allowed")
			}
			continue
		}

		if prev, dup := seen[s.Name]; dup {
			return fmt.Errorf(
				"roster: duplicate name %q in slots %d and %d",
				s.Name, prev, i,
			)
		}
		seen[s.Name] = i
	}

	return nil
}
