// cmd/presencelamp/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tamzrod/presence-lamp/internal/config"
	"github.com/tamzrod/presence-lamp/internal/display"
	dmodbus "github.com/tamzrod/presence-lamp/internal/display/modbus"
	"github.com/tamzrod/presence-lamp/internal/display/term"
	"github.com/tamzrod/presence-lamp/internal/poller"
	"github.com/tamzrod/presence-lamp/internal/roster"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: presencelamp <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)
	lamp := cfg.Lamp

	// --------------------
	// Build pipeline
	// --------------------

	p, err := poller.Build(lamp)
	if err != nil {
		log.Fatalf("poller build failed: %v", err)
	}

	ids := make([]roster.Identity, 0, len(lamp.Roster))
	for _, s := range lamp.Roster {
		if s.Wildcard {
			ids = append(ids, roster.Wildcard())
		} else {
			ids = append(ids, roster.Name(s.Name))
		}
	}

	tracked, err := roster.New(ids)
	if err != nil {
		log.Fatalf("roster build failed: %v", err)
	}

	dev, closeDev, err := buildDevice(lamp.Display)
	if err != nil {
		log.Fatalf("display build failed: %v", err)
	}
	defer func() {
		if err := closeDev(); err != nil {
			log.Printf("display close failed: %v", err)
		}
	}()

	renderer, err := display.NewRenderer(dev, lamp.Display.Positions)
	if err != nil {
		log.Fatalf("renderer build failed: %v", err)
	}

	// --------------------
	// Cycle loop (single-threaded; one cycle in flight, ever)
	// --------------------

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf(
		"presencelamp starting: server=%s:%d path=%s slots=%d positions=%d driver=%s",
		lamp.Server.Host, lamp.Server.Port, lamp.Server.Path,
		tracked.Size(), lamp.Display.Positions, lamp.Display.Driver,
	)

	p.Run(ctx, cycleSink(tracked, renderer))

	log.Print("presencelamp stopped")
}

// cycleSink consumes one poll result per cycle. Every failure kind is
// handled identically: log it, leave the roster frozen, show the error
// indicator, wait for the next cycle. Nothing here is fatal.
func cycleSink(tracked *roster.Roster, renderer *display.Renderer) func(poller.PollResult) {
	return func(res poller.PollResult) {
		if res.Err != nil {
			log.Printf("cycle failed: %v", res.Err)
			if err := renderer.RenderError(); err != nil {
				log.Printf("error indicator render failed: %v", err)
			}
			return
		}

		colors := tracked.Reconcile(res.Record.Names)
		log.Printf(
			"cycle ok: online=%d sampled=%d",
			res.Record.OnlineCount, len(res.Record.Names),
		)

		if err := renderer.RenderRoster(colors); err != nil {
			log.Printf("render failed: %v", err)
		}
	}
}

func buildDevice(d config.DisplayConfig) (display.Device, func() error, error) {
	switch d.Driver {
	case "modbus":
		dev, err := dmodbus.NewDevice(dmodbus.Config{
			Endpoint:    d.Modbus.Endpoint,
			UnitID:      d.Modbus.UnitID,
			BaseAddress: d.Modbus.BaseAddress,
			Positions:   d.Positions,
			Timeout:     time.Duration(d.Modbus.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			return nil, nil, err
		}
		return dev, dev.Close, nil

	case "term":
		dev, err := term.NewDevice(os.Stdout, d.Positions)
		if err != nil {
			return nil, nil, err
		}
		return dev, func() error { return nil }, nil
	default:
		// config.Validate rejects unknown drivers before we get here
		return nil, nil, fmt.Errorf("display: unknown driver %q", d.Driver)
	}
}
