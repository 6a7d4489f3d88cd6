// internal/display/render.go
package display

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/presence-lamp/internal/roster"
)

// Renderer delivers per-slot roster colors onto a fixed strip of
// indicator positions. It keeps no state of its own: every render is a
// full strip refresh.
type Renderer struct {
	dev       Device
	positions int
}

// NewRenderer creates a renderer for a strip of the given size.
func NewRenderer(dev Device, positions int) (*Renderer, error) {
	if dev == nil {
		return nil, errors.New("display: device required")
	}
	if positions < 1 {
		return nil, errors.New("display: positions must be >= 1")
	}
	return &Renderer{dev: dev, positions: positions}, nil
}

// paletteFor maps a slot transition color onto the hardware palette.
func paletteFor(c roster.Color) Color {
	switch c {
	case roster.JustJoined:
		return ColorGreen
	case roster.SteadyPresent:
		return ColorBlue
	case roster.JustLeft:
		return ColorRed
	default:
		return ColorOff
	}
}

// RenderRoster puts slot i's color at position i. Positions beyond the
// roster are set to off. Per-position failures do not stop the refresh.
func (r *Renderer) RenderRoster(colors []roster.Color) error {
	var errs []string

	for pos := 0; pos < r.positions; pos++ {
		c := ColorOff
		if pos < len(colors) {
			c = paletteFor(colors[pos])
		}
		if err := r.dev.SetColor(pos, c); err != nil {
			errs = append(errs, fmt.Sprintf("pos=%d err=%v", pos, err))
		}
	}

	if err := r.dev.Flush(); err != nil {
		errs = append(errs, fmt.Sprintf("flush err=%v", err))
	}

	if len(errs) > 0 {
		return errors.New("display: " + strings.Join(errs, " | "))
	}
	return nil
}

// RenderError shows the single solid error indicator: every position
// red. The roster is left untouched by the caller.
func (r *Renderer) RenderError() error {
	var errs []string

	for pos := 0; pos < r.positions; pos++ {
		if err := r.dev.SetColor(pos, ColorRed); err != nil {
			errs = append(errs, fmt.Sprintf("pos=%d err=%v", pos, err))
		}
	}

	if err := r.dev.Flush(); err != nil {
		errs = append(errs, fmt.Sprintf("flush err=%v", err))
	}

	if len(errs) > 0 {
		return errors.New("display: " + strings.Join(errs, " | "))
	}
	return nil
}
