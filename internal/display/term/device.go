// internal/display/term/device.go
package term

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tamzrod/presence-lamp/internal/display"
)

// Styles per palette color.
var (
	styleOff   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	styleGreen = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10b981"))
	styleBlue  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3b82f6"))
	styleRed   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444"))
)

const (
	glyphLit = "●"
	glyphOff = "○"
)

// Device renders the indicator strip as one styled line per flush.
// Development stand-in for the real controller.
type Device struct {
	w     io.Writer
	cells []display.Color
}

func NewDevice(w io.Writer, positions int) (*Device, error) {
	if w == nil {
		return nil, errors.New("display term: writer required")
	}
	if positions < 1 {
		return nil, errors.New("display term: positions must be >= 1")
	}
	return &Device{
		w:     w,
		cells: make([]display.Color, positions),
	}, nil
}

func (d *Device) SetColor(pos int, c display.Color) error {
	if pos < 0 || pos >= len(d.cells) {
		return fmt.Errorf("display term: position %d out of range [0,%d)", pos, len(d.cells))
	}
	d.cells[pos] = c
	return nil
}

func (d *Device) Flush() error {
	parts := make([]string, len(d.cells))
	for i, c := range d.cells {
		parts[i] = render(c)
	}
	_, err := fmt.Fprintln(d.w, strings.Join(parts, " "))
	return err
}

func render(c display.Color) string {
	switch c {
	case display.ColorGreen:
		return styleGreen.Render(glyphLit)
	case display.ColorBlue:
		return styleBlue.Render(glyphLit)
	case display.ColorRed:
		return styleRed.Render(glyphLit)
	default:
		return styleOff.Render(glyphOff)
	}
}
