// internal/display/display.go
package display

// Color is the fixed palette the indicator hardware accepts.
type Color uint8

const (
	ColorOff Color = iota
	ColorGreen
	ColorBlue
	ColorRed
)

func (c Color) String() string {
	switch c {
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorRed:
		return "red"
	default:
		return "off"
	}
}

// Device is the exact contract the renderer uses.
// SetColor stages one position; Flush commits the whole strip.
type Device interface {
	SetColor(pos int, c Color) error
	Flush() error
}
