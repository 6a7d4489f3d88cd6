// internal/display/modbus/device.go
package modbus

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goburrow/modbus"

	"github.com/tamzrod/presence-lamp/internal/display"
)

// Register color codes. These values define the controller protocol
// and MUST NOT be configurable.
const (
	regOff   uint16 = 0
	regGreen uint16 = 1
	regBlue  uint16 = 2
	regRed   uint16 = 3
)

// regWriter is the exact slice of the Modbus client the device uses.
type regWriter interface {
	WriteMultipleRegisters(address, quantity uint16, value []byte) ([]byte, error)
}

// Device drives an indicator strip behind a Modbus TCP controller.
// One holding register per position holds a color code; Flush commits
// the whole strip with a single multiple-register write.
type Device struct {
	mu      sync.Mutex
	handler *modbus.TCPClientHandler
	client  regWriter
	base    uint16
	regs    []uint16
}

type Config struct {
	Endpoint    string
	UnitID      uint8
	BaseAddress uint16
	Positions   int
	Timeout     time.Duration
}

// NewDevice creates a connected device.
func NewDevice(cfg Config) (*Device, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("display modbus: endpoint required")
	}
	if cfg.Positions < 1 {
		return nil, errors.New("display modbus: positions must be >= 1")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.UnitID

	if err := h.Connect(); err != nil {
		return nil, err
	}

	return &Device{
		handler: h,
		client:  modbus.NewClient(h),
		base:    cfg.BaseAddress,
		regs:    make([]uint16, cfg.Positions),
	}, nil
}

func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.handler == nil {
		return nil
	}
	return d.handler.Close()
}

// SetColor stages one position's color code. No IO happens here.
func (d *Device) SetColor(pos int, c display.Color) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if pos < 0 || pos >= len(d.regs) {
		return fmt.Errorf("display modbus: position %d out of range [0,%d)", pos, len(d.regs))
	}

	d.regs[pos] = regFor(c)
	return nil
}

// Flush writes the staged strip as one register block.
func (d *Device) Flush() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	payload := packRegisters(d.regs)
	_, err := d.client.WriteMultipleRegisters(d.base, uint16(len(d.regs)), payload)
	return err
}

func regFor(c display.Color) uint16 {
	switch c {
	case display.ColorGreen:
		return regGreen
	case display.ColorBlue:
		return regBlue
	case display.ColorRed:
		return regRed
	default:
		return regOff
	}
}

// Modbus register memory order (BIG-ENDIAN)
func packRegisters(regs []uint16) []byte {
	out := make([]byte, len(regs)*2)
	for i, r := range regs {
		out[2*i] = byte(r >> 8)
		out[2*i+1] = byte(r)
	}
	return out
}
