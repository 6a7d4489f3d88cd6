// internal/display/render_test.go
package display

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/presence-lamp/internal/roster"
)

// ---- fake device ----

type fakeDevice struct {
	cells      map[int]Color
	flushes    int
	failSet    bool
	failFlush  bool
	setsBefore int // sets seen before the first flush
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{cells: make(map[int]Color)}
}

func (f *fakeDevice) SetColor(pos int, c Color) error {
	if f.failSet {
		return errors.New("set failed")
	}
	f.cells[pos] = c
	if f.flushes == 0 {
		f.setsBefore++
	}
	return nil
}

func (f *fakeDevice) Flush() error {
	f.flushes++
	if f.failFlush {
		return errors.New("flush failed")
	}
	return nil
}

// ---- tests ----

func TestNewRenderer_Validation(t *testing.T) {
	_, err := NewRenderer(nil, 4)
	require.Error(t, err)

	_, err = NewRenderer(newFakeDevice(), 0)
	require.Error(t, err)
}

func TestRenderRoster_SlotColorsAtSlotPositions(t *testing.T) {
	dev := newFakeDevice()
	r, err := NewRenderer(dev, 4)
	require.NoError(t, err)

	err = r.RenderRoster([]roster.Color{
		roster.JustJoined,
		roster.SteadyPresent,
		roster.JustLeft,
	})
	require.NoError(t, err)

	assert.Equal(t, ColorGreen, dev.cells[0])
	assert.Equal(t, ColorBlue, dev.cells[1])
	assert.Equal(t, ColorRed, dev.cells[2])

	// position beyond roster size is off
	assert.Equal(t, ColorOff, dev.cells[3])

	// full refresh, then one commit
	assert.Equal(t, 4, dev.setsBefore)
	assert.Equal(t, 1, dev.flushes)
}

func TestRenderRoster_OffSlotsStayOff(t *testing.T) {
	dev := newFakeDevice()
	r, err := NewRenderer(dev, 2)
	require.NoError(t, err)

	require.NoError(t, r.RenderRoster([]roster.Color{roster.Off, roster.Off}))

	assert.Equal(t, ColorOff, dev.cells[0])
	assert.Equal(t, ColorOff, dev.cells[1])
}

func TestRenderError_SolidIndicator(t *testing.T) {
	dev := newFakeDevice()
	r, err := NewRenderer(dev, 3)
	require.NoError(t, err)

	require.NoError(t, r.RenderError())

	for pos := 0; pos < 3; pos++ {
		assert.Equal(t, ColorRed, dev.cells[pos])
	}
	assert.Equal(t, 1, dev.flushes)
}

func TestRenderRoster_SetFailureStillFlushes(t *testing.T) {
	dev := newFakeDevice()
	dev.failSet = true
	r, err := NewRenderer(dev, 2)
	require.NoError(t, err)

	err = r.RenderRoster([]roster.Color{roster.JustJoined})
	require.Error(t, err)

	// per-position failures do not stop the refresh commit
	assert.Equal(t, 1, dev.flushes)
}

func TestRenderRoster_FlushFailureReported(t *testing.T) {
	dev := newFakeDevice()
	dev.failFlush = true
	r, err := NewRenderer(dev, 1)
	require.NoError(t, err)

	err = r.RenderRoster([]roster.Color{roster.Off})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flush")
}

func TestColor_String(t *testing.T) {
	assert.Equal(t, "off", ColorOff.String())
	assert.Equal(t, "green", ColorGreen.String())
	assert.Equal(t, "blue", ColorBlue.String())
	assert.Equal(t, "red", ColorRed.String())
}
