// internal/display/term/device_test.go
package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/presence-lamp/internal/display"
)

func TestFlush_OneLinePerFlush(t *testing.T) {
	var out bytes.Buffer
	dev, err := NewDevice(&out, 3)
	require.NoError(t, err)

	require.NoError(t, dev.SetColor(0, display.ColorGreen))
	require.NoError(t, dev.SetColor(2, display.ColorRed))
	require.NoError(t, dev.Flush())
	require.NoError(t, dev.Flush())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
}

func TestFlush_GlyphPerPosition(t *testing.T) {
	var out bytes.Buffer
	dev, err := NewDevice(&out, 4)
	require.NoError(t, err)

	require.NoError(t, dev.SetColor(0, display.ColorGreen))
	require.NoError(t, dev.SetColor(1, display.ColorBlue))
	require.NoError(t, dev.Flush())

	line := out.String()
	assert.Equal(t, 2, strings.Count(line, glyphLit))
	assert.Equal(t, 2, strings.Count(line, glyphOff))
}

func TestSetColor_OutOfRange(t *testing.T) {
	dev, err := NewDevice(&bytes.Buffer{}, 1)
	require.NoError(t, err)

	require.Error(t, dev.SetColor(-1, display.ColorRed))
	require.Error(t, dev.SetColor(1, display.ColorRed))
}

func TestNewDevice_Validation(t *testing.T) {
	_, err := NewDevice(nil, 3)
	require.Error(t, err)

	_, err = NewDevice(&bytes.Buffer{}, 0)
	require.Error(t, err)
}
