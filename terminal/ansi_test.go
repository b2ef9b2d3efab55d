package terminal

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sgr(t *testing.T, prev, next Style, mode ColorMode) (string, Style) {
	t.Helper()
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	got := WriteSGR(w, prev, next, mode)
	require.NoError(t, w.Flush())
	return buf.String(), got
}

func TestWriteSGR(t *testing.T) {
	tests := []struct {
		name     string
		prev     Style
		next     Style
		mode     ColorMode
		expected string
	}{
		{"unchanged default", StyleDefault, StyleDefault, ColorModeTrueColor, ""},
		{"ansi foreground", StyleDefault, StyleDefault.Foreground(Red), ColorModeTrueColor, "\x1b[31m"},
		{"bright background", StyleDefault, StyleDefault.Background(BrightBlue), ColorModeTrueColor, "\x1b[104m"},
		{"palette", StyleDefault, StyleDefault.Foreground(Palette(208)), ColorMode256, "\x1b[38;5;208m"},
		{"rgb", StyleDefault, StyleDefault.Background(RGB(1, 2, 3)), ColorModeTrueColor, "\x1b[48;2;1;2;3m"},
		{"attributes", StyleDefault, StyleDefault.Bold(true).Underline(true), ColorModeTrueColor, "\x1b[1;4m"},
		{"reset before change", StyleDefault.Foreground(Red), StyleDefault.Foreground(Green), ColorModeTrueColor, "\x1b[0;32m"},
		{"back to default", StyleDefault.Bold(true), StyleDefault, ColorModeTrueColor, "\x1b[0m"},
		{"downsampled rgb", StyleDefault, StyleDefault.Foreground(RGB(255, 0, 0)), ColorMode256, "\x1b[38;5;196m"},
		{"monochrome keeps attributes", StyleDefault, StyleDefault.Foreground(Red).Reverse(true), ColorModeNone, "\x1b[7m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := sgr(t, tt.prev, tt.next, tt.mode)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestWriteSGR_ReturnsEmittedStyle(t *testing.T) {
	next := StyleDefault.Foreground(RGB(255, 0, 0))
	out, got := sgr(t, StyleDefault, next, ColorMode16)
	assert.Equal(t, "\x1b[91m", out)
	assert.Equal(t, BrightRed, got.Fg)

	// Same logical style after downsampling emits nothing
	out, again := sgr(t, got, next, ColorMode16)
	assert.Empty(t, out)
	assert.Equal(t, got, again)
}

func TestWriteCursorPos(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	WriteCursorPos(w, 0, 0)
	WriteCursorPos(w, 79, 23)
	WriteCursorPos(w, 1233, 0)
	require.NoError(t, w.Flush())
	assert.Equal(t, "\x1b[1;1H\x1b[24;80H\x1b[1;1234H", buf.String())
}
