package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cellgrid/config"
	"github.com/lixenwraith/cellgrid/event"
	"github.com/lixenwraith/cellgrid/frame"
	"github.com/lixenwraith/cellgrid/widget"
)

func plainConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Features.ColorOutput = false
	return cfg
}

func palette(t *testing.T, cfg *config.Config) config.Palette {
	t.Helper()
	pal, err := cfg.Theme.Colors()
	require.NoError(t, err)
	return pal
}

func TestPageIndex(t *testing.T) {
	assert.Equal(t, 0, pageIndex("prompt"))
	assert.Equal(t, 2, pageIndex("split"))
	assert.Equal(t, -1, pageIndex("nope"))
}

func TestSnapshotStacking(t *testing.T) {
	cfg := plainConfig()
	var out bytes.Buffer
	p := buildPage("stacking", cfg, palette(t, cfg))
	require.NoError(t, snapshot(&out, cfg, p.root, 30, 9))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 9)
	pad := strings.Repeat(" ", 8)
	assert.Equal(t, pad+"Top widget"+strings.Repeat(" ", 12), lines[3])
	assert.Equal(t, pad+"Middle widget"+strings.Repeat(" ", 9), lines[4])
	assert.Equal(t, pad+"Bottom widget"+strings.Repeat(" ", 9), lines[5])
	assert.Equal(t, strings.Repeat(" ", 30), lines[0])
}

func TestSnapshotANSI(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Render.ColorMode = "16"
	cfg.Render.Clear = false

	var out bytes.Buffer
	p := buildPage("prompt", cfg, palette(t, cfg))
	require.NoError(t, snapshot(&out, cfg, p.root, 57, 14))

	visible := ansi.Strip(out.String())
	assert.Contains(t, visible, "Continue?")
	assert.Contains(t, visible, " Yes   No ")
	assert.Contains(t, out.String(), "\x1b[")
}

func TestSnapshotHeapFree(t *testing.T) {
	cfg := plainConfig()
	cfg.Features.HeapFree = true
	cfg.Features.HostAlloc = false

	var out bytes.Buffer
	p := buildPage("split", cfg, palette(t, cfg))
	require.NoError(t, snapshot(&out, cfg, p.root, 50, 20))
	assert.Contains(t, out.String(), "too loud")

	err := snapshot(&out, cfg, p.root, maxWidth+1, maxHeight)
	assert.Error(t, err)
}

func TestSplitPageHalves(t *testing.T) {
	for _, extended := range []bool{true, false} {
		cfg := plainConfig()
		cfg.Features.ExtendedMath = extended

		var out bytes.Buffer
		p := buildPage("split", cfg, palette(t, cfg))
		require.NoError(t, snapshot(&out, cfg, p.root, 50, 20))

		lines := strings.Split(out.String(), "\n")
		// Text starts two cells inside each half
		assert.Equal(t, "Here's", lines[2][2:8])
		assert.Equal(t, "The", lines[2][27:30])
	}
}

func TestBuiltinWidgetsDisabled(t *testing.T) {
	cfg := plainConfig()
	cfg.Features.BuiltinWidgets = false

	var out bytes.Buffer
	p := buildPage("split", cfg, palette(t, cfg))
	require.NoError(t, snapshot(&out, cfg, p.root, 8, 2))
	assert.Equal(t, "split   \n        \n", out.String())
}

func TestPromptAnswer(t *testing.T) {
	cfg := plainConfig()
	s, err := frame.New(cfg, nil, 57, 14, &bytes.Buffer{})
	require.NoError(t, err)

	p := buildPage("prompt", cfg, palette(t, cfg))
	require.NotNil(t, p.buttons)

	res, err := s.Update(event.KeyPress(event.KeyLeft, 0), p.root)
	require.NoError(t, err)
	assert.Equal(t, widget.Interacted, res)

	res, err = s.Update(event.KeyPress(event.KeyEnter, 0), p.root)
	require.NoError(t, err)
	assert.Equal(t, widget.LifecycleEnd, res)
	assert.Equal(t, " Yes ", p.buttons.Choice())
}
