package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name     string
		r, g, b  uint8
		expected uint8
	}{
		{"black", 0, 0, 0, 16},
		{"white", 255, 255, 255, 231},
		{"pure red", 255, 0, 0, 196},
		{"pure blue", 0, 0, 255, 21},
		{"mid gray", 128, 128, 128, 244},
		{"cube exact", 95, 135, 175, Cube256(1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RGBTo256(tt.r, tt.g, tt.b))
		})
	}
}

func TestRGBTo16(t *testing.T) {
	assert.Equal(t, uint8(0), RGBTo16(5, 5, 5))
	assert.Equal(t, uint8(15), RGBTo16(250, 250, 250))
	assert.Equal(t, uint8(9), RGBTo16(255, 10, 10))
	assert.Equal(t, uint8(10), RGBTo16(10, 255, 10))
}

func TestPalette256RGB(t *testing.T) {
	r, g, b := Palette256RGB(196)
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})

	r, g, b = Palette256RGB(232)
	assert.Equal(t, [3]uint8{8, 8, 8}, [3]uint8{r, g, b})

	r, g, b = Palette256RGB(1)
	assert.Equal(t, [3]uint8{205, 0, 0}, [3]uint8{r, g, b})

	cr, cg, cb := CubeRGB256(Cube256(4, 1, 5))
	assert.Equal(t, [3]uint8{4, 1, 5}, [3]uint8{cr, cg, cb})
}

func TestColor_Downsample(t *testing.T) {
	rgb := RGB(255, 0, 0)

	assert.Equal(t, rgb, rgb.Downsample(ColorModeTrueColor))
	assert.Equal(t, Palette(196), rgb.Downsample(ColorMode256))
	assert.Equal(t, BrightRed, rgb.Downsample(ColorMode16))
	assert.Equal(t, Default, rgb.Downsample(ColorModeNone))

	assert.Equal(t, Default, Default.Downsample(ColorMode16))
	assert.Equal(t, Red, Red.Downsample(ColorMode256), "ANSI colors survive every color mode")
	assert.Equal(t, Palette(42), Palette(42).Downsample(ColorModeTrueColor))
}

func TestStyleBuilders(t *testing.T) {
	s := StyleDefault.Bold(true).Italic(true).Foreground(Cyan)
	assert.True(t, s.Attrs.Has(AttrBold|AttrItalic))
	assert.False(t, s.IsDefault())

	s = s.Bold(false)
	assert.False(t, s.Attrs.Has(AttrBold))
	assert.True(t, s.Attrs.Has(AttrItalic))

	assert.Equal(t, AttrNone, StyleDefault.Attributes(0xFF&^AttrStyle).Attrs, "undefined bits are masked")

	c := s.Cell('x')
	assert.Equal(t, 'x', c.Rune)
	assert.Equal(t, Cyan, c.Fg)
	assert.Equal(t, ' ', Cell{}.Printable())
}

func TestBlend(t *testing.T) {
	black, white := RGB(0, 0, 0), RGB(255, 255, 255)

	assert.Equal(t, black, Blend(black, white, 0))
	assert.Equal(t, white, Blend(black, white, 1))
	assert.Equal(t, white, Blend(black, white, 7), "t clamps")
	assert.Equal(t, Red, Blend(Default, Red, 0.5))
	assert.Equal(t, Red, Blend(Red, Default, 0.5))

	mid := Blend(black, white, 0.5)
	assert.Equal(t, ColorRGB, mid.Kind)
	assert.InDelta(t, 119, int(mid.R), 6, "Lab midpoint is perceptual gray")
	assert.InDelta(t, int(mid.R), int(mid.G), 1)
	assert.InDelta(t, int(mid.R), int(mid.B), 1)
}
