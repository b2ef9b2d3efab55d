package terminal

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// ColorKind selects how a Color's channels are interpreted
type ColorKind uint8

const (
	ColorDefault ColorKind = iota // terminal default, channels ignored
	ColorANSI                     // R is a 16-color index (0-15)
	Color256                      // R is an xterm-256 palette index
	ColorRGB                      // 24-bit R, G, B
)

// Color is a fixed-size color value, zero value is the terminal default
type Color struct {
	Kind    ColorKind
	R, G, B uint8
}

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorModeNone      ColorMode = iota // no color output
	ColorMode16                         // 16 ANSI colors
	ColorMode256                        // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// String returns the config name of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorMode16:
		return "16"
	case ColorMode256:
		return "256"
	case ColorModeTrueColor:
		return "truecolor"
	default:
		return "none"
	}
}

// Default is the terminal default color
var Default = Color{}

// 16-color ANSI palette
var (
	Black         = ANSI(0)
	Red           = ANSI(1)
	Green         = ANSI(2)
	Yellow        = ANSI(3)
	Blue          = ANSI(4)
	Magenta       = ANSI(5)
	Cyan          = ANSI(6)
	White         = ANSI(7)
	BrightBlack   = ANSI(8)
	BrightRed     = ANSI(9)
	BrightGreen   = ANSI(10)
	BrightYellow  = ANSI(11)
	BrightBlue    = ANSI(12)
	BrightMagenta = ANSI(13)
	BrightCyan    = ANSI(14)
	BrightWhite   = ANSI(15)
)

// ANSI returns a 16-color palette entry, index is masked to 0-15
func ANSI(index uint8) Color {
	return Color{Kind: ColorANSI, R: index & 0x0F}
}

// Palette returns an xterm-256 palette entry
func Palette(index uint8) Color {
	return Color{Kind: Color256, R: index}
}

// RGB returns a 24-bit color
func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// Gray returns an 8-bit luminance as a 24-bit gray
func Gray(l uint8) Color {
	return RGB(l, l, l)
}

// IsDefault returns true for the terminal default color
func (c Color) IsDefault() bool {
	return c.Kind == ColorDefault
}

// ansi16RGB is the xterm rendition of the 16 ANSI colors
var ansi16RGB = [16][3]uint8{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// Channels returns the approximate 24-bit value of any non-default color
func (c Color) Channels() (r, g, b uint8) {
	switch c.Kind {
	case ColorRGB:
		return c.R, c.G, c.B
	case ColorANSI:
		v := ansi16RGB[c.R&0x0F]
		return v[0], v[1], v[2]
	case Color256:
		return Palette256RGB(c.R)
	default:
		return 0, 0, 0
	}
}

// Downsample converts c to a kind representable in mode
// Default colors pass through unchanged; ColorModeNone maps everything to Default
func (c Color) Downsample(mode ColorMode) Color {
	if c.Kind == ColorDefault {
		return c
	}
	switch mode {
	case ColorModeNone:
		return Default
	case ColorMode16:
		if c.Kind == ColorANSI {
			return c
		}
		r, g, b := c.Channels()
		return ANSI(RGBTo16(r, g, b))
	case ColorMode256:
		if c.Kind == ColorRGB {
			return Palette(RGBTo256(c.R, c.G, c.B))
		}
		return c
	default:
		return c
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Color cube values for 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to the nearest cube level 0-5
func cubeIndex(v uint8) uint8 {
	best := 0
	bestDist := abs(int(v) - int(cubeValues[0]))
	for j := 1; j < 6; j++ {
		d := abs(int(v) - int(cubeValues[j]))
		if d < bestDist {
			bestDist = d
			best = j
		}
	}
	return uint8(best)
}

// RGBTo256 finds the nearest 256-color palette index for an RGB value
// Computed directly: no lookup table so the package holds no large static state
func RGBTo256(r, g, b uint8) uint8 {
	cubeR, cubeG, cubeB := cubeIndex(r), cubeIndex(g), cubeIndex(b)

	// Grayscale ramp: 232-255 maps to luminance 8, 18, 28, ..., 238
	gray := (int(r) + int(g) + int(b)) / 3
	maxDiff := max(abs(int(r)-gray), abs(int(g)-gray), abs(int(b)-gray))

	if maxDiff < 10 {
		if gray < 4 {
			return 16
		}
		if gray > 243 {
			return 231
		}
		step := (gray - 8) / 10
		if step < 0 {
			step = 0
		}
		if step > 23 {
			step = 23
		}
		grayLevel := 8 + step*10
		grayDist := abs(int(r)-grayLevel) + abs(int(g)-grayLevel) + abs(int(b)-grayLevel)
		cubeDist := abs(int(r)-int(cubeValues[cubeR])) +
			abs(int(g)-int(cubeValues[cubeG])) +
			abs(int(b)-int(cubeValues[cubeB]))

		if grayDist < cubeDist {
			return Gray256(uint8(step))
		}
	}

	return Cube256(cubeR, cubeG, cubeB)
}

// RGBTo16 finds the perceptually nearest ANSI color (CIE Lab distance)
func RGBTo16(r, g, b uint8) uint8 {
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	best := uint8(0)
	bestDist := -1.0
	for i, v := range ansi16RGB {
		c := colorful.Color{R: float64(v[0]) / 255, G: float64(v[1]) / 255, B: float64(v[2]) / 255}
		d := target.DistanceLab(c)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = uint8(i)
		}
	}
	return best
}

// Blend mixes a toward b by t through CIE Lab, t clamped to [0,1]
// The result is 24-bit; a default endpoint yields the other color
func Blend(a, b Color, t float64) Color {
	switch {
	case a.IsDefault():
		return b
	case b.IsDefault() || t <= 0:
		return a
	case t >= 1:
		return b
	}
	ar, ag, ab := a.Channels()
	br, bg, bb := b.Channels()
	ca := colorful.Color{R: float64(ar) / 255, G: float64(ag) / 255, B: float64(ab) / 255}
	cb := colorful.Color{R: float64(br) / 255, G: float64(bg) / 255, B: float64(bb) / 255}
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return RGB(r, g, bl)
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	switch termenv.EnvColorProfile() {
	case termenv.TrueColor:
		return ColorModeTrueColor
	case termenv.ANSI256:
		return ColorMode256
	case termenv.ANSI:
		return ColorMode16
	default:
		return ColorModeNone
	}
}
