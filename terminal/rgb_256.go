package terminal

// xterm 256-color palette layout
//
// 0-15: the ANSI colors
// Color cube: index = 16 + 36*r + 6*g + b where r,g,b ∈ [0,5]
// Grayscale ramp: indices 232-255, level = 8 + 10*(index-232)

// Cube256 returns the xterm 256-palette index for an RGB cube coordinate.
// r, g, b must be in [0,5]. Values outside that range are clamped.
func Cube256(r, g, b uint8) uint8 {
	if r > 5 {
		r = 5
	}
	if g > 5 {
		g = 5
	}
	if b > 5 {
		b = 5
	}
	return 16 + 36*r + 6*g + b
}

// CubeRGB256 returns the (r, g, b) cube coordinates for a 256-palette color cube index.
// Index must be in [16,231]. Returns (0,0,0) for out-of-range indices.
func CubeRGB256(index uint8) (r, g, b uint8) {
	if index < 16 || index > 231 {
		return 0, 0, 0
	}
	n := index - 16
	r = n / 36
	g = (n % 36) / 6
	b = n % 6
	return r, g, b
}

// Gray256 returns the xterm 256-palette index for a grayscale step.
// step must be in [0,23] (maps to indices 232-255, levels 8-238).
func Gray256(step uint8) uint8 {
	if step > 23 {
		step = 23
	}
	return 232 + step
}

// Palette256RGB returns the 24-bit value xterm uses for a palette index
func Palette256RGB(index uint8) (r, g, b uint8) {
	switch {
	case index < 16:
		v := ansi16RGB[index]
		return v[0], v[1], v[2]
	case index >= 232:
		l := 8 + 10*(index-232)
		return l, l, l
	default:
		cr, cg, cb := CubeRGB256(index)
		return cubeValues[cr], cubeValues[cg], cubeValues[cb]
	}
}
