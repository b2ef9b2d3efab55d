// @focus: #sys { term }
// Package terminal provides the cell model and ANSI encoding primitives shared by grids and renderers.
//
// Features:
//   - Cell: rune plus fixed-size Style (fg, bg, attribute bits), copied by value
//   - Colors: terminal default, 16-color, xterm-256 and 24-bit, with downsampling per ColorMode
//   - Allocation-free SGR and cursor sequence writers over bufio.Writer
//   - Color capability detection from the environment
//
// Sequences are emitted directly; terminfo/termcap is not consulted.
package terminal
