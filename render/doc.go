// Package render presents a grid on an output device.
//
// Direct writes plain characters, ANSI writes cursor-addressed text with SGR
// styling down-sampled to a terminal's color mode, and Tcell copies cells onto
// a tcell screen. Renderers only read the grid and report output failures as
// *FlushError.
package render
