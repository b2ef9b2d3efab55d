// Package event defines the fixed-size update events delivered to widgets:
// key and character presses, cell clicks, time deltas and resizes.
//
// Events carry no heap references and are passed by value. FromTcell adapts
// a tcell input event for hosts that read input through tcell; Queue hands
// events from a reader goroutine to a single-threaded update loop.
package event
