// FILE: grid/doc.go
// Package grid provides bounded cell surfaces and zero-copy views onto them.
//
// Core abstraction is Drawable: anything reporting Width/Height, reading cells with At
// and writing them with Set. Grid is the concrete fixed-capacity implementation over
// caller-owned storage; View is a rectangle of a Drawable with local coordinates.
//
// Design principles:
//   - No allocation in the core path: Grid storage is supplied by the caller, View is a value
//   - Tolerant access: reads outside a surface report absent, writes are dropped
//   - Composable: views nest via Of/Sub, Split helpers tile a surface without gaps
//   - Exclusive access is checked at runtime: Claim fails fast on overlapping live views,
//     and Of, Sub and the splits yield an inert view over another live claim
//
// Usage pattern:
//
//	var buf [80 * 24]terminal.Cell
//	g, _ := grid.New(buf[:], 80, 24)
//
//	left, right := grid.SplitH(g, 0.5)
//	header, body := grid.SplitVAt(right, 1)
//	header.Fill(terminal.Style{}.Reverse(true).Cell(' '))
//
//	panel, err := grid.Claim(g, grid.NewRect(0, 0, 40, 24))
//	if err != nil {
//	    // errors.Is(err, grid.ErrViewConflict)
//	}
//	defer panel.Release()
package grid
