// Package widget defines the Widget contract and the structural widgets that
// compose layouts: Margin, Centered, Stacked, ShrinkWrap and Backdrop.
//
// A widget renders into a rectangle of a grid.Drawable and reacts to events
// with read-only access to its on-screen area. Structural widgets own their
// child by value and derive the child's rectangle from the child's optional
// bounding box:
//
//	prompt := widget.Center(widget.OnBackdrop(terminal.Yellow,
//		widget.Stack(
//			widget.WithMargin(1, widget.NewText("Continue?")),
//			widget.NewButtons(" Yes ", " No "),
//		)))
//	err := widget.Draw(prompt, g)
//
// Text, Fill, Border, Buttons and Func are small fixtures for building screens.
package widget
