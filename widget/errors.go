package widget

import (
	"errors"
	"fmt"
)

// ErrTextOverflow indicates strict text that does not fit its bounds
var ErrTextOverflow = errors.New("widget: text exceeds bounds")

// RenderError records the widget whose render failed
// errors.Is and errors.As reach the cause
type RenderError struct {
	Widget string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("widget: render %s: %v", e.Widget, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// UpdateError records the widget whose update failed
type UpdateError struct {
	Widget string
	Err    error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("widget: update %s: %v", e.Widget, e.Err)
}

func (e *UpdateError) Unwrap() error {
	return e.Err
}

func wrapRender(w Widget, err error) error {
	var re *RenderError
	if errors.As(err, &re) {
		return err
	}
	return &RenderError{Widget: fmt.Sprintf("%T", w), Err: err}
}

func wrapUpdate(w Widget, err error) error {
	var ue *UpdateError
	if errors.As(err, &ue) {
		return err
	}
	return &UpdateError{Widget: fmt.Sprintf("%T", w), Err: err}
}
