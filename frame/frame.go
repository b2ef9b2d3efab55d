// Package frame drives one widget tree against one grid and renderer.
//
// A Session owns no loop and starts no goroutines: the host calls Update
// for each event and Draw once per frame.
package frame

import (
	"errors"
	"fmt"
	"io"

	"github.com/lixenwraith/cellgrid/config"
	"github.com/lixenwraith/cellgrid/event"
	"github.com/lixenwraith/cellgrid/grid"
	"github.com/lixenwraith/cellgrid/internal/debug"
	"github.com/lixenwraith/cellgrid/render"
	"github.com/lixenwraith/cellgrid/terminal"
	"github.com/lixenwraith/cellgrid/widget"
)

var (
	// ErrHeapFree indicates a session needing heap storage while heap_free is set
	ErrHeapFree = errors.New("frame: heap allocation disabled")
	// ErrFeatureDisabled indicates an operation gated by a disabled feature
	ErrFeatureDisabled = errors.New("frame: feature disabled")
)

// Option configures a Session
type Option func(*Session)

// WithRenderer replaces the renderer chosen from the features
func WithRenderer(r render.Renderer) Option {
	return func(s *Session) {
		s.renderer = r
	}
}

// Session binds a grid, a renderer and the features they were built from
type Session struct {
	features config.FeaturesConfig
	grid     *grid.Grid
	renderer render.Renderer
	owned    bool // storage came from grid.Alloc
	frames   uint64
}

// New builds a session over buf, or heap storage when buf is nil and host
// allocation is enabled. Output goes to out through ANSI when color_output
// is set, plain text otherwise.
func New(cfg *config.Config, buf []terminal.Cell, w, h int, out io.Writer, opts ...Option) (*Session, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s := &Session{features: cfg.Features}

	if buf == nil {
		if !s.heapAllowed() {
			return nil, fmt.Errorf("%w: no storage for %dx%d", ErrHeapFree, w, h)
		}
		if w < 0 || h < 0 {
			return nil, fmt.Errorf("frame: %w: %dx%d", grid.ErrInvalidSize, w, h)
		}
		s.grid = grid.Alloc(w, h)
		s.owned = true
	} else {
		g, err := grid.New(buf, w, h)
		if err != nil {
			return nil, fmt.Errorf("frame: %w", err)
		}
		s.grid = g
	}

	for _, opt := range opts {
		opt(s)
	}
	if s.renderer == nil {
		if cfg.Features.ColorOutput {
			s.renderer = render.NewANSI(out,
				render.WithColorMode(cfg.ColorMode()),
				render.WithClear(cfg.Render.Clear),
				render.WithCursorHidden(cfg.Render.HideCursor),
				render.WithNoWrap(cfg.Render.NoWrap))
		} else {
			s.renderer = render.NewDirect(out)
		}
	}

	debug.Log("frame: session %dx%d owned=%t renderer=%T", w, h, s.owned, s.renderer)
	return s, nil
}

func (s *Session) heapAllowed() bool {
	return s.features.HostAlloc && !s.features.HeapFree
}

// Grid returns the session grid
func (s *Session) Grid() *grid.Grid {
	return s.grid
}

// Renderer returns the active renderer
func (s *Session) Renderer() render.Renderer {
	return s.renderer
}

// Frames returns the number of successfully drawn frames
func (s *Session) Frames() uint64 {
	return s.frames
}

// Update delivers ev to w with the current grid contents as its screen
func (s *Session) Update(ev event.Event, w widget.Widget) (widget.Result, error) {
	res, err := widget.Dispatch(w, ev, s.grid)
	if err != nil {
		debug.Log("frame: update %s: %v", ev, err)
	}
	return res, err
}

// Draw clears the grid, renders w over all of it and emits the frame
func (s *Session) Draw(w widget.Widget) error {
	defer debug.Timed("frame: draw")()

	s.grid.Clear()
	if err := widget.Draw(w, s.grid); err != nil {
		debug.Log("frame: render: %v", err)
		return err
	}
	if err := s.renderer.Draw(s.grid); err != nil {
		debug.Log("frame: output: %v", err)
		return err
	}
	s.frames++
	return nil
}

// Resize changes the grid dimensions. Caller storage is fixed; heap storage
// is replaced when the new size exceeds it.
func (s *Session) Resize(w, h int) error {
	err := s.grid.Resize(w, h)
	if errors.Is(err, grid.ErrCapacity) && s.owned {
		s.grid = grid.Alloc(w, h)
		err = nil
	}
	if err != nil {
		return fmt.Errorf("frame: %w", err)
	}
	debug.Log("frame: resize %dx%d", w, h)
	return nil
}

// Step applies one host event: resize events resize the grid first, then the
// event is delivered and a frame drawn
func (s *Session) Step(ev event.Event, w widget.Widget) (widget.Result, error) {
	if ev.Type == event.TypeResize {
		if err := s.Resize(ev.Width, ev.Height); err != nil {
			return widget.NoEvent, err
		}
	}
	res, err := s.Update(ev, w)
	if err != nil {
		return res, err
	}
	return res, s.Draw(w)
}

// Tiles partitions the grid along axis by weights into dst.
// Requires extended_math.
func (s *Session) Tiles(axis grid.Axis, weights []int, dst []grid.View) ([]grid.View, error) {
	if !s.features.ExtendedMath {
		return dst[:0], fmt.Errorf("%w: extended_math", ErrFeatureDisabled)
	}
	return grid.SplitWeights(s.grid, axis, weights, dst), nil
}
