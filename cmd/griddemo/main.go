// Command griddemo shows the cellgrid layout widgets in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellgrid/config"
	"github.com/lixenwraith/cellgrid/event"
	"github.com/lixenwraith/cellgrid/frame"
	logger "github.com/lixenwraith/cellgrid/internal/debug"
	"github.com/lixenwraith/cellgrid/render"
	"github.com/lixenwraith/cellgrid/terminal"
	"github.com/lixenwraith/cellgrid/widget"
)

// Static storage used when heap_free forbids allocating the grid
const (
	maxWidth  = 320
	maxHeight = 120
)

var storage [maxWidth * maxHeight]terminal.Cell

var (
	configFlag   = flag.String("config", "cellgrid.toml", "Path to the TOML configuration")
	pageFlag     = flag.String("page", "prompt", "Initial page: prompt, stacking, split")
	debugFlag    = flag.String("debug", "", "Write a debug log to this file")
	snapshotFlag = flag.Bool("snapshot", false, "Print one frame to stdout and exit")
	widthFlag    = flag.Int("width", 57, "Snapshot width")
	heightFlag   = flag.Int("height", 14, "Snapshot height")
	writeFlag    = flag.String("write-config", "", "Write the default configuration to this path and exit")
)

func main() {
	flag.Parse()

	if *writeFlag != "" {
		if err := config.Save(*writeFlag, config.DefaultConfig()); err != nil {
			fatal("write config: %v", err)
		}
		return
	}

	if *debugFlag != "" {
		if err := logger.Enable(*debugFlag); err != nil {
			fatal("debug log: %v", err)
		}
		defer logger.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fatal("%v", err)
	}
	pal, err := cfg.Theme.Colors()
	if err != nil {
		fatal("%v", err)
	}

	current := pageIndex(*pageFlag)
	if current < 0 {
		fatal("unknown page %q", *pageFlag)
	}

	if *snapshotFlag {
		p := buildPage(pageNames[current], cfg, pal)
		if err := snapshot(os.Stdout, cfg, p.root, *widthFlag, *heightFlag); err != nil {
			fatal("%v", err)
		}
		return
	}

	if err := run(cfg, pal, current); err != nil {
		fatal("%v", err)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "griddemo: "+format+"\n", args...)
	os.Exit(1)
}

// cellStorage returns the caller-provided buffer for a session, nil to let
// the session allocate
func cellStorage(cfg *config.Config) []terminal.Cell {
	if cfg.Features.HeapFree {
		return storage[:]
	}
	return nil
}

// snapshot renders root once through the configured ANSI or plain renderer
func snapshot(out io.Writer, cfg *config.Config, root widget.Widget, w, h int) error {
	s, err := frame.New(cfg, cellStorage(cfg), w, h, out)
	if err != nil {
		return err
	}
	if err := s.Draw(root); err != nil {
		return err
	}
	_, err = io.WriteString(out, "\n")
	return err
}

func run(cfg *config.Config, pal config.Palette, current int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	screen.EnableMouse()

	// Panic Recovery: restore the terminal before reporting the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mGRIDDEMO CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	w, h := screen.Size()
	if cfg.Features.HeapFree {
		w, h = min(w, maxWidth), min(h, maxHeight)
	}
	session, err := frame.New(cfg, cellStorage(cfg), w, h, nil,
		frame.WithRenderer(render.NewTcell(screen)))
	if err != nil {
		return err
	}

	// Dedicated input goroutine
	var queue event.Queue
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(quit)
				return
			}
			if e := event.FromTcell(ev); !e.IsNone() {
				queue.Push(e)
			}
		}
	}()

	quitKey, nextKey := cfg.Keys.QuitKey(), cfg.Keys.NextKey()
	p := buildPage(pageNames[current], cfg, pal)
	dirty := true

	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	events := make([]event.Event, 0, event.QueueSize)
	last := time.Now()
	for {
		select {
		case <-quit:
			return nil
		case now := <-ticker.C:
			events = queue.Consume(events)
			events = append(events, event.Tick(now.Sub(last)))
			last = now

			for _, ev := range events {
				switch {
				case ev.Type == event.TypeKey && (ev.Key == quitKey || ev.Key == event.KeyCtrlC):
					return nil
				case ev.Type == event.TypeKey && ev.Key == nextKey && p.buttons == nil:
					current = (current + 1) % len(pageNames)
					p = buildPage(pageNames[current], cfg, pal)
					dirty = true
					continue
				case ev.Type == event.TypeResize:
					if err := resize(session, cfg, ev.Width, ev.Height); err != nil {
						return err
					}
					screen.Sync()
					dirty = true
					continue
				}

				res, err := session.Update(ev, p.root)
				if err != nil {
					return err
				}
				switch res {
				case widget.LifecycleEnd:
					if p.buttons != nil {
						logger.Log("griddemo: %s answered %q", p.name, p.buttons.Choice())
					}
					current = (current + 1) % len(pageNames)
					p = buildPage(pageNames[current], cfg, pal)
					dirty = true
				case widget.Interacted:
					dirty = true
				}
			}

			if dirty {
				if err := session.Draw(p.root); err != nil {
					return err
				}
				dirty = false
			}
		}
	}
}

// resize follows the terminal, clamping to static storage under heap_free
func resize(s *frame.Session, cfg *config.Config, w, h int) error {
	if cfg.Features.HeapFree {
		w, h = min(w, maxWidth), min(h, maxHeight)
	}
	return s.Resize(w, h)
}
