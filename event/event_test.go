package event

import (
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cellgrid/grid"
)

func TestEvent_RelativeTo(t *testing.T) {
	r := grid.NewRect(4, 2, 10, 5)

	tests := []struct {
		name     string
		ev       Event
		expected Event
	}{
		{"inside", Click(6, 3, ButtonPrimary), Click(2, 1, ButtonPrimary)},
		{"origin", Click(4, 2, ButtonSecondary), Click(0, 0, ButtonSecondary)},
		{"left of rect", Click(3, 3, ButtonPrimary), None},
		{"above rect", Click(5, 1, ButtonPrimary), None},
		{"past right edge keeps offset", Click(20, 2, ButtonPrimary), Click(16, 0, ButtonPrimary)},
		{"key untouched", KeyPress(KeyEnter, ModNone), KeyPress(KeyEnter, ModNone)},
		{"tick untouched", Tick(time.Second), Tick(time.Second)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ev.RelativeTo(r))
		})
	}
}

func TestEvent_Inside(t *testing.T) {
	r := grid.NewRect(0, 0, 3, 3)
	assert.True(t, Click(2, 2, ButtonPrimary).Inside(r))
	assert.False(t, Click(3, 2, ButtonPrimary).Inside(r))
	assert.False(t, RunePress('a', ModNone).Inside(r))
}

func TestEvent_String(t *testing.T) {
	assert.Equal(t, "Key(Ctrl+escape, down)", KeyPress(KeyEscape, ModCtrl).String())
	assert.Equal(t, "Rune('x', down)", RunePress('x', ModNone).String())
	assert.Equal(t, "Click(1, 2, Primary)", Click(1, 2, ButtonPrimary).String())
	assert.Equal(t, "Resize(80x24)", Resize(80, 24).String())
	assert.Equal(t, "None", None.String())
	assert.True(t, None.IsNone())
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		key    Key
		exists bool
	}{
		{"named", "escape", KeyEscape, true},
		{"case and space", "  Page_Down ", KeyPageDown, true},
		{"ctrl letter", "ctrl_q", KeyCtrlQ, true},
		{"function", "f12", KeyF12, true},
		{"unknown", "hyper", KeyNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, ok := ParseKey(tt.input)
			assert.Equal(t, tt.exists, ok)
			assert.Equal(t, tt.key, k)
			if ok {
				back, _ := ParseKey(k.String())
				assert.Equal(t, k, back)
			}
		})
	}
}

func TestFromTcell(t *testing.T) {
	tests := []struct {
		name     string
		ev       tcell.Event
		expected Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), RunePress('q', ModNone)},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), KeyPress(KeySpace, ModNone)},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), KeyPress(KeyEnter, ModNone)},
		{"arrow with shift", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), KeyPress(KeyUp, ModShift)},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), KeyPress(KeyCtrlQ, ModCtrl)},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), KeyPress(KeyBackspace, ModNone)},
		{"click", tcell.NewEventMouse(5, 7, tcell.Button1, tcell.ModNone), Click(5, 7, ButtonPrimary)},
		{"wheel", tcell.NewEventMouse(1, 1, tcell.WheelDown, tcell.ModNone), Click(1, 1, ButtonWheelDown)},
		{"motion", tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone), None},
		{"resize", tcell.NewEventResize(100, 40), Resize(100, 40)},
		{"nil", nil, None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromTcell(tt.ev))
		})
	}
}

func TestQueue_FIFO(t *testing.T) {
	var q Queue
	buf := make([]Event, 0, QueueSize)

	assert.Empty(t, q.Consume(buf))

	for i := 0; i < 5; i++ {
		q.Push(Tick(time.Duration(i)))
	}
	assert.Equal(t, 5, q.Len())

	got := q.Consume(buf)
	require.Len(t, got, 5)
	for i, ev := range got {
		assert.Equal(t, time.Duration(i), ev.Delta)
	}
	assert.Equal(t, 0, q.Len())
}

func TestQueue_Overflow(t *testing.T) {
	var q Queue
	for i := 0; i < QueueSize+10; i++ {
		q.Push(Tick(time.Duration(i)))
	}
	assert.Equal(t, QueueSize, q.Len())

	got := q.Consume(nil)
	require.Len(t, got, QueueSize)
	assert.Equal(t, time.Duration(10), got[0].Delta, "oldest events are overwritten")
	assert.Equal(t, time.Duration(QueueSize+9), got[len(got)-1].Delta)
}

func TestQueue_ConcurrentProducers(t *testing.T) {
	var q Queue
	var wg sync.WaitGroup
	const producers, each = 4, 16

	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				q.Push(RunePress('a', ModNone))
			}
		}()
	}
	wg.Wait()

	got := q.Consume(make([]Event, 0, QueueSize))
	assert.Len(t, got, producers*each)
}
