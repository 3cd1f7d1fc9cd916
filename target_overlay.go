package catlog

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const DEFAULT_OVERLAY_DURATION = 3 * time.Second

var defaultOverlayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

// OverlayTarget imitates a transient on-screen debug overlay on a terminal:
// each message is styled, written immediately and remembered until its
// display duration expires. Active() exposes what an overlay would currently
// show, which is what hosts with a real surface poll for.
type OverlayTarget struct {
	mtx      sync.Mutex
	out      io.Writer
	duration time.Duration
	style    lipgloss.Style
	entries  []overlayEntry
	now      func() time.Time // stubbed in tests
}

type overlayEntry struct {
	text    string
	expires time.Time
}

func NewOverlayTarget(out io.Writer) *OverlayTarget {
	if out == nil {
		out = io.Discard
	}
	return &OverlayTarget{
		out:      out,
		duration: DEFAULT_OVERLAY_DURATION,
		style:    defaultOverlayStyle,
		now:      time.Now,
	}
}

// WithDuration sets how long a message stays on screen.
func (t *OverlayTarget) WithDuration(d time.Duration) *OverlayTarget {
	if d > 0 {
		t.duration = d
	}
	return t
}

// WithStyle sets the lipgloss style applied to every message.
func (t *OverlayTarget) WithStyle(s lipgloss.Style) *OverlayTarget {
	t.style = s
	return t
}

func (t *OverlayTarget) ProcessLog(cat *Category, verbosity Verbosity, message string) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	now := t.now()
	t.prune(now)
	t.entries = append(t.entries, overlayEntry{text: message, expires: now.Add(t.duration)})
	fmt.Fprintln(t.out, t.style.Render(message))
}

// Active returns the texts still within their display duration, oldest
// first.
func (t *OverlayTarget) Active() []string {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.prune(t.now())
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.text
	}
	return out
}

func (t *OverlayTarget) prune(now time.Time) {
	kept := t.entries[:0]
	for _, e := range t.entries {
		if e.expires.After(now) {
			kept = append(kept, e)
		}
	}
	t.entries = kept
}
