package catlog

import "sync"

// MessagePanel is the narrow surface of a host-provided, per-category
// message panel. The facade only appends and brings a panel to front; it
// does not own the panel's lifecycle or rendering.
type MessagePanel interface {
	Append(category string, verbosity Verbosity, message string)
	BringToFront(category string)
}

// PanelTarget routes emissions to a message panel keyed by category name and
// brings that panel to the front when the message is error-severe or worse.
type PanelTarget struct {
	panel MessagePanel
}

func NewPanelTarget(panel MessagePanel) *PanelTarget {
	return &PanelTarget{panel: panel}
}

func (t *PanelTarget) ProcessLog(cat *Category, verbosity Verbosity, message string) {
	if t.panel == nil {
		return
	}
	t.panel.Append(cat.Name(), verbosity, message)
	if v := normVerbosity(verbosity); v == VRB_ERROR || v == VRB_FATAL {
		t.panel.BringToFront(cat.Name())
	}
}

// PanelMessage is one entry retained by MemoryPanel.
type PanelMessage struct {
	Verbosity Verbosity
	Message   string
}

// MemoryPanel is an in-process MessagePanel keeping messages per category.
// Ships for tests and for hosts that have no real panel to attach.
type MemoryPanel struct {
	mtx      sync.Mutex
	listings map[string][]PanelMessage
	front    string
}

func NewMemoryPanel() *MemoryPanel {
	return &MemoryPanel{listings: map[string][]PanelMessage{}}
}

func (p *MemoryPanel) Append(category string, verbosity Verbosity, message string) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.listings[category] = append(p.listings[category], PanelMessage{verbosity, message})
}

func (p *MemoryPanel) BringToFront(category string) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.front = category
}

// Listing returns a copy of the retained messages for one category.
func (p *MemoryPanel) Listing(category string) []PanelMessage {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	listing := p.listings[category]
	out := make([]PanelMessage, len(listing))
	copy(out, listing)
	return out
}

// Front returns the category last brought to the front ("" if none).
func (p *MemoryPanel) Front() string {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.front
}
