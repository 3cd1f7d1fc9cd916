// A categorized logging facade for Go. Call sites carry a verbosity and an
// optional category, categories carry thresholds, and a composed set of
// targets receives whatever passes the filter. Composition happens through
// Flavor values; the whole facility can be compiled out with the catlog_off
// build tag.
package catlog

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Core is the process-wide logger state: the installed settings, the scoped
// category stack and the fallback writer used to report the facade's own
// faults. There is exactly one Core per process, created lazily by Get.
type Core struct {
	sync struct {
		setsMtx sync.RWMutex // guards settings pointer
		stakMtx sync.Mutex   // guards scoped category stack
		fbckMtx sync.RWMutex // guards access to fallback writer
	}
	settings *Settings
	stack    []*Category
	fallbck  io.Writer
}

var (
	coreOnce sync.Once
	coreInst *Core
)

// Get returns the process-wide Core, constructing it with default settings
// on first use. Safe to call from any goroutine.
func Get() *Core {
	coreOnce.Do(func() {
		coreInst = &Core{
			settings: DefaultSettings(),
			fallbck:  os.Stderr,
		}
	})
	return coreInst
}

// ApplySettings installs new settings. The previous settings object is only
// de-referenced, never torn down: settings are expected to live for the rest
// of the process. A telemetry-enabled settings object triggers the one-shot
// usage ping on install.
func (c *Core) ApplySettings(s *Settings) {
	if s == nil {
		s = DefaultSettings()
	}
	c.sync.setsMtx.Lock()
	c.settings = s
	c.sync.setsMtx.Unlock()
	if s.Telemetry {
		startTelemetry()
	}
}

func (c *Core) Settings() *Settings {
	c.sync.setsMtx.RLock()
	defer c.sync.setsMtx.RUnlock()
	return c.settings
}

// SetFallback replaces the writer receiving the facade's own diagnostics
// (sink panics and the like). Nil mutes them.
func (c *Core) SetFallback(f io.Writer) {
	c.sync.fbckMtx.Lock()
	defer c.sync.fbckMtx.Unlock()
	if f != nil {
		c.fallbck = f
	} else {
		c.fallbck = io.Discard
	}
}

func (c *Core) handleDispatchError(errormsg string) {
	c.sync.fbckMtx.RLock()
	defer c.sync.fbckMtx.RUnlock()
	if c.fallbck != nil {
		fmt.Fprintln(c.fallbck, errormsg)
	}
}

func (c *Core) pushCategory(cat *Category) {
	c.sync.stakMtx.Lock()
	defer c.sync.stakMtx.Unlock()
	c.stack = append(c.stack, cat)
}

func (c *Core) popCategory(expect *Category) {
	c.sync.stakMtx.Lock()
	defer c.sync.stakMtx.Unlock()
	if len(c.stack) == 0 {
		panic("catlog: category stack underflow")
	}
	top := c.stack[len(c.stack)-1]
	if top != expect {
		panic("catlog: unbalanced scoped category release (expected `" +
			expect.Name() + "`, top is `" + top.Name() + "`)")
	}
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Core) scopeTop() *Category {
	c.sync.stakMtx.Lock()
	defer c.sync.stakMtx.Unlock()
	if len(c.stack) == 0 {
		return nil
	}
	return c.stack[len(c.stack)-1]
}

func (c *Core) scopeDepth() int {
	c.sync.stakMtx.Lock()
	defer c.sync.stakMtx.Unlock()
	return len(c.stack)
}

// resolve applies the fixed category precedence: the picker sees the current
// scope top and decides; a nil result is a contract violation (the default
// category always exists), not a recoverable error.
func (c *Core) resolve(p CategoryPicker) *Category {
	if p == nil {
		p = DeriveCategory{}
	}
	cat := p.Pick(c.scopeTop())
	if cat == nil {
		panic("catlog: no category resolvable")
	}
	return cat
}

// emit is the single pipeline behind every enabled emission entry point:
// resolve, filter, render, dispatch. Rendering is skipped entirely when the
// filter fails; a filtered-out call costs one stack peek and one comparison.
func (c *Core) emit(target Target, picker CategoryPicker, strategy FormatStrategy, v Verbosity, tmpl any, args []any) {
	cat := c.resolve(picker)
	if !shouldEmit(v, cat.Verbosity()) {
		return
	}
	msg := strategy.Render(resolveTemplate(tmpl), args)
	if target == nil {
		target = c.Settings().Target()
	}
	c.dispatch(target, cat, v, msg)
}

// dispatch hands one rendered message to one target, containing any panic:
// logging must never become a novel source of application instability.
func (c *Core) dispatch(target Target, cat *Category, v Verbosity, msg string) {
	defer func() {
		if r := recover(); r != nil {
			c.handleDispatchError(fmt.Sprintf("panic dispatching log to target `%T`: %v", target, r))
		}
	}()
	target.ProcessLog(cat, v, msg)
}
