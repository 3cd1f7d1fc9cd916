package catlog

import "sync"

// Category is a named log channel with its own verbosity threshold. Each name
// maps to exactly one instance for the whole process: the first GetCategory
// call constructs it, every later call (from any goroutine) returns the same
// pointer. Categories are never destroyed or renamed.
type Category struct {
	name      string
	verbosity Verbosity
}

var (
	catMtx     sync.RWMutex
	categories = map[string]*Category{}
)

// LogGeneral is the fallback category used whenever nothing more specific is
// configured or in scope.
var LogGeneral = GetCategory(DEFAULT_CATEGORY_NAME)

// GetCategory declares-or-fetches the category with the given name. New
// categories start with DEFAULT_CATEGORY_VERBOSITY as their threshold.
func GetCategory(name string) *Category {
	catMtx.RLock()
	c := categories[name]
	catMtx.RUnlock()
	if c != nil {
		return c
	}
	catMtx.Lock()
	defer catMtx.Unlock()
	// somebody may have constructed it between the two locks
	if c = categories[name]; c == nil {
		c = &Category{name: name, verbosity: DEFAULT_CATEGORY_VERBOSITY}
		categories[name] = c
	}
	return c
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Verbosity() Verbosity {
	catMtx.RLock()
	defer catMtx.RUnlock()
	return c.verbosity
}

// SetVerbosity changes the category threshold. Out-of-range values are
// clamped to VRB_NONE which mutes the category completely.
func (c *Category) SetVerbosity(v Verbosity) {
	catMtx.Lock()
	defer catMtx.Unlock()
	c.verbosity = normVerbosity(v)
}
