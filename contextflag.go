package catlog

import "sync"

// ContextFlag is a named, refcounted process-wide boolean. Code anywhere can
// ask IsActive without depending on whoever opened the flag - e.g. a widget
// suppresses its own logging while some editor path is on the stack. The
// flag is active iff at least one scoped guard is currently open; overlapping
// and nested guards compose freely.
//
// Flags serve any conditional behavior, not just log routing.
type ContextFlag struct {
	mtx     sync.Mutex
	name    string
	counter uint32
}

var (
	flagMtx sync.RWMutex
	flags   = map[string]*ContextFlag{}
)

// GetContextFlag declares-or-fetches the flag with the given name, with the
// same lazy exactly-once semantics as GetCategory.
func GetContextFlag(name string) *ContextFlag {
	flagMtx.RLock()
	f := flags[name]
	flagMtx.RUnlock()
	if f != nil {
		return f
	}
	flagMtx.Lock()
	defer flagMtx.Unlock()
	if f = flags[name]; f == nil {
		f = &ContextFlag{name: name}
		flags[name] = f
	}
	return f
}

func (f *ContextFlag) Name() string {
	return f.name
}

func (f *ContextFlag) IsActive() bool {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.counter > 0
}

// WhenActive runs fn iff the flag is currently active.
func (f *ContextFlag) WhenActive(fn func()) {
	if f.IsActive() {
		fn()
	}
}

// WhenNotActive runs fn iff the flag is currently inactive.
func (f *ContextFlag) WhenNotActive(fn func()) {
	if !f.IsActive() {
		fn()
	}
}

func (f *ContextFlag) increment() {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.counter++
}

func (f *ContextFlag) decrement() {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	if f.counter == 0 {
		panic("catlog: context flag `" + f.name + "` counter underflow")
	}
	f.counter--
}

// ScopedContext holds a flag open for a lexical scope. Construction with a
// true value increments the counter, Release decrements it; a false value
// makes both no-ops so guards can be opened conditionally:
//
//	defer flag.Scoped(insideEditor).Release()
type ScopedContext struct {
	flag     *ContextFlag
	counted  bool
	released bool
}

// Scoped opens a guard on the flag when value is true.
func (f *ContextFlag) Scoped(value bool) *ScopedContext {
	if value {
		f.increment()
	}
	return &ScopedContext{flag: f, counted: value}
}

// Release closes the guard. Unconditional release on every scope exit path
// keeps the increment/decrement pairing balanced; releasing twice panics.
func (sc *ScopedContext) Release() {
	if sc.released {
		panic("catlog: scoped context released twice")
	}
	if sc.counted {
		sc.flag.decrement()
	}
	sc.released = true
}
