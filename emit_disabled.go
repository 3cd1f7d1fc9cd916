//go:build catlog_off

package catlog

// Enabled reports whether this binary was built with the facade active.
const Enabled = false

// Every emission entry point is an empty function in this build: no
// category resolution, no filtering, no formatting, and guard callables are
// never invoked. After inlining and linker dead-code elimination the
// template literals at call sites are dropped from the binary.

func (f Flavor) Emit(v Verbosity, tmpl any, args ...any)  {}
func (f Flavor) Emitf(v Verbosity, tmpl any, args ...any) {}

func (f Flavor) EmitIf(cond bool, v Verbosity, tmpl any, args ...any)  {}
func (f Flavor) EmitfIf(cond bool, v Verbosity, tmpl any, args ...any) {}

func (f Flavor) EmitWhen(cond func() bool, v Verbosity, tmpl any, args ...any)  {}
func (f Flavor) EmitfWhen(cond func() bool, v Verbosity, tmpl any, args ...any) {}
