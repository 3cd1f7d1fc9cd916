//go:build !catlog_off

package catlog

// Enabled reports whether this binary was built with the facade active.
// Build with -tags catlog_off to compile every emission away.
const Enabled = true

// Emit renders tmpl with numbered-placeholder substitution and dispatches it
// at the given verbosity. The guard order for all entry points is fixed:
// condition first, then category-threshold filter, then formatting, then
// dispatch, short-circuiting at the first failing stage.
func (f Flavor) Emit(v Verbosity, tmpl any, args ...any) {
	Get().emit(f.target, f.pickerOrDefault(), NumberedFormat{}, v, tmpl, args)
}

// Emitf is Emit with printf-style rendering.
func (f Flavor) Emitf(v Verbosity, tmpl any, args ...any) {
	Get().emit(f.target, f.pickerOrDefault(), PrintfFormat{}, v, tmpl, args)
}

// EmitIf emits only when cond is true.
func (f Flavor) EmitIf(cond bool, v Verbosity, tmpl any, args ...any) {
	if cond {
		f.Emit(v, tmpl, args...)
	}
}

// EmitfIf is EmitIf with printf-style rendering.
func (f Flavor) EmitfIf(cond bool, v Verbosity, tmpl any, args ...any) {
	if cond {
		f.Emitf(v, tmpl, args...)
	}
}

// EmitWhen emits only when cond() returns true. The callable is skipped
// entirely in catlog_off builds, so arbitrarily expensive conditions are
// free there.
func (f Flavor) EmitWhen(cond func() bool, v Verbosity, tmpl any, args ...any) {
	if cond != nil && cond() {
		f.Emit(v, tmpl, args...)
	}
}

// EmitfWhen is EmitWhen with printf-style rendering.
func (f Flavor) EmitfWhen(cond func() bool, v Verbosity, tmpl any, args ...any) {
	if cond != nil && cond() {
		f.Emitf(v, tmpl, args...)
	}
}
