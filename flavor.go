package catlog

// Flavor is a composed logger configuration: one target chain plus one
// category-resolution policy. Flavors are cheap immutable values - build
// them once at package level and share them:
//
//	var uiLog = catlog.Default().
//		WithCategory(catlog.GetCategory("LogUI")).
//		WithTargets(catlog.NewConsoleTarget(os.Stderr))
//
// The zero Flavor (and Default()) resolves the category from the scope stack
// and routes to whatever settings are installed in the core.
type Flavor struct {
	target Target
	picker CategoryPicker
}

// Default returns the flavor using the installed settings' targets and the
// derive-category policy.
func Default() Flavor {
	return Flavor{}
}

// New composes a flavor from an explicit target and picker; nil fields fall
// back to the defaults described on Flavor.
func New(target Target, picker CategoryPicker) Flavor {
	return Flavor{target: target, picker: picker}
}

// WithTargets replaces the flavor's target chain.
func (f Flavor) WithTargets(targets ...Target) Flavor {
	f.target = Targets(targets...)
	return f
}

// AddTargets appends targets after the flavor's current chain.
func (f Flavor) AddTargets(targets ...Target) Flavor {
	if f.target == nil {
		return f.WithTargets(targets...)
	}
	f.target = Targets(append([]Target{f.target}, targets...)...)
	return f
}

// WithDefaultCategory keeps scope-stack derivation but changes the category
// used when no scope is active.
func (f Flavor) WithDefaultCategory(cat *Category) Flavor {
	f.picker = DeriveCategory{Default: cat}
	return f
}

// WithCategory pins the flavor to one category, ignoring the scope stack.
func (f Flavor) WithCategory(cat *Category) Flavor {
	f.picker = SpecificCategory{C: cat}
	return f
}

// Per-verbosity shorthand. Plain names render numbered placeholders ({0},
// {1}, ...), the f-suffixed ones are printf-style. Conditional call shapes
// go through EmitIf/EmitWhen.

func (f Flavor) Log(tmpl any, args ...any)   { f.Emit(VRB_LOG, tmpl, args...) }
func (f Flavor) Logf(tmpl any, args ...any)  { f.Emitf(VRB_LOG, tmpl, args...) }
func (f Flavor) Warn(tmpl any, args ...any)  { f.Emit(VRB_WARNING, tmpl, args...) }
func (f Flavor) Warnf(tmpl any, args ...any) { f.Emitf(VRB_WARNING, tmpl, args...) }
func (f Flavor) Error(tmpl any, args ...any) { f.Emit(VRB_ERROR, tmpl, args...) }
func (f Flavor) Errorf(tmpl any, args ...any) {
	f.Emitf(VRB_ERROR, tmpl, args...)
}
func (f Flavor) Display(tmpl any, args ...any) {
	f.Emit(VRB_DISPLAY, tmpl, args...)
}
func (f Flavor) Displayf(tmpl any, args ...any) {
	f.Emitf(VRB_DISPLAY, tmpl, args...)
}
func (f Flavor) Verbose(tmpl any, args ...any) {
	f.Emit(VRB_VERBOSE, tmpl, args...)
}
func (f Flavor) Verbosef(tmpl any, args ...any) {
	f.Emitf(VRB_VERBOSE, tmpl, args...)
}
func (f Flavor) VeryVerbose(tmpl any, args ...any) {
	f.Emit(VRB_VERYVERBOSE, tmpl, args...)
}
func (f Flavor) VeryVerbosef(tmpl any, args ...any) {
	f.Emitf(VRB_VERYVERBOSE, tmpl, args...)
}

func (f Flavor) pickerOrDefault() CategoryPicker {
	if f.picker != nil {
		return f.picker
	}
	return DeriveCategory{}
}
