package catlog

// Settings bundles what the core needs installed at runtime: the default
// target chain, the default category and the telemetry opt-in. Settings
// objects are treated as immortal once installed - ApplySettings swaps the
// pointer and leaves the previous object alone.
type Settings struct {
	targets         []Target
	defaultCategory *Category

	// Telemetry enables the one-shot anonymous usage ping on install.
	Telemetry bool
}

// DefaultSettings routes to the host standard log sink with LogGeneral as
// the default category.
func DefaultSettings() *Settings {
	return NewSettings(nil, NewSlogTarget(nil))
}

// NewSettings builds a settings object with the given default category (nil
// means LogGeneral) and target chain (empty means the host standard sink).
func NewSettings(defaultCategory *Category, targets ...Target) *Settings {
	s := &Settings{defaultCategory: defaultCategory}
	s.AddTargets(targets...)
	return s
}

// AddTargets appends targets to the chain, keeping declaration order. Nil
// entries are dropped.
func (s *Settings) AddTargets(targets ...Target) *Settings {
	for _, t := range targets {
		if t != nil {
			s.targets = append(s.targets, t)
		}
	}
	return s
}

// SetDefaultCategory replaces the default category (nil resets to
// LogGeneral).
func (s *Settings) SetDefaultCategory(cat *Category) *Settings {
	s.defaultCategory = cat
	return s
}

// DefaultCategory never returns nil: the default always exists.
func (s *Settings) DefaultCategory() *Category {
	if s.defaultCategory != nil {
		return s.defaultCategory
	}
	return LogGeneral
}

// Target returns the installed chain as a single dispatchable target.
func (s *Settings) Target() Target {
	if t := Targets(s.targets...); t != nil {
		return t
	}
	return NewSlogTarget(nil)
}

// TargetList returns the chain in declaration order.
func (s *Settings) TargetList() []Target {
	out := make([]Target, len(s.targets))
	copy(out, s.targets)
	return out
}
