package catlog

import "fmt"

// Target is a destination for rendered log messages. ProcessLog is only
// invoked for calls that passed the verbosity filter.
type Target interface {
	ProcessLog(cat *Category, verbosity Verbosity, message string)
}

// MultiTarget fans one emission out to every member target, in declaration
// order. Failure policy: attempt-all. A panicking member is reported to the
// core fallback writer and the remaining members still run; nothing
// propagates to the logging call site.
type MultiTarget []Target

func (mt MultiTarget) ProcessLog(cat *Category, verbosity Verbosity, message string) {
	for _, t := range mt {
		if t != nil {
			safeProcessLog(t, cat, verbosity, message)
		}
	}
}

func safeProcessLog(t Target, cat *Category, verbosity Verbosity, message string) {
	defer func() {
		if r := recover(); r != nil {
			Get().handleDispatchError(fmt.Sprintf("panic dispatching log to target `%T`: %v", t, r))
		}
	}()
	t.ProcessLog(cat, verbosity, message)
}

// TargetFunc adapts a plain function to the Target interface.
type TargetFunc func(cat *Category, verbosity Verbosity, message string)

func (f TargetFunc) ProcessLog(cat *Category, verbosity Verbosity, message string) {
	f(cat, verbosity, message)
}

// Targets combines zero or more targets into one. A single target is
// returned as-is, so the fan-out wrapper only exists when it earns its keep.
func Targets(ts ...Target) Target {
	switch len(ts) {
	case 0:
		return nil
	case 1:
		return ts[0]
	}
	return MultiTarget(ts)
}
