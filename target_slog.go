package catlog

import (
	"context"
	"log/slog"
)

// SlogTarget forwards emissions to the host's standard structured log sink.
// The category travels as a "category" attribute and the verbosity is folded
// into the nearest slog level.
type SlogTarget struct {
	logger *slog.Logger
}

// NewSlogTarget wraps the given slog logger; nil means slog.Default(),
// resolved per call so later slog.SetDefault calls are respected.
func NewSlogTarget(logger *slog.Logger) *SlogTarget {
	return &SlogTarget{logger: logger}
}

func (t *SlogTarget) ProcessLog(cat *Category, verbosity Verbosity, message string) {
	logger := t.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Log(context.Background(), verbosityToSlogLevel(verbosity), message,
		slog.String("category", cat.Name()))
}

func verbosityToSlogLevel(v Verbosity) slog.Level {
	switch normVerbosity(v) {
	case VRB_FATAL, VRB_ERROR:
		return slog.LevelError
	case VRB_WARNING:
		return slog.LevelWarn
	case VRB_DISPLAY, VRB_LOG:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
