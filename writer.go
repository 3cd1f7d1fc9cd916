package catlog

import (
	"bytes"
	"io"
)

// entryWriter pushes every Write through the flavor's pipeline at a fixed
// verbosity. Useful to hand the facade to code that only speaks io.Writer
// (log.New, exec.Cmd stderr and the like).
type entryWriter struct {
	flavor    Flavor
	verbosity Verbosity
}

// Writer adapts the flavor to an io.Writer emitting at verbosity v. Each
// Write becomes one message; one trailing newline is trimmed since targets
// terminate lines themselves.
func (f Flavor) Writer(v Verbosity) io.Writer {
	return &entryWriter{flavor: f, verbosity: v}
}

func (w *entryWriter) Write(p []byte) (int, error) {
	msg := bytes.TrimSuffix(p, []byte{'\n'})
	w.flavor.Emit(w.verbosity, string(msg))
	return len(p), nil
}
