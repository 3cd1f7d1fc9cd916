package catlog

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// ConsoleTarget writes decorated text lines to an io.Writer. Decoration is
// opt-in per instance: timestamp, numeric verbosity code, per-verbosity
// prefix and ANSI color, each driven by the VerbMap tables from common.go.
type ConsoleTarget struct {
	mtx       sync.Mutex
	buf       bytes.Buffer // reused while building one line
	out       io.Writer
	colormap  *VerbMap // per-verbosity ANSI fragments, nil = no color
	prefixmap *VerbMap // per-verbosity textual prefix, nil = no prefix
	delimiter []byte   // separator after prefix/category name
	timefmt   string   // time.Format layout; empty = no timestamp
	showcode  bool     // include numeric verbosity like "[5]"
}

func NewConsoleTarget(out io.Writer) *ConsoleTarget {
	if out == nil {
		out = io.Discard
	}
	return &ConsoleTarget{out: out, delimiter: []byte(DEFAULT_DELIMITER)}
}

func (t *ConsoleTarget) WithTimeFormat(layout string) *ConsoleTarget {
	t.timefmt = layout
	return t
}

func (t *ConsoleTarget) WithPrefixMap(m *VerbMap) *ConsoleTarget {
	t.prefixmap = m
	return t
}

func (t *ConsoleTarget) WithColorMap(m *VerbMap) *ConsoleTarget {
	t.colormap = m
	return t
}

func (t *ConsoleTarget) WithVerbosityCode() *ConsoleTarget {
	t.showcode = true
	return t
}

func (t *ConsoleTarget) WithDelimiter(d string) *ConsoleTarget {
	t.delimiter = []byte(d)
	return t
}

func (t *ConsoleTarget) ProcessLog(cat *Category, verbosity Verbosity, message string) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.buildLine(cat, verbosity, message)
	n, err := t.buf.WriteTo(t.out)
	if err != nil {
		Get().handleDispatchError(fmt.Sprintf("error writing log to output `%v` (%d bytes written): %v", t.out, n, err))
	}
}

func (t *ConsoleTarget) buildLine(cat *Category, verbosity Verbosity, message string) {
	t.buf.Reset()
	v := normVerbosity(verbosity)
	if len(t.timefmt) > 0 {
		t.buf.WriteString(time.Now().Format(t.timefmt))
		t.buf.WriteByte(' ')
	}
	if t.showcode {
		if _VRB_MAX_for_checks_only <= 10 {
			t.buf.WriteByte('[')
			t.buf.WriteByte('0' + byte(v))
			t.buf.WriteByte(']')
		} else {
			fmt.Fprintf(&t.buf, "[%d]", v)
		}
	}
	if t.prefixmap != nil {
		t.buf.WriteString(t.prefixmap[v])
		t.buf.Write(t.delimiter)
	}
	if t.colormap != nil {
		t.buf.WriteString(ANSI_COL_PRFX)
		t.buf.WriteString(t.colormap[v])
		t.buf.WriteString(ANSI_COL_SUFX)
	}
	if cat != nil {
		t.buf.WriteString(cat.Name())
		t.buf.Write(t.delimiter)
	}
	t.buf.WriteString(message)
	if t.colormap != nil {
		t.buf.WriteString(ANSI_COL_RESET)
	}
	t.buf.WriteByte('\n')
}
