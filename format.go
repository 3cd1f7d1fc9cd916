package catlog

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// FormatStrategy renders a template plus arguments into the final message
// text. The two implementations are interchangeable per call site but never
// mixed within one call: Emit uses NumberedFormat, Emitf uses PrintfFormat.
// Strategies are zero-size values so picking one costs nothing.
type FormatStrategy interface {
	Render(tmpl string, args []any) string
}

// NumberedFormat substitutes {0}, {1}, ... placeholders positionally. An
// argument may be referenced zero, one or several times. A placeholder whose
// index has no matching argument is emitted literally (so "{3}" with two
// args stays "{3}" in the output) - the mistake is visible at the sink
// instead of killing the message.
type NumberedFormat struct{}

func (NumberedFormat) Render(tmpl string, args []any) string {
	if len(args) == 0 || !strings.ContainsRune(tmpl, '{') {
		return tmpl
	}
	var b strings.Builder
	b.Grow(len(tmpl) + 16*len(args))
	for i := 0; i < len(tmpl); {
		ch := tmpl[i]
		if ch != '{' {
			b.WriteByte(ch)
			i++
			continue
		}
		idx, end, ok := parsePlaceholder(tmpl, i)
		if ok && idx < len(args) {
			b.WriteString(fmt.Sprint(args[idx]))
		} else {
			// malformed or out of range: keep the literal text
			b.WriteString(tmpl[i:end])
		}
		i = end
	}
	return b.String()
}

// No realistic call has ten thousand arguments; longer digit runs are kept
// literal instead of risking int overflow wrapping to a wrong index.
const maxPlaceholderDigits = 4

// parsePlaceholder reads "{digits}" starting at the '{' on position start.
// Returns the parsed index, the position just past the consumed text and
// whether a well-formed placeholder was found.
func parsePlaceholder(tmpl string, start int) (idx, end int, ok bool) {
	i := start + 1
	for i < len(tmpl) && tmpl[i] >= '0' && tmpl[i] <= '9' {
		if i-start > maxPlaceholderDigits {
			return 0, start + 1, false
		}
		idx = idx*10 + int(tmpl[i]-'0')
		i++
	}
	if i == start+1 || i >= len(tmpl) || tmpl[i] != '}' {
		return 0, start + 1, false
	}
	return idx, i + 1, true
}

// PrintfFormat renders with fmt.Sprintf semantics. Verb/argument mismatches
// cannot be rejected at compile time from library code; fmt embeds its usual
// "%!"-style diagnostics in the output, which keeps the message intelligible
// at the sink instead of dropping it.
type PrintfFormat struct{}

func (PrintfFormat) Render(tmpl string, args []any) string {
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

var wideDecoder = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)

// resolveTemplate normalizes the accepted template representations to the
// string the strategies work on. Narrow templates (string, UTF-8 bytes)
// pass through untouched; wide input ([]uint16 code units, or UTF-16 bytes)
// costs one extra allocation for the transcode - that tradeoff is accepted.
func resolveTemplate(tmpl any) string {
	switch t := tmpl.(type) {
	case string:
		return t
	case []uint16:
		return string(utf16.Decode(t))
	case []byte:
		return decodeByteTemplate(t)
	default:
		return fmt.Sprint(tmpl)
	}
}

// decodeByteTemplate tells narrow UTF-8 byte templates apart from wide
// UTF-16 ones. A BOM always means wide; valid UTF-8 without NUL bytes is
// narrow; anything else of even length is taken as little-endian UTF-16
// (ASCII-ish wide text always carries NUL high bytes, so it lands here, not
// in the narrow path). Prefix wide input with a BOM when in doubt.
func decodeByteTemplate(t []byte) string {
	hasBOM := len(t) >= 2 &&
		((t[0] == 0xFF && t[1] == 0xFE) || (t[0] == 0xFE && t[1] == 0xFF))
	if !hasBOM {
		if utf8.Valid(t) && !bytes.ContainsRune(t, 0) {
			return string(t)
		}
		if len(t)%2 != 0 {
			// neither sane UTF-8 nor possible UTF-16, show it as-is
			return string(t)
		}
	}
	decoded, err := wideDecoder.NewDecoder().Bytes(t)
	if err != nil {
		// undecodable input is still worth showing
		return string(t)
	}
	return string(decoded)
}
