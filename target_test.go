package catlog

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_ConsoleTarget_Decoration(t *testing.T) {
	cat := GetCategory("Test_Console")
	t.Run("bare", func(t *testing.T) {
		out := &strings.Builder{}
		NewConsoleTarget(out).ProcessLog(cat, VRB_LOG, "hello")
		assert.Equal(t, "Test_Console:hello\n", out.String())
	})
	t.Run("prefix_and_code", func(t *testing.T) {
		out := &strings.Builder{}
		NewConsoleTarget(out).
			WithPrefixMap(VerbShortNames).
			WithVerbosityCode().
			ProcessLog(cat, VRB_WARNING, "careful")
		assert.Equal(t, "[3]WRN:Test_Console:careful\n", out.String())
	})
	t.Run("color_wraps_message", func(t *testing.T) {
		out := &strings.Builder{}
		NewConsoleTarget(out).
			WithColorMap(VerbColorOnBlackMap).
			ProcessLog(cat, VRB_ERROR, "red-ish")
		s := out.String()
		assert.Contains(t, s, ANSI_COL_PRFX+VerbColorOnBlackMap[VRB_ERROR]+ANSI_COL_SUFX)
		assert.True(t, strings.HasSuffix(s, ANSI_COL_RESET+"\n"), "color must be reset at end of line")
	})
	t.Run("custom_delimiter", func(t *testing.T) {
		out := &strings.Builder{}
		NewConsoleTarget(out).
			WithPrefixMap(VerbShortNames).
			WithDelimiter(" | ").
			ProcessLog(cat, VRB_LOG, "spaced")
		assert.Equal(t, "LOG | Test_Console | spaced\n", out.String())
	})
	t.Run("timestamp", func(t *testing.T) {
		out := &strings.Builder{}
		NewConsoleTarget(out).
			WithTimeFormat("2006").
			ProcessLog(cat, VRB_LOG, "dated")
		assert.Equal(t, time.Now().Format("2006")+" Test_Console:dated\n", out.String())
	})
	t.Run("nil_writer_discards", func(t *testing.T) {
		assert.NotPanics(t, func() {
			NewConsoleTarget(nil).ProcessLog(cat, VRB_LOG, "nowhere")
		})
	})
}

func Test_PanelTarget(t *testing.T) {
	cat := GetCategory("Test_Panel")
	t.Run("append_by_category", func(t *testing.T) {
		panel := NewMemoryPanel()
		target := NewPanelTarget(panel)
		target.ProcessLog(cat, VRB_LOG, "first")
		target.ProcessLog(cat, VRB_WARNING, "second")
		listing := panel.Listing("Test_Panel")
		if assert.Len(t, listing, 2) {
			assert.Equal(t, PanelMessage{VRB_LOG, "first"}, listing[0])
			assert.Equal(t, PanelMessage{VRB_WARNING, "second"}, listing[1])
		}
		assert.Empty(t, panel.Front(), "nothing error-severe happened yet")
	})
	t.Run("error_brings_to_front", func(t *testing.T) {
		panel := NewMemoryPanel()
		target := NewPanelTarget(panel)
		target.ProcessLog(cat, VRB_ERROR, "bad")
		assert.Equal(t, "Test_Panel", panel.Front())
	})
	t.Run("fatal_brings_to_front", func(t *testing.T) {
		panel := NewMemoryPanel()
		NewPanelTarget(panel).ProcessLog(cat, VRB_FATAL, "worse")
		assert.Equal(t, "Test_Panel", panel.Front())
	})
	t.Run("nil_panel_tolerated", func(t *testing.T) {
		assert.NotPanics(t, func() {
			NewPanelTarget(nil).ProcessLog(cat, VRB_ERROR, "void")
		})
	})
}

func Test_OverlayTarget(t *testing.T) {
	cat := GetCategory("Test_Overlay")
	t.Run("writes_and_retains", func(t *testing.T) {
		out := &strings.Builder{}
		target := NewOverlayTarget(out).WithDuration(time.Minute)
		target.ProcessLog(cat, VRB_DISPLAY, "on screen")
		assert.Contains(t, out.String(), "on screen")
		assert.Equal(t, []string{"on screen"}, target.Active())
	})
	t.Run("expires_after_duration", func(t *testing.T) {
		target := NewOverlayTarget(nil).WithDuration(time.Second)
		clock := time.Now()
		target.now = func() time.Time { return clock }
		target.ProcessLog(cat, VRB_DISPLAY, "short lived")
		assert.Len(t, target.Active(), 1)
		clock = clock.Add(2 * time.Second)
		assert.Empty(t, target.Active())
	})
	t.Run("prunes_oldest_first", func(t *testing.T) {
		target := NewOverlayTarget(nil).WithDuration(3 * time.Second)
		clock := time.Now()
		target.now = func() time.Time { return clock }
		target.ProcessLog(cat, VRB_DISPLAY, "old")
		clock = clock.Add(2 * time.Second)
		target.ProcessLog(cat, VRB_DISPLAY, "new")
		clock = clock.Add(2 * time.Second)
		assert.Equal(t, []string{"new"}, target.Active(), "only the younger entry survives")
	})
}

func Test_SlogTarget_Forwarding(t *testing.T) {
	out := &strings.Builder{}
	target := NewSlogTarget(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug})))
	target.ProcessLog(GetCategory("Test_Slog"), VRB_WARNING, "bridged")
	s := out.String()
	assert.Contains(t, s, "level=WARN")
	assert.Contains(t, s, `msg=bridged`)
	assert.Contains(t, s, "category=Test_Slog")
}

func Test_SlogTarget_LevelMapping(t *testing.T) {
	cases := []struct {
		verb Verbosity
		want string
	}{
		{VRB_FATAL, "ERROR"},
		{VRB_ERROR, "ERROR"},
		{VRB_WARNING, "WARN"},
		{VRB_DISPLAY, "INFO"},
		{VRB_LOG, "INFO"},
		{VRB_VERBOSE, "DEBUG"},
		{VRB_VERYVERBOSE, "DEBUG"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, verbosityToSlogLevel(c.verb).String(), "wrong slog level for %v", c.verb)
	}
}

func Test_Targets_Combinator(t *testing.T) {
	single := &recTarget{}
	assert.Nil(t, Targets())
	assert.Equal(t, Target(single), Targets(single), "single target stays unwrapped")
	combined := Targets(single, &recTarget{})
	_, isMulti := combined.(MultiTarget)
	assert.True(t, isMulti)
}

func Test_TargetFunc(t *testing.T) {
	var got string
	fn := TargetFunc(func(cat *Category, v Verbosity, msg string) { got = msg })
	fn.ProcessLog(GetCategory("Test_TargetFunc"), VRB_LOG, "adapted")
	assert.Equal(t, "adapted", got)
}
