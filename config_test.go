package catlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testConfig = `
default_category = "LogConfigTest"
telemetry = false

[categories]
LogConfigTest = "Verbose"
LogConfigQuiet = "Warning"

[[targets]]
kind = "console"
prefix = true
code = true

[[targets]]
kind = "overlay"
duration = "5s"
foreground = "214"

[[targets]]
kind = "panel"

[[targets]]
kind = "slog"
`

func Test_Config_Parse(t *testing.T) {
	cfg, err := ParseConfig([]byte(testConfig))
	assert.NoError(t, err)
	assert.Equal(t, "LogConfigTest", cfg.DefaultCategory)
	assert.False(t, cfg.Telemetry)
	assert.Len(t, cfg.Targets, 4)
	assert.Equal(t, "Verbose", cfg.Categories["LogConfigTest"])
}

func Test_Config_Build(t *testing.T) {
	cfg, err := ParseConfig([]byte(testConfig))
	assert.NoError(t, err)

	s, err := cfg.Build()
	assert.NoError(t, err)
	assert.Equal(t, "LogConfigTest", s.DefaultCategory().Name())
	assert.Len(t, s.TargetList(), 4)

	assert.Equal(t, VRB_VERBOSE, GetCategory("LogConfigTest").Verbosity(), "threshold from config applied")
	assert.Equal(t, VRB_WARNING, GetCategory("LogConfigQuiet").Verbosity())

	overlay, ok := s.TargetList()[1].(*OverlayTarget)
	if assert.True(t, ok, "second target should be the overlay") {
		assert.Equal(t, 5*time.Second, overlay.duration)
	}
}

func Test_Config_Errors(t *testing.T) {
	t.Run("bad_toml", func(t *testing.T) {
		_, err := ParseConfig([]byte("this is not toml ["))
		assert.Error(t, err)
	})
	t.Run("unknown_verbosity", func(t *testing.T) {
		cfg := &Config{Categories: map[string]string{"X": "Screaming"}}
		_, err := cfg.Build()
		assert.ErrorContains(t, err, "unknown verbosity")
	})
	t.Run("unknown_target_kind", func(t *testing.T) {
		cfg := &Config{Targets: []TargetConfig{{Kind: "carrier-pigeon"}}}
		_, err := cfg.Build()
		assert.ErrorContains(t, err, "unknown target kind")
	})
	t.Run("bad_overlay_duration", func(t *testing.T) {
		cfg := &Config{Targets: []TargetConfig{{Kind: "overlay", Duration: "sometime"}}}
		_, err := cfg.Build()
		assert.ErrorContains(t, err, "overlay duration")
	})
	t.Run("failed_build_leaves_thresholds_alone", func(t *testing.T) {
		cat := GetCategory("LogConfigUntouched")
		cat.SetVerbosity(VRB_ERROR)
		cfg := &Config{
			Categories: map[string]string{"LogConfigUntouched": "VeryVerbose"},
			Targets:    []TargetConfig{{Kind: "carrier-pigeon"}},
		}
		_, err := cfg.Build()
		assert.Error(t, err)
		assert.Equal(t, VRB_ERROR, cat.Verbosity(), "a rejected config must not change category state")
	})
	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}

func Test_Config_ApplyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catlog.toml")
	assert.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	prev := Get().Settings()
	t.Cleanup(func() { Get().ApplySettings(prev) })

	assert.NoError(t, ApplyConfigFile(path))
	assert.Equal(t, "LogConfigTest", Get().Settings().DefaultCategory().Name())
}

func Test_VerbosityFromName(t *testing.T) {
	v, err := VerbosityFromName("warning")
	assert.NoError(t, err)
	assert.Equal(t, VRB_WARNING, v)

	v, err = VerbosityFromName("VeryVerbose")
	assert.NoError(t, err)
	assert.Equal(t, VRB_VERYVERBOSE, v)

	_, err = VerbosityFromName("loudest")
	assert.Error(t, err)
}
