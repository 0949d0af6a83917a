package testsupport

import (
	"path/filepath"
	"testing"

	"vccd/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Logging is kept off disk unless WithLogDir is applied.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.OutputDir = filepath.Join(base, "out")
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Paths.LogDir = ""
	cfgVal.Logging.Level = "error"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithLogDir enables the JSON log file under the temp directory.
func WithLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.LogDir = filepath.Join(b.baseDir, "logs")
	}
}

// WithSkipUnchanged toggles compile.skip_unchanged.
func WithSkipUnchanged(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Compile.SkipUnchanged = enabled
	}
}

// WithoutHistory disables build history recording.
func WithoutHistory() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Compile.History = false
	}
}

// WithOutputPattern overrides compile.output_pattern.
func WithOutputPattern(pattern string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Compile.OutputPattern = pattern
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StateDir)
}
