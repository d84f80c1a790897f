package testsupport

import (
	"testing"

	"scriptctl/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t   testing.TB
	cfg *config.Config
}

// NewConfig produces a validated default config.
// It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	builder := &configBuilder{
		t:   t,
		cfg: &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	return builder.cfg
}

// WithBackup enables document backups before updates.
func WithBackup() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Update.Backup = true
	}
}

// WithScripts overrides the element and attribute names used to find scripts.
// Empty fields keep their defaults.
func WithScripts(scripts config.Scripts) ConfigOption {
	return func(b *configBuilder) {
		if scripts.Element != "" {
			b.cfg.Scripts.Element = scripts.Element
		}
		if scripts.NameAttr != "" {
			b.cfg.Scripts.NameAttr = scripts.NameAttr
		}
		if scripts.ScopeAttr != "" {
			b.cfg.Scripts.ScopeAttr = scripts.ScopeAttr
		}
		if scripts.FallbackName != "" {
			b.cfg.Scripts.FallbackName = scripts.FallbackName
		}
	}
}

// WithPaths overrides the tree layout.
func WithPaths(paths config.Paths) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths = paths
	}
}
