package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"scriptctl/internal/config"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	want := filepath.Join(tempHome, ".config", "scriptctl", "config.toml")
	if resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}

	def := config.Default()
	if cfg.Paths != def.Paths || cfg.Scripts != def.Scripts || cfg.Update != def.Update {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	opts := cfg.DocumentOptions()
	if opts.ScriptTag != "script" || opts.NameAttr != "name" || opts.ScopeAttr != "Name" || opts.FallbackName != "unnamed_script" {
		t.Fatalf("unexpected document options: %+v", opts)
	}
	if mapper := cfg.PathMapper(); mapper.DocumentDir != "xml" || mapper.SidecarExt != ".ctl" {
		t.Fatalf("unexpected mapper: %+v", mapper)
	}
}

func TestLoadFindsProjectConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, "scriptctl.toml"), []byte("[update]\nbackup = true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || filepath.Base(resolved) != "scriptctl.toml" {
		t.Fatalf("expected project config, got %q exists=%v", resolved, exists)
	}
	if !cfg.Update.Backup {
		t.Fatal("expected backup enabled from project config")
	}
}

func TestLoadNormalizesValues(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[paths]
document_dir = " /panels/ "
sidecar_dir = "scripts"
document_ext = "XML"
sidecar_ext = ".ctl"

[scripts]
element = " Script "
fallback_name = "  "

[logging]
format = "JSON"
level = "Warning"
file = "~/logs/scriptctl.log"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution %q exists=%v", resolved, exists)
	}
	if cfg.Paths.DocumentDir != "panels" || cfg.Paths.SidecarDir != "scripts" || cfg.Paths.DocumentExt != ".xml" {
		t.Fatalf("unexpected paths: %+v", cfg.Paths)
	}
	if cfg.Scripts.Element != "Script" || cfg.Scripts.NameAttr != "name" || cfg.Scripts.FallbackName != "unnamed_script" {
		t.Fatalf("unexpected scripts: %+v", cfg.Scripts)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
	if cfg.Logging.File != filepath.Join(tempHome, "logs", "scriptctl.log") {
		t.Fatalf("unexpected log file: %q", cfg.Logging.File)
	}
}

func TestLoadMissingExplicitPathUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists || resolved != path {
		t.Fatalf("unexpected resolution %q exists=%v", resolved, exists)
	}
	if cfg.Paths.DocumentDir != "xml" {
		t.Fatalf("expected default document dir, got %q", cfg.Paths.DocumentDir)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "[paths]\nstaging_dir = \"x\"\n", "parse config"},
		{"same dirs", "[paths]\ndocument_dir = \"ctl\"\n", "must differ"},
		{"nested dir", "[paths]\nsidecar_dir = \"a/b\"\n", "paths.sidecar_dir"},
		{"same ext", "[paths]\nsidecar_ext = \".xml\"\n", "must differ"},
		{"double ext", "[paths]\nsidecar_ext = \".c.tl\"\n", "paths.sidecar_ext"},
		{"fallback separator", "[scripts]\nfallback_name = \"a::b\"\n", "scripts.fallback_name"},
		{"bad element", "[scripts]\nelement = \"my script\"\n", "scripts.element"},
		{"bad format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad level", "[logging]\nlevel = \"trace\"\n", "logging.level"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q in error, got %v", tc.want, err)
			}
		})
	}
}

func TestCreateSampleProducesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	var decoded config.Config
	if err := toml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("sample is not valid TOML: %v", err)
	}
	if decoded.Paths.SidecarDir != "ctl" || decoded.Scripts.ScopeAttr != "Name" {
		t.Fatalf("unexpected sample values: %+v", decoded)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample returned error: %v", err)
	}
	if !exists || cfg.Paths != config.Default().Paths {
		t.Fatalf("sample should match defaults, got %+v", cfg.Paths)
	}
}

func TestExpandPathHandlesTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/panels")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "panels") {
		t.Fatalf("unexpected expansion %q", got)
	}
	if got, _ := config.ExpandPath(""); got != "" {
		t.Fatalf("expected empty path to stay empty, got %q", got)
	}
}
