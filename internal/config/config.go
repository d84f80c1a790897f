package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"scriptctl/internal/document"
	"scriptctl/internal/pathmap"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths describes the parallel document and sidecar trees.
type Paths struct {
	DocumentDir string `toml:"document_dir"`
	SidecarDir  string `toml:"sidecar_dir"`
	DocumentExt string `toml:"document_ext"`
	SidecarExt  string `toml:"sidecar_ext"`
}

// Scripts names the elements and attributes that carry scripts.
type Scripts struct {
	Element      string `toml:"element"`
	NameAttr     string `toml:"name_attr"`
	ScopeAttr    string `toml:"scope_attr"`
	FallbackName string `toml:"fallback_name"`
}

// Update contains settings for writing scripts back into documents.
type Update struct {
	// Backup copies each document to <document>.bak before it is rewritten.
	Backup bool `toml:"backup"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	// File additionally receives JSON records when set.
	File string `toml:"file"`
}

// Config encapsulates all configuration values for scriptctl.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Scripts Scripts `toml:"scripts"`
	Update  Update  `toml:"update"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. A missing file
// is not an error; defaults apply and exists is false.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		info, err := os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		if info.IsDir() {
			return "", false, fmt.Errorf("config path %s is a directory", expanded)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// DocumentOptions returns the scanner settings for the configured format.
func (c *Config) DocumentOptions() document.Options {
	return document.Options{
		ScriptTag:    c.Scripts.Element,
		NameAttr:     c.Scripts.NameAttr,
		ScopeAttr:    c.Scripts.ScopeAttr,
		FallbackName: c.Scripts.FallbackName,
	}
}

// PathMapper returns the document/sidecar path mapping for the configured trees.
func (c *Config) PathMapper() pathmap.Mapper {
	return pathmap.Mapper{
		DocumentDir: c.Paths.DocumentDir,
		SidecarDir:  c.Paths.SidecarDir,
		DocumentExt: c.Paths.DocumentExt,
		SidecarExt:  c.Paths.SidecarExt,
	}
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
