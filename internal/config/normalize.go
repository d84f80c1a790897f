package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizePaths()
	c.normalizeScripts()
	return c.normalizeLogging()
}

func (c *Config) normalizePaths() {
	def := Default().Paths
	c.Paths.DocumentDir = strings.Trim(strings.TrimSpace(c.Paths.DocumentDir), `/\`)
	if c.Paths.DocumentDir == "" {
		c.Paths.DocumentDir = def.DocumentDir
	}
	c.Paths.SidecarDir = strings.Trim(strings.TrimSpace(c.Paths.SidecarDir), `/\`)
	if c.Paths.SidecarDir == "" {
		c.Paths.SidecarDir = def.SidecarDir
	}
	c.Paths.DocumentExt = normalizeExt(c.Paths.DocumentExt, def.DocumentExt)
	c.Paths.SidecarExt = normalizeExt(c.Paths.SidecarExt, def.SidecarExt)
}

// normalizeExt lowercases ext and ensures it carries a leading dot.
func normalizeExt(ext, fallback string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return fallback
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func (c *Config) normalizeScripts() {
	def := Default().Scripts
	c.Scripts.Element = strings.TrimSpace(c.Scripts.Element)
	if c.Scripts.Element == "" {
		c.Scripts.Element = def.Element
	}
	c.Scripts.NameAttr = strings.TrimSpace(c.Scripts.NameAttr)
	if c.Scripts.NameAttr == "" {
		c.Scripts.NameAttr = def.NameAttr
	}
	c.Scripts.ScopeAttr = strings.TrimSpace(c.Scripts.ScopeAttr)
	if c.Scripts.ScopeAttr == "" {
		c.Scripts.ScopeAttr = def.ScopeAttr
	}
	c.Scripts.FallbackName = strings.TrimSpace(c.Scripts.FallbackName)
	if c.Scripts.FallbackName == "" {
		c.Scripts.FallbackName = def.FallbackName
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
	if strings.TrimSpace(c.Logging.File) == "" {
		c.Logging.File = ""
		return nil
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}
