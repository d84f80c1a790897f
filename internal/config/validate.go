package config

import (
	"errors"
	"fmt"
	"strings"

	"scriptctl/internal/logging"
	"scriptctl/internal/script"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateScripts(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"paths.document_dir", c.Paths.DocumentDir},
		{"paths.sidecar_dir", c.Paths.SidecarDir},
	} {
		if strings.ContainsAny(field.value, `/\`) {
			return fmt.Errorf("%s must be a single directory name, got %q", field.name, field.value)
		}
	}
	if c.Paths.DocumentDir == c.Paths.SidecarDir {
		return errors.New("paths.document_dir and paths.sidecar_dir must differ")
	}
	for _, field := range []struct {
		name  string
		value string
	}{
		{"paths.document_ext", c.Paths.DocumentExt},
		{"paths.sidecar_ext", c.Paths.SidecarExt},
	} {
		if len(field.value) < 2 || field.value[0] != '.' || strings.ContainsAny(field.value[1:], `./\`) {
			return fmt.Errorf("%s must be a single extension such as \".xml\", got %q", field.name, field.value)
		}
	}
	if c.Paths.DocumentExt == c.Paths.SidecarExt {
		return errors.New("paths.document_ext and paths.sidecar_ext must differ")
	}
	return nil
}

func (c *Config) validateScripts() error {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"scripts.element", c.Scripts.Element},
		{"scripts.name_attr", c.Scripts.NameAttr},
		{"scripts.scope_attr", c.Scripts.ScopeAttr},
	} {
		if strings.ContainsAny(field.value, " \t<>=\"'") {
			return fmt.Errorf("%s is not a valid XML name: %q", field.name, field.value)
		}
	}
	if strings.Contains(c.Scripts.FallbackName, script.Separator) {
		return fmt.Errorf("scripts.fallback_name must not contain %q", script.Separator)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidFormat(c.Logging.Format) {
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}
