package config

import (
	"scriptctl/internal/document"
	"scriptctl/internal/pathmap"
)

const (
	defaultConfigPath   = "~/.config/scriptctl/config.toml"
	projectConfigName   = "scriptctl.toml"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultUpdateBackup = false
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	mapper := pathmap.Default()
	opts := document.DefaultOptions()
	return Config{
		Paths: Paths{
			DocumentDir: mapper.DocumentDir,
			SidecarDir:  mapper.SidecarDir,
			DocumentExt: mapper.DocumentExt,
			SidecarExt:  mapper.SidecarExt,
		},
		Scripts: Scripts{
			Element:      opts.ScriptTag,
			NameAttr:     opts.NameAttr,
			ScopeAttr:    opts.ScopeAttr,
			FallbackName: opts.FallbackName,
		},
		Update: Update{
			Backup: defaultUpdateBackup,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
