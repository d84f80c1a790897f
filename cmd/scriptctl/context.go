package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"scriptctl/internal/config"
	"scriptctl/internal/logging"
	"scriptctl/internal/roundtrip"
)

type globalFlags struct {
	config    string
	logLevel  string
	logFormat string
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
	closeLog   func() error
	runID      string
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if level := strings.TrimSpace(c.flags.logLevel); level != "" {
			if !logging.ValidLevel(level) {
				c.configErr = fmt.Errorf("--log-level: unsupported value %q", level)
				return
			}
			cfg.Logging.Level = strings.ToLower(level)
		}
		if format := strings.TrimSpace(c.flags.logFormat); format != "" {
			if !logging.ValidFormat(format) {
				c.configErr = fmt.Errorf("--log-format: unsupported value %q", format)
				return
			}
			cfg.Logging.Format = strings.ToLower(format)
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the invocation logger once. Records go to the
// command's error stream so stdout carries only the report.
func (c *commandContext) ensureLogger(cmd *cobra.Command) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, closeLog, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			Writer: cmd.ErrOrStderr(),
			File:   cfg.Logging.File,
		})
		if err != nil {
			c.loggerErr = fmt.Errorf("init logging: %w", err)
			return
		}
		c.runID = uuid.NewString()
		c.logger = logger
		c.closeLog = closeLog
	})
	return c.logger, c.loggerErr
}

// closeLogger releases the log file opened by ensureLogger.
func (c *commandContext) closeLogger() {
	if c.closeLog == nil {
		return
	}
	if err := c.closeLog(); err != nil {
		c.logger.Warn("close log file failed", logging.Error(err))
	}
	c.closeLog = nil
}

// service returns a roundtrip service and a context tagged with the run id.
func (c *commandContext) service(cmd *cobra.Command) (*roundtrip.Service, context.Context, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.ensureLogger(cmd)
	if err != nil {
		return nil, nil, err
	}
	ctx := logging.WithRunID(cmd.Context(), c.runID)
	logging.WithContext(ctx, logger).Debug("command started",
		logging.String("command", cmd.Name()),
		logging.Bool("backup", cfg.Update.Backup))
	return roundtrip.NewService(cfg, logger), ctx, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
