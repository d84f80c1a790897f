// Package config loads, normalizes, and validates scriptctl configuration data.
//
// It supplies defaults for the document/sidecar tree layout, the element and
// attribute names that identify scripts, and log output. Files are TOML and
// are resolved from an explicit path, ~/.config/scriptctl/config.toml, or a
// scriptctl.toml in the working directory, in that order.
//
// Always obtain settings through this package so downstream code receives
// trimmed names, canonical log formats, and clear validation errors.
package config
