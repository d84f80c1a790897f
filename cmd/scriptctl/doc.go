// Package main hosts the scriptctl CLI entrypoint and command graph.
//
// The Cobra-based command tree extracts the scripts embedded in XML documents
// into editable .ctl sidecar files and writes edited sidecars back into their
// documents, either one file at a time or over a whole directory tree. It
// centralizes configuration resolution and structured logging setup so
// subcommands only translate results into terminal output.
//
// Keep this package lean: behaviour belongs in internal/roundtrip and the
// packages below it.
package main
