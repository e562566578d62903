// Package logging assembles structured slog loggers and formatting helpers used
// across vaultpub.
//
// It owns the console and JSON handlers, level parsing, and output plumbing,
// and exposes field constants so publish runs tag log lines with the same
// run, note, and path keys. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
package logging
