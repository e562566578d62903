// Package main hosts the vaultpub CLI entrypoint and command graph.
//
// The Cobra-based command tree publishes registered notes (update), edits the
// mapping registry (add, remove, list), shows the publish journal (history),
// and scaffolds configuration. It centralizes configuration resolution and
// logger setup so subcommands can focus on output instead of wiring.
//
// Keep this package lean: add new functionality in the internal packages
// first, then surface it through dedicated commands or flags here.
package main
