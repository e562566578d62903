// Package preflight provides readiness checks for the filesystem paths that
// vaultpub publishes from and into.
//
// The CLI "vaultpub config validate" command runs RunAll and prints each
// result. Checks never create anything; a missing directory is reported so
// the user can fix the configuration before a publish fails halfway.
package preflight
