// Package config loads, normalizes, and validates vaultpub settings.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// VAULTPUB_REGISTRY. The Config type centralizes the filesystem roots the
// publish pipeline and mapping registry depend on so tests can point every
// component at temporary directories.
//
// Always obtain settings through this package so downstream code receives
// absolute paths and clear validation errors.
package config
