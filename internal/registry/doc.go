// Package registry persists the list of source→target mappings that drive
// publishing.
//
// The registry lives in a TOML file with one [[files]] entry per mapping. It
// is loaded fresh on every call and rewritten in full after each mutation.
// Add and Remove hold an advisory lock on "<registry>.lock" while they
// read-modify-write the file so two vaultpub processes do not drop each
// other's edits. The write itself truncates the file in place and is not
// atomic.
package registry
