package preflight

import (
	"vaultpub/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the path checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	return []Result{
		CheckFileAccess("Registry file", cfg.Paths.RegistryFile),
		CheckDirectoryReadable("Source image directory", cfg.Paths.SourceImageDir),
		CheckDirectoryAccess("Target image directory", cfg.Paths.TargetImageDir),
		CheckDirectoryAccess("Public target directory", cfg.Paths.PublicTargetDir),
		CheckDirectoryAccess("Private target directory", cfg.Paths.PrivateTargetDir),
	}
}

// AllPassed reports whether every result passed.
func AllPassed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
