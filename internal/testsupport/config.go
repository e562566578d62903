package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"vaultpub/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose vault, site, and state directories live
// under a fresh temp directory laid out like a real vault and site:
//
//	<base>/vault/media/image
//	<base>/blog/content/posts     (public, contains the default "/blog/" marker)
//	<base>/blog/content/private
//	<base>/blog/static/photos
//	<base>/mirror                 (outside the marker)
//	<base>/state
//
// The registry file is created empty.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("resolve temp dir: %v", err)
	}
	cfgVal := config.Default()
	cfgVal.Paths.RegistryFile = filepath.Join(base, "files.toml")
	cfgVal.Paths.SourceImageDir = filepath.Join(base, "vault", "media", "image")
	cfgVal.Paths.TargetImageDir = filepath.Join(base, "blog", "static", "photos")
	cfgVal.Paths.PublicTargetDir = filepath.Join(base, "blog", "content", "posts")
	cfgVal.Paths.PrivateTargetDir = filepath.Join(base, "blog", "content", "private")
	cfgVal.Paths.StateDir = filepath.Join(base, "state")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}

	for _, dir := range []string{
		cfgVal.Paths.SourceImageDir,
		cfgVal.Paths.PublicTargetDir,
		cfgVal.Paths.PrivateTargetDir,
		MirrorDir(&cfgVal),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	if _, err := os.Stat(cfgVal.Paths.RegistryFile); os.IsNotExist(err) {
		if err := os.WriteFile(cfgVal.Paths.RegistryFile, []byte("files = []\n"), 0o644); err != nil {
			t.Fatalf("seed registry: %v", err)
		}
	}
	return builder.cfg
}

// WithHistoryDisabled turns off the publish journal.
func WithHistoryDisabled() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = false
	}
}

// WithMarker overrides the published-content marker.
func WithMarker(marker string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Publish.PublishedMarker = marker
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.RegistryFile)
}

// VaultDir returns the directory tests place notes in.
func VaultDir(cfg *config.Config) string {
	return filepath.Join(BaseDir(cfg), "vault")
}

// MirrorDir returns a target directory that does not carry the marker.
func MirrorDir(cfg *config.Config) string {
	return filepath.Join(BaseDir(cfg), "mirror")
}
