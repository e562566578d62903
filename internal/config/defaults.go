package config

const (
	defaultConfigPath       = "~/.config/vaultpub/config.toml"
	defaultRegistryFile     = "~/.config/vaultpub/files.toml"
	defaultSourceImageDir   = "~/obsidian/media/image"
	defaultTargetImageDir   = "~/projects/blog/static/photos"
	defaultPublicTargetDir  = "~/projects/blog/content/posts"
	defaultPrivateTargetDir = "~/projects/blog/content/private"
	defaultStateDir         = "~/.local/share/vaultpub"
	defaultPublishedMarker  = "/blog/"
	defaultImageURLPrefix   = "/photos"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultHistoryEnabled   = true

	// RegistryEnvVar overrides paths.registry_file when set.
	RegistryEnvVar = "VAULTPUB_REGISTRY"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			RegistryFile:     defaultRegistryFile,
			SourceImageDir:   defaultSourceImageDir,
			TargetImageDir:   defaultTargetImageDir,
			PublicTargetDir:  defaultPublicTargetDir,
			PrivateTargetDir: defaultPrivateTargetDir,
			StateDir:         defaultStateDir,
		},
		Publish: Publish{
			PublishedMarker: defaultPublishedMarker,
			ImageURLPrefix:  defaultImageURLPrefix,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled: defaultHistoryEnabled,
		},
	}
}
