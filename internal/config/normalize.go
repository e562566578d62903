package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizePublish()
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return c.normalizeHistory()
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv(RegistryEnvVar); ok && strings.TrimSpace(value) != "" {
		c.Paths.RegistryFile = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}

	fields := []struct {
		key   string
		value *string
	}{
		{"paths.registry_file", &c.Paths.RegistryFile},
		{"paths.source_image_dir", &c.Paths.SourceImageDir},
		{"paths.target_image_dir", &c.Paths.TargetImageDir},
		{"paths.public_target_dir", &c.Paths.PublicTargetDir},
		{"paths.private_target_dir", &c.Paths.PrivateTargetDir},
		{"paths.state_dir", &c.Paths.StateDir},
	}
	for _, field := range fields {
		expanded, err := expandPath(strings.TrimSpace(*field.value))
		if err != nil {
			return fmt.Errorf("%s: %w", field.key, err)
		}
		*field.value = expanded
	}
	return nil
}

func (c *Config) normalizePublish() {
	c.Publish.PublishedMarker = strings.TrimSpace(c.Publish.PublishedMarker)
	prefix := strings.TrimSpace(c.Publish.ImageURLPrefix)
	if prefix == "" {
		prefix = defaultImageURLPrefix
	}
	if prefix != "/" {
		prefix = strings.TrimRight(prefix, "/")
	}
	c.Publish.ImageURLPrefix = prefix
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if file := strings.TrimSpace(c.Logging.File); file != "" {
		expanded, err := expandPath(file)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}

func (c *Config) normalizeHistory() error {
	path := strings.TrimSpace(c.History.Path)
	if path == "" {
		c.History.Path = ""
		return nil
	}
	expanded, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	c.History.Path = expanded
	return nil
}
