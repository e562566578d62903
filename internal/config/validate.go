package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validatePublish(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	required := []struct {
		key   string
		value string
	}{
		{"paths.registry_file", c.Paths.RegistryFile},
		{"paths.source_image_dir", c.Paths.SourceImageDir},
		{"paths.target_image_dir", c.Paths.TargetImageDir},
		{"paths.public_target_dir", c.Paths.PublicTargetDir},
		{"paths.private_target_dir", c.Paths.PrivateTargetDir},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%s must be set", field.key)
		}
	}
	return nil
}

func (c *Config) validatePublish() error {
	if c.Publish.PublishedMarker == "" {
		return errors.New("publish.published_marker must be set")
	}
	if !strings.HasPrefix(c.Publish.ImageURLPrefix, "/") {
		return fmt.Errorf("publish.image_url_prefix must start with '/' (got %q)", c.Publish.ImageURLPrefix)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
