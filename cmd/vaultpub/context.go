package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"vaultpub/internal/config"
	"vaultpub/internal/history"
	"vaultpub/internal/logging"
	"vaultpub/internal/publish"
	"vaultpub/internal/registry"
)

type commandContext struct {
	configFlag   *string
	registryFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, registryFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		registryFlag: registryFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		c.configPath = path
		c.configExists = exists
		if override := flagValue(c.registryFlag); override != "" {
			expanded, err := config.ExpandPath(override)
			if err != nil {
				c.configErr = fmt.Errorf("resolve registry path: %w", err)
				return
			}
			cfg.Paths.RegistryFile = expanded
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) registryStore() (*registry.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return registry.NewStore(cfg.Paths.RegistryFile, cfg.Paths.PublicTargetDir, cfg.Paths.PrivateTargetDir, logger), nil
}

// withPipeline builds a publish pipeline, opening the journal when history
// is enabled and closing it afterwards.
func (c *commandContext) withPipeline(ctx context.Context, fn func(*publish.Pipeline) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}

	if !cfg.History.Enabled {
		return fn(publish.New(cfg, nil, logger))
	}
	store, err := history.Open(ctx, cfg.HistoryPath())
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Warn("failed to close history", logging.Args(logging.Error(cerr))...)
		}
	}()
	return fn(publish.New(cfg, store, logger))
}

func (c *commandContext) withHistory(ctx context.Context, fn func(*history.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		return errors.New("publish history is disabled (set history.enabled = true)")
	}
	store, err := history.Open(ctx, cfg.HistoryPath())
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()
	return fn(store)
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
