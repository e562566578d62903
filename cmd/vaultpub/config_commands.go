package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"vaultpub/internal/config"
	"vaultpub/internal/fileutil"
	"vaultpub/internal/preflight"
	"vaultpub/internal/registry"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand(ctx))

	return configCmd
}

func newConfigInitCommand(ctx *commandContext) *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file and an empty registry",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				target = flagValue(ctx.configFlag)
			}
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				exists, err := fileutil.Exists(target)
				if err != nil {
					return fmt.Errorf("check config path: %w", err)
				}
				if exists {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)

			registryPath, created, err := seedRegistry(target, flagValue(ctx.registryFlag))
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(out, "Created empty registry at %s\n", registryPath)
			}
			fmt.Fprintln(out, "Edit the [paths] section to point at your vault and site before running vaultpub.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

// seedRegistry creates an empty registry at the configured location unless
// one already exists. Registry mutations require the file to be present.
func seedRegistry(configPath, override string) (string, bool, error) {
	path := override
	if path == "" {
		cfg, _, _, err := config.Load(configPath)
		if err != nil {
			return "", false, fmt.Errorf("load sample config: %w", err)
		}
		path = cfg.Paths.RegistryFile
	} else {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return "", false, fmt.Errorf("resolve registry path: %w", err)
		}
		path = expanded
	}

	exists, err := fileutil.Exists(path)
	if err != nil {
		return "", false, fmt.Errorf("check registry path: %w", err)
	}
	if exists {
		return path, false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", false, fmt.Errorf("create registry directory: %w", err)
	}
	if err := registry.Save(path, &registry.Registry{}); err != nil {
		return "", false, err
	}
	return path, true, nil
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration and registry files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath)
			if !ctx.configExists {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}

			reg, err := registry.Load(cfg.Paths.RegistryFile)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Registry path: %s\n", cfg.Paths.RegistryFile)
			missing := 0
			for _, m := range reg.Files {
				if m.Target == "" {
					missing++
				}
			}
			fmt.Fprintf(out, "Mappings: %d\n", len(reg.Files))
			if missing > 0 {
				fmt.Fprintf(out, "Warning: %d mapping(s) have no target and will fail to publish\n", missing)
			}

			results := preflight.RunAll(cfg)
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				status := "ok"
				if !r.Passed {
					status = "FAIL"
				}
				rows = append(rows, []string{r.Name, status, r.Detail})
			}
			fmt.Fprintln(out, renderTable(out, []string{"Check", "Status", "Detail"}, rows, nil))
			if !preflight.AllPassed(results) {
				return errors.New("path checks failed")
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}
