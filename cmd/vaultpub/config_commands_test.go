package main

import (
	"os"
	"path/filepath"
	"testing"

	"vaultpub/internal/config"
)

func TestConfigInitCreatesSampleAndRegistry(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv(config.RegistryEnvVar, "")

	target := filepath.Join(tempDir, "vaultpub.toml")
	registryPath := filepath.Join(tempDir, "data", "files.toml")

	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "", registryPath)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration to "+target)
	requireContains(t, out, "Created empty registry at "+registryPath)

	data, err := os.ReadFile(registryPath)
	if err != nil {
		t.Fatalf("read registry: %v", err)
	}
	requireContains(t, string(data), "files = []")

	out, _, err = runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, "", registryPath)
	if err != nil {
		t.Fatalf("config init overwrite: %v", err)
	}
	requireNotContains(t, out, "Created empty registry")
}

func TestConfigInitUsesSampleRegistryPath(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv(config.RegistryEnvVar, "")

	out, _, err := runCLI(t, []string{"config", "init"}, "", "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	expected := filepath.Join(tempDir, ".config", "vaultpub", "files.toml")
	requireContains(t, out, "Created empty registry at "+expected)
	if _, err := os.Stat(filepath.Join(tempDir, ".config", "vaultpub", "config.toml")); err != nil {
		t.Fatalf("expected default config file: %v", err)
	}
}

func TestConfigInitRefusesExisting(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	target := filepath.Join(tempDir, "vaultpub.toml")
	if err := os.WriteFile(target, []byte("# existing\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, err := runCLI(t, []string{"config", "init", "--path", target}, "", "")
	if err == nil {
		t.Fatal("expected error for existing config")
	}
	requireContains(t, err.Error(), "already exists")
}

func TestConfigValidate(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := env.run(t, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config path: "+env.configPath)
	requireContains(t, out, "Registry path: "+env.cfg.Paths.RegistryFile)
	requireContains(t, out, "Mappings: 0")
	requireContains(t, out, "Configuration valid")
}

func TestConfigValidateWarnsOnMissingTarget(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.WriteFile(env.cfg.Paths.RegistryFile, []byte("[[files]]\nsource = \"/vault/a.md\"\n"), 0o644); err != nil {
		t.Fatalf("write registry: %v", err)
	}
	out, _, err := env.run(t, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "1 mapping(s) have no target")
}

func TestConfigValidateReportsMissingDirectories(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.RemoveAll(env.cfg.Paths.SourceImageDir); err != nil {
		t.Fatalf("remove source image dir: %v", err)
	}
	out, _, err := env.run(t, "config", "validate")
	if err == nil {
		t.Fatal("expected path checks to fail")
	}
	requireContains(t, out, "Source image directory")
	requireContains(t, out, "does not exist")
}

func TestMissingExplicitConfigFails(t *testing.T) {
	_, _, err := runCLI(t, []string{"list"}, filepath.Join(t.TempDir(), "absent.toml"), "")
	if err == nil {
		t.Fatal("expected error for missing config")
	}
}
