package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRootHelpListsCommands(t *testing.T) {
	out, _, err := runCLI(t, []string{"--help"}, "", "")
	if err != nil {
		t.Fatalf("help: %v", err)
	}
	for _, name := range []string{"update", "add", "remove", "list", "history", "config"} {
		requireContains(t, out, name)
	}
}

func TestLoadDotEnvMissingFileIsIgnored(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := loadDotEnv(); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}
}

func TestLoadDotEnvSetsUnsetVariables(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("VAULTPUB_DOTENV_TEST=from-file\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("VAULTPUB_DOTENV_TEST", "")
	os.Unsetenv("VAULTPUB_DOTENV_TEST")

	if err := loadDotEnv(); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}
	if got := os.Getenv("VAULTPUB_DOTENV_TEST"); got != "from-file" {
		t.Fatalf("expected from-file, got %q", got)
	}
}
