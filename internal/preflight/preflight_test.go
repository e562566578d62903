package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"vaultpub/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckFileAccess(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "files.toml")
	if err := os.WriteFile(f, []byte("files = []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckFileAccess("registry", f); !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
	if result := CheckFileAccess("registry", dir); result.Passed {
		t.Fatal("expected failure for directory")
	}
	if result := CheckFileAccess("registry", filepath.Join(dir, "missing.toml")); result.Passed {
		t.Fatal("expected failure for missing file")
	}
}

func TestRunAll(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := os.MkdirAll(cfg.Paths.TargetImageDir, 0o755); err != nil {
		t.Fatal(err)
	}

	results := RunAll(cfg)
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	if !AllPassed(results) {
		t.Fatalf("expected all checks to pass, got %+v", results)
	}

	if err := os.RemoveAll(cfg.Paths.PrivateTargetDir); err != nil {
		t.Fatal(err)
	}
	results = RunAll(cfg)
	if AllPassed(results) {
		t.Fatal("expected failure after removing private target dir")
	}
}

func TestRunAllNilConfig(t *testing.T) {
	if results := RunAll(nil); results != nil {
		t.Fatalf("expected nil, got %+v", results)
	}
}
