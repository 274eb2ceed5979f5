package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "roster.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestFindRosterToml_WalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeManifest(t, root, "[package]\nname = \"demo\"\n")

	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, ok, err := FindRosterToml(nested)
	if err != nil {
		t.Fatalf("FindRosterToml: %v", err)
	}
	if !ok {
		t.Fatal("expected manifest to be found")
	}
	if got != want {
		t.Fatalf("path = %q, want %q", got, want)
	}

	rootDir, ok, err := FindProjectRoot(nested)
	if err != nil || !ok {
		t.Fatalf("FindProjectRoot: ok=%v err=%v", ok, err)
	}
	if rootDir != root {
		t.Fatalf("root = %q, want %q", rootDir, root)
	}
}

func TestFindRosterToml_Missing(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := FindRosterToml(dir)
	if err != nil {
		t.Fatalf("FindRosterToml: %v", err)
	}
	if ok {
		t.Fatal("expected no manifest in an empty temp dir")
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"heroes\"\n\n[input]\nmain = \"main.roster\"\n")

	m, ok, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if !ok {
		t.Fatal("expected manifest")
	}
	if m.Config.Package.Name != "heroes" {
		t.Fatalf("package name = %q", m.Config.Package.Name)
	}
	if m.Root != dir {
		t.Fatalf("root = %q, want %q", m.Root, dir)
	}
	main, ok := m.MainInput()
	if !ok {
		t.Fatal("expected main input")
	}
	if main != filepath.Join(dir, "main.roster") {
		t.Fatalf("main = %q", main)
	}
}

func TestLoadManifest_BadToml(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package\nname = ")

	_, ok, err := LoadManifest(dir)
	if !ok {
		t.Fatal("manifest file exists, ok should be true")
	}
	if err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestMainInput_Empty(t *testing.T) {
	m := &Manifest{Root: "/tmp"}
	if _, ok := m.MainInput(); ok {
		t.Fatal("empty input.main should not resolve")
	}
}
