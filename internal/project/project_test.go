package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"langfront/internal/diag"
	"langfront/internal/project"
)

func writeProject(t *testing.T, manifest string, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, project.ManifestFile), []byte(manifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	srcDir := filepath.Join(dir, "src")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		t.Fatalf("mkdir src: %v", err)
	}
	for rel, content := range files {
		full := filepath.Join(srcDir, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(full), err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", full, err)
		}
	}
	return dir
}

func TestLoadManifestRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no package section", `[run]`},
		{"missing name", "[package]\nkind = \"bin\"\nsemver = \"0.1.0\"\n"},
		{"bad kind", "[package]\nname = \"x\"\nkind = \"lib-ish\"\nsemver = \"0.1.0\"\n"},
		{"missing semver", "[package]\nname = \"x\"\nkind = \"bin\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, project.ManifestFile)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write manifest: %v", err)
			}
			if _, err := project.LoadManifest(path); err == nil {
				t.Fatalf("expected an error for %q", tt.content)
			}
		})
	}
}

func TestLoadManifestAccepted(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, project.ManifestFile)
	content := "[package]\nname = \"hello\"\nkind = \"bin\"\nsemver = \"0.1.0\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	m, err := project.LoadManifest(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name != "hello" || !m.IsBinary() || m.Semver != "0.1.0" {
		t.Fatalf("unexpected manifest: %+v", m)
	}
}

func TestLoadFindsBinaryRoot(t *testing.T) {
	dir := writeProject(t, "[package]\nname = \"hello\"\nkind = \"bin\"\nsemver = \"0.1.0\"\n", map[string]string{
		"main.lang": `proc main() -> s32 { return 0; }`,
	})
	bag := diag.NewBag()
	sess, err := project.Load(dir, false, bag)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Tree.Modules[sess.RootFile] == nil {
		t.Fatalf("expected the root file to be parsed into the tree")
	}
}

func TestLoadFindsLibraryRoot(t *testing.T) {
	dir := writeProject(t, "[package]\nname = \"helper\"\nkind = \"lib\"\nsemver = \"0.1.0\"\n", map[string]string{
		"lib.lang": `pub proc assist() {}`,
	})
	bag := diag.NewBag()
	sess, err := project.Load(dir, false, bag)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Manifest.IsBinary() {
		t.Fatalf("expected a lib package, got IsBinary() == true")
	}
}

func TestLoadRejectsMissingRoot(t *testing.T) {
	dir := writeProject(t, "[package]\nname = \"hello\"\nkind = \"bin\"\nsemver = \"0.1.0\"\n", map[string]string{
		"helper.lang": `pub proc assist() {}`,
	})
	bag := diag.NewBag()
	if _, err := project.Load(dir, false, bag); err == nil {
		t.Fatal("expected an error when src/main.lang is missing")
	}
}

func TestLoadSkipsNonSourceFiles(t *testing.T) {
	dir := writeProject(t, "[package]\nname = \"hello\"\nkind = \"bin\"\nsemver = \"0.1.0\"\n", map[string]string{
		"main.lang": `proc main() -> s32 { return 0; }`,
		"README.md": "not a source file",
	})
	bag := diag.NewBag()
	if _, err := project.Load(dir, false, bag); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadParsesSiblingModules(t *testing.T) {
	dir := writeProject(t, "[package]\nname = \"hello\"\nkind = \"bin\"\nsemver = \"0.1.0\"\n", map[string]string{
		"main.lang":       `import helper; proc main() -> s32 { return helper::answer(); }`,
		"helper.lang":     `pub proc answer() -> s32 { return 42; }`,
		"nested/mod.lang": `pub proc unused() {}`,
	})
	bag := diag.NewBag()
	sess, err := project.Load(dir, false, bag)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	helperID, ok := sess.Files.GetLatest(filepath.Join(dir, "src", "helper.lang"))
	if !ok || sess.Tree.Modules[helperID] == nil {
		t.Fatalf("expected helper.lang to be parsed")
	}
}
