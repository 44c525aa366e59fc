package source

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestResolvePaths_Glob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.phn"), "")
	writeFile(t, filepath.Join(dir, "a.phn"), "")
	writeFile(t, filepath.Join(dir, "notes.txt"), "")

	files, err := ResolvePaths([]string{filepath.Join(dir, "*.phn")})
	if err != nil {
		t.Fatalf("ResolvePaths failed: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %v", files)
	}
	if filepath.Base(files[0]) != "a.phn" || filepath.Base(files[1]) != "b.phn" {
		t.Errorf("expected sorted matches, got %v", files)
	}
}

func TestResolvePaths_Doublestar(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "nested", "deep", "x.phn"), "")
	writeFile(t, filepath.Join(dir, "top.phn"), "")

	files, err := ResolvePaths([]string{filepath.Join(dir, "**", "*.phn")})
	if err != nil {
		t.Fatalf("ResolvePaths failed: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("expected recursive match to find 2 files, got %v", files)
	}
}

func TestResolvePaths_LiteralPassThrough(t *testing.T) {
	// A literal path passes through even when the file does not exist,
	// so the later load error names the missing file.
	files, err := ResolvePaths([]string{"does-not-exist.phn"})
	if err != nil {
		t.Fatalf("ResolvePaths failed: %v", err)
	}
	if len(files) != 1 || files[0] != "does-not-exist.phn" {
		t.Errorf("expected literal pass-through, got %v", files)
	}
}

func TestResolvePaths_Dedupe(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.phn")
	writeFile(t, path, "")

	files, err := ResolvePaths([]string{path, filepath.Join(dir, "*.phn")})
	if err != nil {
		t.Fatalf("ResolvePaths failed: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("expected deduplicated result, got %v", files)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scheme.phn")
	writeFile(t, path, "$Vaeiou\n&+VV\n")

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if doc.Path != path {
		t.Errorf("expected path %s, got %s", path, doc.Path)
	}
	if doc.Text != "$Vaeiou\n&+VV\n" {
		t.Errorf("unexpected document text %q", doc.Text)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.phn")); err == nil {
		t.Error("expected error for missing file")
	}
}
