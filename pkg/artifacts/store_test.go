package artifacts

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteArtifactsUnderRunDir(t *testing.T) {
	base := t.TempDir()
	store, err := NewStore(base)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	runID := "0d1f3c9a"
	outlinePath, err := store.WriteOutline(runID, "outline doc")
	if err != nil {
		t.Fatalf("WriteOutline: %v", err)
	}
	if want := filepath.Join(base, runID, OutlineFile); outlinePath != want {
		t.Errorf("outline path = %q, want %q", outlinePath, want)
	}

	if _, err := store.WriteReport(runID, "report doc"); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	if _, err := store.WriteBlog(runID, "# blog"); err != nil {
		t.Fatalf("WriteBlog: %v", err)
	}
	if _, err := store.WritePDF(runID, []byte("%PDF-1.4")); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}

	for _, name := range []string{OutlineFile, ReportFile, BlogFile, PDFFile} {
		if _, err := os.Stat(filepath.Join(base, runID, name)); err != nil {
			t.Errorf("artifact %s not written: %v", name, err)
		}
	}

	got, err := os.ReadFile(outlinePath)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "outline doc" {
		t.Errorf("outline content = %q", got)
	}
}

func TestNewStoreDefaultsBaseDir(t *testing.T) {
	dir := t.TempDir()
	old, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })

	store, err := NewStore("")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if _, err := store.RunDir("abc"); err != nil {
		t.Fatalf("RunDir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, DefaultBaseDir, "abc")); err != nil {
		t.Errorf("default base dir not used: %v", err)
	}
}

func TestRunsAreIsolated(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.WriteOutline("run-a", "a"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.WriteOutline("run-b", "b"); err != nil {
		t.Fatal(err)
	}
	a, _ := store.RunDir("run-a")
	got, err := os.ReadFile(filepath.Join(a, OutlineFile))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "a" {
		t.Errorf("run-a outline = %q", got)
	}
}
