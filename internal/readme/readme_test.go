package readme

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleDoc = `# My Profile

Some intro text.

<!-- LEETCODE_STATS_START -->
old content
<!-- LEETCODE_STATS_END -->

Trailing text.
`

func TestSplice(t *testing.T) {
	out, err := Splice(sampleDoc, "new block")
	if err != nil {
		t.Fatalf("Splice() error = %v", err)
	}

	if !strings.Contains(out, StartMarker+"\nnew block\n"+EndMarker) {
		t.Errorf("expected new block between markers, got:\n%s", out)
	}
	if strings.Contains(out, "old content") {
		t.Errorf("expected old content to be replaced, got:\n%s", out)
	}
	if !strings.HasPrefix(out, "# My Profile\n\nSome intro text.\n") {
		t.Errorf("text before markers should be untouched, got:\n%s", out)
	}
	if !strings.HasSuffix(out, EndMarker+"\n\nTrailing text.\n") {
		t.Errorf("text after markers should be untouched, got:\n%s", out)
	}
}

func TestSplice_MissingMarkers(t *testing.T) {
	_, err := Splice("no markers here", "block")
	if !errors.Is(err, ErrMarkersNotFound) {
		t.Errorf("Splice() error = %v, want ErrMarkersNotFound", err)
	}
}

func TestSplice_EndBeforeStart(t *testing.T) {
	doc := EndMarker + "\nmiddle\n" + StartMarker + "\n"
	_, err := Splice(doc, "block")
	if !errors.Is(err, ErrMarkersNotFound) {
		t.Errorf("Splice() error = %v, want ErrMarkersNotFound", err)
	}
}

func TestUpdateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := UpdateFile(path, "fresh stats"); err != nil {
		t.Fatalf("UpdateFile() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), StartMarker+"\nfresh stats\n"+EndMarker) {
		t.Errorf("expected fresh stats between markers, got:\n%s", content)
	}
}

func TestUpdateFile_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := UpdateFile(path, "same block"); err != nil {
		t.Fatalf("first UpdateFile() error = %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := UpdateFile(path, "same block"); err != nil {
		t.Fatalf("second UpdateFile() error = %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Errorf("two runs with the same block should be byte-identical:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestUpdateFile_MissingMarkersLeavesFileUntouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")
	initial := "# No managed region here\n"
	if err := os.WriteFile(path, []byte(initial), 0o644); err != nil {
		t.Fatal(err)
	}

	err := UpdateFile(path, "block")
	if !errors.Is(err, ErrMarkersNotFound) {
		t.Fatalf("UpdateFile() error = %v, want ErrMarkersNotFound", err)
	}

	content, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if string(content) != initial {
		t.Errorf("file should be unchanged after failed update, got:\n%s", content)
	}
}

func TestUpdateFile_MissingFile(t *testing.T) {
	dir := t.TempDir()

	err := UpdateFile(filepath.Join(dir, "nope.md"), "block")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("UpdateFile() error = %v, want wrapped os.ErrNotExist", err)
	}
}
