package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestPlainExtract(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.txt")
	raw := "John Smith\n\nPython developer.\t5 years\r\nDjango, SQL."
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	doc, err := (&Plain{}).Extract(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "John Smith Python developer. 5 years Django, SQL."
	if doc.Text != want {
		t.Fatalf("unexpected text: %q", doc.Text)
	}
	if doc.Name != "cv.txt" {
		t.Fatalf("unexpected name: %q", doc.Name)
	}
	if doc.Size != int64(len(raw)) {
		t.Fatalf("unexpected size: %d", doc.Size)
	}
}

func TestPlainExtractUnsupportedFormat(t *testing.T) {
	_, err := (&Plain{}).Extract("resume.pdf")
	if err == nil {
		t.Fatalf("expected error for unsupported format")
	}

	var extractErr *Error
	if !errors.As(err, &extractErr) {
		t.Fatalf("expected typed extraction error, got %T", err)
	}
	if extractErr.Path != "resume.pdf" {
		t.Fatalf("unexpected path: %q", extractErr.Path)
	}
}

func TestPlainExtractMissingFile(t *testing.T) {
	_, err := (&Plain{}).Extract(filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestPlainSupported(t *testing.T) {
	p := &Plain{}
	for path, want := range map[string]bool{
		"cv.txt":  true,
		"CV.TXT":  true,
		"cv.md":   true,
		"cv.pdf":  false,
		"cv.docx": false,
		"cv":      false,
	} {
		if got := p.Supported(path); got != want {
			t.Fatalf("Supported(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestCleanEmptyInput(t *testing.T) {
	if got := Clean("   \n\t  "); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
	if got := Clean(""); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}
