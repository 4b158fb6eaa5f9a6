// Package extract turns CV document files into plain text for the matching
// engine. Format-specific parsing stays behind the Extractor interface; this
// package ships a plain-text implementation, PDF/DOCX readers plug in from
// outside.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// Document is the extraction product handed to the analysis session.
type Document struct {
	Name    string
	Path    string
	Text    string
	Size    int64
	Elapsed time.Duration
}

// Error is a typed extraction failure. The analysis layer records it per
// file instead of aborting a batch.
type Error struct {
	Path   string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("extracting %q: %s", e.Path, e.Reason)
}

// Extractor supplies plain text for one source document. Implementations
// return either a non-nil document (its text may be empty) or a typed
// failure; the matching core never inspects file formats.
type Extractor interface {
	Supported(path string) bool
	Extract(path string) (*Document, error)
}

// Plain reads UTF-8 text files and normalizes their whitespace.
type Plain struct {
	// MaxBytes caps how much of a single file is read. Zero selects the
	// default cap.
	MaxBytes int64
}

const defaultMaxBytes = 10 << 20

func (p *Plain) Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text", ".md":
		return true
	default:
		return false
	}
}

func (p *Plain) Extract(path string) (*Document, error) {
	start := time.Now()

	if !p.Supported(path) {
		return nil, &Error{Path: path, Reason: "unsupported file format"}
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, &Error{Path: path, Reason: err.Error()}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Reason: err.Error()}
	}

	limit := p.MaxBytes
	if limit <= 0 {
		limit = defaultMaxBytes
	}
	if int64(len(data)) > limit {
		data = data[:limit]
	}

	return &Document{
		Name:    filepath.Base(path),
		Path:    path,
		Text:    Clean(string(data)),
		Size:    info.Size(),
		Elapsed: time.Since(start),
	}, nil
}

// Clean normalizes extracted text: control characters are dropped and runs
// of whitespace collapse to single spaces, so match positions are stable
// across extractors that disagree about line breaks.
func Clean(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	pendingSpace := false
	for _, r := range raw {
		if unicode.IsSpace(r) {
			pendingSpace = true
			continue
		}
		if unicode.IsControl(r) {
			continue
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteRune(r)
	}

	return b.String()
}
