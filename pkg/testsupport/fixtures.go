package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgdocs "github.com/goliatone/go-feedmeta/pkg/docs"
	pkgfeed "github.com/goliatone/go-feedmeta/pkg/feed"
)

// LoadDocument reads a fixture and builds a feed.Document using a file
// source. Testing helpers fail the test on error to keep contract tests
// concise.
func LoadDocument(t *testing.T, path string) pkgfeed.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadDocumentFromPath(path string) (pkgfeed.Document, error) {
	if path == "" {
		return pkgfeed.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pkgfeed.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := pkgfeed.NewDocument(pkgfeed.SourceFromFile(path), data)
	if err != nil {
		return pkgfeed.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// MustLoadModel loads a JSON golden file into a docs.Model structure.
func MustLoadModel(t *testing.T, path string) pkgdocs.Model {
	t.Helper()

	model, err := LoadModel(path)
	if err != nil {
		t.Fatalf("load model: %v", err)
	}
	return model
}

// LoadModel reads a JSON fixture into a docs.Model, returning an error for
// callers managing setup outside of *testing.T.
func LoadModel(path string) (pkgdocs.Model, error) {
	if path == "" {
		return pkgdocs.Model{}, errors.New("testsupport: model path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pkgdocs.Model{}, fmt.Errorf("testsupport: read model: %w", err)
	}
	var out pkgdocs.Model
	if err := json.Unmarshal(data, &out); err != nil {
		return pkgdocs.Model{}, fmt.Errorf("testsupport: unmarshal model: %w", err)
	}
	return out, nil
}

// WriteModel writes a docs model golden when UPDATE_GOLDENS is enabled.
func WriteModel(t *testing.T, path string, value pkgdocs.Model) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal model: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents. Tests
// can assert the renderer returns and writes the same payload without
// duplicating buffer setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
