package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/horizonedu/starbot/internal/document"
)

type stubPDF struct{ pages map[string][]string }

func (s stubPDF) ExtractPages(path string) ([]string, error) {
	pages, ok := s.pages[path]
	if !ok {
		return nil, fmt.Errorf("no such pdf: %s", path)
	}
	return pages, nil
}

type stubOCR struct{ texts map[string]string }

func (s stubOCR) Recognize(path string) (string, error) {
	return s.texts[filepath.Base(path)], nil
}

func newIngestor(opts ...Option) *Ingestor {
	return New(nil, 10, 750, 100, opts...)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTextFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "about.txt", "Star College is in Durban.")
	docs, err := newIngestor().TextFile(path)
	if err != nil {
		t.Fatalf("TextFile: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d chunks, want 1", len(docs))
	}
	if docs[0].Content != "Star College is in Durban." {
		t.Errorf("Content = %q", docs[0].Content)
	}
	if docs[0].Metadata.Source != path || docs[0].Metadata.Type != document.TypeText {
		t.Errorf("Metadata = %+v", docs[0].Metadata)
	}
}

func TestTextFileMissing(t *testing.T) {
	if _, err := newIngestor().TextFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestPDFFile(t *testing.T) {
	ing := newIngestor(WithPDFExtractor(stubPDF{pages: map[string][]string{
		"prospectus.pdf": {"page one text", "page two text"},
	}}))

	docs, err := ing.PDFFile("prospectus.pdf")
	if err != nil {
		t.Fatalf("PDFFile: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d chunks, want 2", len(docs))
	}
	if docs[0].Metadata.Page != 1 || docs[1].Metadata.Page != 2 {
		t.Errorf("pages = %d, %d", docs[0].Metadata.Page, docs[1].Metadata.Page)
	}
	if docs[0].Metadata.Type != document.TypePDF {
		t.Errorf("Type = %q", docs[0].Metadata.Type)
	}
}

func TestPDFFileWithoutExtractor(t *testing.T) {
	if _, err := newIngestor().PDFFile("any.pdf"); err == nil {
		t.Error("expected an error without a configured extractor")
	}
}

func TestImageSkipsEmptyRecognition(t *testing.T) {
	ing := newIngestor(WithOCR(stubOCR{texts: map[string]string{
		"poster.png": "Open day on Saturday",
		"blank.png":  "",
	}}))

	docs, err := ing.Image("poster.png")
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if len(docs) != 1 || docs[0].Content != "Open day on Saturday" {
		t.Fatalf("docs = %+v", docs)
	}
	if docs[0].Metadata.Type != document.TypeImage {
		t.Errorf("Type = %q", docs[0].Metadata.Type)
	}

	docs, err = ing.Image("blank.png")
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("blank image produced %d chunks", len(docs))
	}
}

func TestDirectoryGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "first file")
	writeFile(t, dir, "nested/b.txt", "second file")
	writeFile(t, dir, "ignore.md", "not matched")

	docs, err := newIngestor().Directory(dir, "")
	if err != nil {
		t.Fatalf("Directory: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d chunks, want 2 (the markdown file is excluded)", len(docs))
	}
}

func TestImageDirectoryGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.png", "binary")
	writeFile(t, dir, "two.jpg", "binary")
	writeFile(t, dir, "skip.txt", "text")

	ing := newIngestor(WithOCR(stubOCR{texts: map[string]string{
		"one.png": "first image text",
		"two.jpg": "second image text",
	}}))

	docs, err := ing.ImageDirectory(dir, "")
	if err != nil {
		t.Fatalf("ImageDirectory: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d chunks, want 2", len(docs))
	}
}

func TestAllCombinesSources(t *testing.T) {
	dir := t.TempDir()
	txt := writeFile(t, dir, "notes.txt", "notes about the school")

	ing := newIngestor(WithPDFExtractor(stubPDF{pages: map[string][]string{
		"guide.pdf": {"guide content"},
	}}))

	docs, err := ing.All(context.Background(), Sources{
		TextFiles: []string{txt},
		PDFFiles:  []string{"guide.pdf"},
	})
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d chunks, want 2", len(docs))
	}
}
