// Package ingest turns websites, files and images into chunked
// documents ready for the vector store.
package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/horizonedu/starbot/internal/chunker"
	"github.com/horizonedu/starbot/internal/crawler"
	"github.com/horizonedu/starbot/internal/document"
)

// defaultTextGlob matches text files when no pattern is given.
const defaultTextGlob = "**/*.txt"

// defaultImageGlob matches common image formats.
const defaultImageGlob = "**/*.{jpg,jpeg,png,gif,bmp,tiff}"

// PDFExtractor pulls page texts out of a PDF file.
type PDFExtractor interface {
	ExtractPages(path string) ([]string, error)
}

// OCR recognizes text in an image file.
type OCR interface {
	Recognize(path string) (string, error)
}

// Ingestor converts raw sources into chunked documents.
type Ingestor struct {
	crawler  *crawler.Crawler
	maxPages int
	size     int
	overlap  int
	pdf      PDFExtractor // nil disables PDF ingestion
	ocr      OCR          // nil disables image ingestion
}

// Option configures an Ingestor.
type Option func(*Ingestor)

// WithPDFExtractor enables PDF ingestion.
func WithPDFExtractor(p PDFExtractor) Option {
	return func(i *Ingestor) { i.pdf = p }
}

// WithOCR enables image ingestion.
func WithOCR(o OCR) Option {
	return func(i *Ingestor) { i.ocr = o }
}

// New creates an Ingestor chunking with the given size and overlap.
func New(c *crawler.Crawler, maxPages, size, overlap int, opts ...Option) *Ingestor {
	ing := &Ingestor{
		crawler:  c,
		maxPages: maxPages,
		size:     size,
		overlap:  overlap,
	}
	for _, opt := range opts {
		opt(ing)
	}
	return ing
}

// Website crawls a site and chunks every fetched page.
func (i *Ingestor) Website(_ context.Context, url string) ([]document.Document, error) {
	pages, err := i.crawler.Crawl(url, i.maxPages)
	if err != nil {
		return nil, fmt.Errorf("ingest: crawl %s: %w", url, err)
	}

	docs := make([]document.Document, 0, len(pages))
	for _, p := range pages {
		docs = append(docs, document.Document{
			Content:  p.Text,
			Metadata: document.Metadata{Source: p.URL, Type: document.TypeWeb},
		})
	}
	return i.chunk(docs)
}

// TextFile reads and chunks a single text file.
func (i *Ingestor) TextFile(path string) ([]document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: read %s: %w", path, err)
	}
	return i.chunk([]document.Document{{
		Content:  string(data),
		Metadata: document.Metadata{Source: path, Type: document.TypeText},
	}})
}

// PDFFile extracts and chunks the pages of a PDF. Requires a
// configured extractor.
func (i *Ingestor) PDFFile(path string) ([]document.Document, error) {
	if i.pdf == nil {
		return nil, fmt.Errorf("ingest: no PDF extractor configured")
	}
	pages, err := i.pdf.ExtractPages(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: extract %s: %w", path, err)
	}

	docs := make([]document.Document, 0, len(pages))
	for n, text := range pages {
		docs = append(docs, document.Document{
			Content:  text,
			Metadata: document.Metadata{Source: path, Type: document.TypePDF, Page: n + 1},
		})
	}
	return i.chunk(docs)
}

// Image runs OCR over one image and chunks the recognized text.
// Requires a configured OCR engine.
func (i *Ingestor) Image(path string) ([]document.Document, error) {
	if i.ocr == nil {
		return nil, fmt.Errorf("ingest: no OCR engine configured")
	}
	text, err := i.ocr.Recognize(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: recognize %s: %w", path, err)
	}
	if text == "" {
		return nil, nil
	}
	return i.chunk([]document.Document{{
		Content:  text,
		Metadata: document.Metadata{Source: path, Type: document.TypeImage},
	}})
}

// Directory ingests every text file under dir matching pattern. An
// empty pattern matches all .txt files recursively.
func (i *Ingestor) Directory(dir, pattern string) ([]document.Document, error) {
	if pattern == "" {
		pattern = defaultTextGlob
	}
	paths, err := globDir(dir, pattern)
	if err != nil {
		return nil, err
	}

	var docs []document.Document
	for _, path := range paths {
		chunks, err := i.TextFile(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, chunks...)
	}
	return docs, nil
}

// ImageDirectory ingests every image under dir matching pattern. An
// empty pattern matches common image formats recursively.
func (i *Ingestor) ImageDirectory(dir, pattern string) ([]document.Document, error) {
	if pattern == "" {
		pattern = defaultImageGlob
	}
	paths, err := globDir(dir, pattern)
	if err != nil {
		return nil, err
	}

	var docs []document.Document
	for _, path := range paths {
		chunks, err := i.Image(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, chunks...)
	}
	return docs, nil
}

// Sources names every input of one ingestion run.
type Sources struct {
	URLs             []string
	TextFiles        []string
	PDFFiles         []string
	ImageFiles       []string
	Directories      []string
	ImageDirectories []string
}

// All ingests every listed source and returns the combined chunks.
func (i *Ingestor) All(ctx context.Context, src Sources) ([]document.Document, error) {
	var docs []document.Document

	for _, path := range src.TextFiles {
		chunks, err := i.TextFile(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, chunks...)
	}
	for _, path := range src.PDFFiles {
		chunks, err := i.PDFFile(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, chunks...)
	}
	for _, url := range src.URLs {
		chunks, err := i.Website(ctx, url)
		if err != nil {
			return nil, err
		}
		docs = append(docs, chunks...)
	}
	for _, dir := range src.Directories {
		chunks, err := i.Directory(dir, "")
		if err != nil {
			return nil, err
		}
		docs = append(docs, chunks...)
	}
	for _, path := range src.ImageFiles {
		chunks, err := i.Image(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, chunks...)
	}
	for _, dir := range src.ImageDirectories {
		chunks, err := i.ImageDirectory(dir, "")
		if err != nil {
			return nil, err
		}
		docs = append(docs, chunks...)
	}
	return docs, nil
}

func (i *Ingestor) chunk(docs []document.Document) ([]document.Document, error) {
	return chunker.SplitAll(docs, i.size, i.overlap)
}

// globDir resolves a doublestar pattern relative to dir into sorted
// absolute-ish paths.
func globDir(dir, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), pattern)
	if err != nil {
		return nil, fmt.Errorf("ingest: glob %s in %s: %w", pattern, dir, err)
	}
	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = filepath.Join(dir, m)
	}
	return paths, nil
}
