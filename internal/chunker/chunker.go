// Package chunker splits long documents into bounded, overlapping passages
// so generation backends with an input-length budget can consume them.
package chunker

import (
	"fmt"
	"strings"

	"github.com/horizonedu/starbot/internal/document"
)

// Defaults match the ingestion pipeline's text splitter settings.
const (
	DefaultChunkSize = 750
	DefaultOverlap   = 100
)

// Split cuts doc into chunks of at most size whitespace tokens, with each
// chunk repeating the last overlap tokens of its predecessor so concepts
// spanning a boundary still appear together in at least one chunk.
//
// A document of size tokens or fewer is returned unchanged as a single
// chunk. Dropping the first overlap tokens of every chunk after the first
// and concatenating reconstructs the original token sequence.
func Split(doc document.Document, size, overlap int) ([]document.Document, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("overlap must be in [0, size), got overlap=%d size=%d", overlap, size)
	}

	words := strings.Fields(doc.Content)
	if len(words) <= size {
		chunk := doc
		chunk.Metadata.Chunk = 0
		return []document.Document{chunk}, nil
	}

	step := size - overlap
	var chunks []document.Document
	for start := 0; start < len(words); start += step {
		end := start + size
		if end > len(words) {
			end = len(words)
		}

		chunk := document.Document{
			Content:  strings.Join(words[start:end], " "),
			Metadata: doc.Metadata,
		}
		chunk.Metadata.Chunk = len(chunks)
		chunks = append(chunks, chunk)

		if end == len(words) {
			break
		}
	}
	return chunks, nil
}

// SplitAll chunks every document in docs with the same settings.
func SplitAll(docs []document.Document, size, overlap int) ([]document.Document, error) {
	var out []document.Document
	for _, doc := range docs {
		chunks, err := Split(doc, size, overlap)
		if err != nil {
			return nil, err
		}
		out = append(out, chunks...)
	}
	return out, nil
}
