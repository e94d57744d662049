// Package vectordb stores chunked documents in a chromem-go collection and
// retrieves them by embedding similarity. Nearest-neighbor search and vector
// math live entirely in chromem-go; this package only handles the assembly:
// document identity, metadata flattening, and collection naming.
package vectordb

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	chromem "github.com/philippgille/chromem-go"

	"github.com/horizonedu/starbot/internal/document"
	"github.com/horizonedu/starbot/internal/embeddings"
)

const exportFile = "vectordb.gob.gz"

// Result pairs a retrieved document with its similarity to the query.
type Result struct {
	Document   document.Document
	Similarity float32
}

// Store is an embedding-backed document index. The collection name
// identifies a logical corpus, so several ingestions can coexist in one
// process without collision.
type Store struct {
	db         *chromem.DB
	collection *chromem.Collection
	name       string
	embedFunc  chromem.EmbeddingFunc
}

// New creates an in-memory Store whose documents live in the named
// collection and are embedded with the given embedder.
func New(embedder embeddings.Embedder, collection string) (*Store, error) {
	db := chromem.NewDB()
	ef := embeddings.ToChromemFunc(embedder)

	col, err := db.GetOrCreateCollection(collection, nil, ef)
	if err != nil {
		return nil, fmt.Errorf("creating collection %q: %w", collection, err)
	}

	return &Store{
		db:         db,
		collection: col,
		name:       collection,
		embedFunc:  ef,
	}, nil
}

// Add indexes the given documents. Documents must already be chunked; the
// ID is derived from source and chunk index, so re-adding the same chunk
// overwrites rather than duplicates.
func (s *Store) Add(ctx context.Context, docs []document.Document) error {
	if len(docs) == 0 {
		return nil
	}

	records := make([]chromem.Document, len(docs))
	for i, doc := range docs {
		records[i] = chromem.Document{
			ID:       fmt.Sprintf("%s#%d", doc.Metadata.Source, doc.Metadata.Chunk),
			Content:  doc.Content,
			Metadata: flatten(doc.Metadata),
		}
	}
	return s.collection.AddDocuments(ctx, records, 1)
}

// Search returns the k documents most similar to the query, best first.
func (s *Store) Search(ctx context.Context, query string, k int) ([]Result, error) {
	if k <= 0 {
		k = 3
	}

	// chromem-go rejects nResults larger than the collection.
	count := s.collection.Count()
	if count == 0 {
		return nil, nil
	}
	if k > count {
		k = count
	}

	hits, err := s.collection.Query(ctx, query, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("querying collection %q: %w", s.name, err)
	}

	results := make([]Result, len(hits))
	for i, h := range hits {
		results[i] = Result{
			Document: document.Document{
				Content:  h.Content,
				Metadata: unflatten(h.Metadata),
			},
			Similarity: h.Similarity,
		}
	}
	return results, nil
}

// Count returns the number of indexed documents.
func (s *Store) Count() int { return s.collection.Count() }

// Persist writes the store to dir so a later process can Load it.
func (s *Store) Persist(dir string) error {
	return s.db.ExportToFile(filepath.Join(dir, exportFile), true, "")
}

// Load restores a previously persisted store from dir.
func (s *Store) Load(dir string) error {
	if err := s.db.ImportFromFile(filepath.Join(dir, exportFile), ""); err != nil {
		return fmt.Errorf("importing vector store: %w", err)
	}

	// The import replaces collection contents; re-acquire the handle.
	col := s.db.GetCollection(s.name, s.embedFunc)
	if col == nil {
		return fmt.Errorf("collection %q not found after import", s.name)
	}
	s.collection = col
	return nil
}

func flatten(m document.Metadata) map[string]string {
	md := map[string]string{
		"source": m.Source,
		"type":   string(m.Type),
		"chunk":  strconv.Itoa(m.Chunk),
	}
	if m.Page > 0 {
		md["page"] = strconv.Itoa(m.Page)
	}
	if m.Format != "" {
		md["format"] = m.Format
		md["width"] = strconv.Itoa(m.Width)
		md["height"] = strconv.Itoa(m.Height)
	}
	return md
}

func unflatten(m map[string]string) document.Metadata {
	chunk, _ := strconv.Atoi(m["chunk"])
	page, _ := strconv.Atoi(m["page"])
	width, _ := strconv.Atoi(m["width"])
	height, _ := strconv.Atoi(m["height"])

	return document.Metadata{
		Source: m["source"],
		Type:   document.Type(m["type"]),
		Chunk:  chunk,
		Page:   page,
		Format: m["format"],
		Width:  width,
		Height: height,
	}
}
