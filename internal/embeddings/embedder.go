// Package embeddings provides text embedding backends for the vector
// retriever. Embedding computation is fully delegated to the backend; the
// rest of the system only sees the Embedder interface.
package embeddings

import "context"

// Embedder generates vector embeddings for text.
type Embedder interface {
	// Embed generates embeddings for one or more texts.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the length of the produced vectors.
	Dimensions() int

	// Name identifies the embedding model.
	Name() string
}
