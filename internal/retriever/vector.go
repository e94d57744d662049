package retriever

import (
	"context"
	"log"

	"github.com/horizonedu/starbot/internal/vectordb"
)

// VectorRetriever answers queries against an embedding store. The
// store is expected to be populated ahead of time, either by ingestion
// or by loading a persisted export.
type VectorRetriever struct {
	store *vectordb.Store
}

// NewVectorRetriever wraps an already constructed store.
func NewVectorRetriever(store *vectordb.Store) *VectorRetriever {
	return &VectorRetriever{store: store}
}

// Initialize reports whether the store holds any documents. The store
// itself is built elsewhere, so there is nothing to do beyond that.
func (r *VectorRetriever) Initialize(_ context.Context) error {
	if r.store.Count() == 0 {
		log.Printf("retriever: vector store is empty, answers will lack context")
	}
	return nil
}

// Search returns the contents of the k nearest chunks. Failures and
// empty stores degrade to sentinel passages rather than errors.
func (r *VectorRetriever) Search(ctx context.Context, query string, k int) []string {
	if r.store.Count() == 0 {
		return []string{NoDataSentinel}
	}
	if k <= 0 {
		k = defaultTopK
	}

	results, err := r.store.Search(ctx, query, k)
	if err != nil {
		log.Printf("retriever: vector search: %v", err)
		return []string{NoDataSentinel}
	}
	if len(results) == 0 {
		return []string{NoMatchSentinel}
	}

	out := make([]string, len(results))
	for i, res := range results {
		out[i] = res.Document.Content
	}
	return out
}
