// Package retriever selects context passages for a question. Two
// strategies are provided: a keyword retriever that ranks crawled pages
// by term frequency, and a vector retriever backed by an embedding
// store. Both return sentinel passages instead of errors so the answer
// pipeline always has something to hand the language model.
package retriever

import "context"

// Sentinel passages returned when retrieval cannot produce real context.
const (
	// NoDataSentinel is returned when the retriever has no corpus at
	// all, typically because ingestion failed.
	NoDataSentinel = "No data available."

	// NoMatchSentinel is returned when the corpus exists but nothing
	// in it relates to the question.
	NoMatchSentinel = "No relevant information found."
)

// Retriever finds passages relevant to a question.
type Retriever interface {
	// Initialize prepares the underlying corpus. It is idempotent and
	// safe to call concurrently.
	Initialize(ctx context.Context) error

	// Search returns up to k passages ordered by decreasing relevance.
	// It never fails: degraded states surface as a single sentinel
	// passage.
	Search(ctx context.Context, query string, k int) []string
}
