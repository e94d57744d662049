package document

// Type categorizes the source a document was ingested from.
type Type string

const (
	TypeWeb   Type = "web"
	TypeText  Type = "text"
	TypePDF   Type = "pdf"
	TypeImage Type = "image"
)

// Document is a piece of ingested content together with its provenance.
// Documents are value types; ingestion produces them and chunking/indexing
// consume them without mutation.
type Document struct {
	Content  string
	Metadata Metadata
}

// Metadata holds structured provenance for a document. Position-specific
// fields (Chunk, Page, image dimensions) are only set where they apply.
type Metadata struct {
	Source string // URL or file path the content came from
	Type   Type

	// Chunk index within the parent document, set by the chunker.
	Chunk int

	// PDF page number, 1-based.
	Page int

	// Image properties reported by the OCR capability.
	Format string
	Width  int
	Height int
}

// Scored pairs a document with a query-relevance score. Scored values are
// produced per query and discarded after top-k selection.
type Scored struct {
	Document Document
	Score    float64
}
