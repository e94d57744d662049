package retriever

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/horizonedu/starbot/internal/crawler"
	"github.com/horizonedu/starbot/internal/textutil"
)

// defaultTopK is the passage count used when the caller asks for k <= 0.
const defaultTopK = 3

// Fetcher pulls page texts from a website. *crawler.Crawler satisfies it.
type Fetcher interface {
	Crawl(seedURL string, maxPages int) ([]crawler.Page, error)
}

// KeywordRetriever ranks crawled page texts by raw term frequency of
// the question's words. The crawl happens once, on the first call to
// Initialize or Search, and its outcome is cached for the lifetime of
// the retriever.
type KeywordRetriever struct {
	fetcher  Fetcher
	siteURL  string
	maxPages int

	mu        sync.Mutex
	attempted bool
	initErr   error
	texts     []string
}

// NewKeywordRetriever builds a retriever over the site rooted at siteURL.
func NewKeywordRetriever(fetcher Fetcher, siteURL string, maxPages int) *KeywordRetriever {
	return &KeywordRetriever{fetcher: fetcher, siteURL: siteURL, maxPages: maxPages}
}

// Initialize crawls the site and caches the page texts. Repeat calls
// return the first attempt's outcome without crawling again.
func (r *KeywordRetriever) Initialize(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.initLocked()
}

func (r *KeywordRetriever) initLocked() error {
	if r.attempted {
		return r.initErr
	}
	r.attempted = true

	pages, err := r.fetcher.Crawl(r.siteURL, r.maxPages)
	if err != nil {
		r.initErr = fmt.Errorf("retriever: crawl %s: %w", r.siteURL, err)
		log.Printf("retriever: keyword init failed: %v", err)
		return r.initErr
	}
	for _, p := range pages {
		if p.Text != "" {
			r.texts = append(r.texts, p.Text)
		}
	}
	log.Printf("retriever: keyword index ready with %d pages", len(r.texts))
	return nil
}

// Search returns up to k page texts ordered by descending term
// frequency of the question's words. Pages that match no term are
// excluded. An empty corpus yields the no-data sentinel and a corpus
// with no matching page yields the no-match sentinel.
func (r *KeywordRetriever) Search(_ context.Context, query string, k int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.initLocked(); err != nil || len(r.texts) == 0 {
		return []string{NoDataSentinel}
	}
	if k <= 0 {
		k = defaultTopK
	}

	terms := textutil.Tokenize(query)

	type ranked struct {
		text  string
		score float64
	}
	var hits []ranked
	for _, text := range r.texts {
		if s := textutil.Score(text, terms); s > 0 {
			hits = append(hits, ranked{text: text, score: s})
		}
	}
	if len(hits) == 0 {
		return []string{NoMatchSentinel}
	}

	// Ties keep crawl discovery order.
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	if len(hits) > k {
		hits = hits[:k]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.text
	}
	return out
}
