package retriever

import (
	"context"
	"errors"
	"testing"

	"github.com/horizonedu/starbot/internal/crawler"
)

type stubFetcher struct {
	pages  []crawler.Page
	err    error
	crawls int
}

func (f *stubFetcher) Crawl(string, int) ([]crawler.Page, error) {
	f.crawls++
	return f.pages, f.err
}

func pages(texts ...string) []crawler.Page {
	out := make([]crawler.Page, len(texts))
	for i, t := range texts {
		out[i] = crawler.Page{URL: "https://example.com/" + string(rune('a'+i)), Text: t}
	}
	return out
}

func TestKeywordSearchRanksByTermFrequency(t *testing.T) {
	r := NewKeywordRetriever(&stubFetcher{pages: pages(
		"the library opens early",
		"library library library hours",
		"sports fields and courts",
	)}, "https://example.com", 10)

	got := r.Search(context.Background(), "library hours", 3)
	if len(got) != 2 {
		t.Fatalf("got %d passages, want 2 (the sports page matches nothing)", len(got))
	}
	if got[0] != "library library library hours" {
		t.Errorf("top passage = %q, want the page with the most term hits", got[0])
	}
	if got[1] != "the library opens early" {
		t.Errorf("second passage = %q", got[1])
	}
}

func TestKeywordSearchCapsAtK(t *testing.T) {
	r := NewKeywordRetriever(&stubFetcher{pages: pages(
		"alpha news", "alpha events", "alpha staff", "alpha sports",
	)}, "https://example.com", 10)

	if got := r.Search(context.Background(), "alpha", 2); len(got) != 2 {
		t.Errorf("got %d passages, want 2", len(got))
	}
}

func TestKeywordSearchTiesKeepDiscoveryOrder(t *testing.T) {
	r := NewKeywordRetriever(&stubFetcher{pages: pages(
		"admissions first page", "admissions second page", "admissions third page",
	)}, "https://example.com", 10)

	got := r.Search(context.Background(), "admissions", 3)
	want := []string{"admissions first page", "admissions second page", "admissions third page"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("passage %d = %q, want %q (crawl order must break ties)", i, got[i], want[i])
		}
	}
}

func TestKeywordSearchNoMatchSentinel(t *testing.T) {
	r := NewKeywordRetriever(&stubFetcher{pages: pages("school fees and uniforms")},
		"https://example.com", 10)

	got := r.Search(context.Background(), "quantum chromodynamics", 3)
	if len(got) != 1 || got[0] != NoMatchSentinel {
		t.Errorf("got %v, want the no-match sentinel", got)
	}
}

func TestKeywordSearchCrawlFailureSentinel(t *testing.T) {
	f := &stubFetcher{err: errors.New("connection refused")}
	r := NewKeywordRetriever(f, "https://example.com", 10)

	got := r.Search(context.Background(), "anything", 3)
	if len(got) != 1 || got[0] != NoDataSentinel {
		t.Errorf("got %v, want the no-data sentinel", got)
	}

	// The failed crawl is not retried on subsequent searches.
	r.Search(context.Background(), "anything", 3)
	if f.crawls != 1 {
		t.Errorf("crawl ran %d times, want 1", f.crawls)
	}
}

func TestKeywordInitializeIsIdempotent(t *testing.T) {
	f := &stubFetcher{pages: pages("welcome to the school")}
	r := NewKeywordRetriever(f, "https://example.com", 10)

	for i := 0; i < 3; i++ {
		if err := r.Initialize(context.Background()); err != nil {
			t.Fatalf("Initialize: %v", err)
		}
	}
	if f.crawls != 1 {
		t.Errorf("crawl ran %d times, want 1", f.crawls)
	}
}

func TestKeywordSearchDefaultK(t *testing.T) {
	r := NewKeywordRetriever(&stubFetcher{pages: pages(
		"campus map", "campus tour", "campus life", "campus shop", "campus cafe",
	)}, "https://example.com", 10)

	if got := r.Search(context.Background(), "campus", 0); len(got) != defaultTopK {
		t.Errorf("got %d passages for k=0, want the default %d", len(got), defaultTopK)
	}
}
