// Package crawler fetches every reachable page of a single website.
package crawler

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/queue"
)

const defaultUserAgent = "StarBot/1.0"

// Page is the cleaned text content of one fetched page.
type Page struct {
	URL  string
	Text string
}

// Config holds crawler configuration.
type Config struct {
	UserAgent string
	Timeout   time.Duration
	Delay     time.Duration
}

// Crawler performs a breadth-first, same-domain crawl. A Crawler is safe to
// reuse; each Crawl call owns its own visited/frontier state, so two crawls
// of the same site are independent.
type Crawler struct {
	cfg Config
}

// New creates a Crawler with the given configuration.
func New(cfg Config) *Crawler {
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Crawler{cfg: cfg}
}

// Crawl visits up to maxPages pages of the site rooted at seedURL, breadth
// first, and returns their cleaned text in discovery order. Only pages on
// the seed's host are fetched, no page is fetched twice, and a single page
// failure never aborts the crawl.
func (c *Crawler) Crawl(seedURL string, maxPages int) ([]Page, error) {
	if !strings.HasSuffix(seedURL, "/") {
		seedURL += "/"
	}

	seed, err := url.Parse(seedURL)
	if err != nil {
		return nil, fmt.Errorf("parsing seed URL %q: %w", seedURL, err)
	}
	if seed.Hostname() == "" {
		return nil, fmt.Errorf("seed URL %q has no host", seedURL)
	}

	collector := colly.NewCollector(
		colly.AllowedDomains(seed.Hostname()),
		colly.UserAgent(c.cfg.UserAgent),
	)
	collector.SetRequestTimeout(c.cfg.Timeout)
	if c.cfg.Delay > 0 {
		collector.Limit(&colly.LimitRule{DomainGlob: "*", Delay: c.cfg.Delay})
	}

	// A single consumer thread keeps the frontier strictly FIFO, which is
	// what makes the traversal breadth-first.
	frontier, err := queue.New(1, &queue.InMemoryQueueStorage{MaxSize: 10000})
	if err != nil {
		return nil, fmt.Errorf("creating frontier queue: %w", err)
	}

	var (
		mu      sync.Mutex
		pages   []Page
		fetched int
		queued  = map[string]bool{seedURL: true}
	)

	collector.OnRequest(func(r *colly.Request) {
		mu.Lock()
		full := fetched >= maxPages
		mu.Unlock()
		if full {
			r.Abort()
		}
	})

	collector.OnResponse(func(r *colly.Response) {
		mu.Lock()
		fetched++
		mu.Unlock()
	})

	collector.OnHTML("html", func(e *colly.HTMLElement) {
		text := extractText(e.DOM)
		if text == "" {
			return
		}
		mu.Lock()
		pages = append(pages, Page{URL: e.Request.URL.String(), Text: text})
		mu.Unlock()
	})

	collector.OnHTML("a[href]", func(e *colly.HTMLElement) {
		href := e.Attr("href")
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
			return
		}
		abs := e.Request.AbsoluteURL(href)
		if abs == "" {
			return
		}
		link, err := url.Parse(abs)
		if err != nil || link.Hostname() != seed.Hostname() {
			return
		}

		mu.Lock()
		seen := queued[abs]
		queued[abs] = true
		mu.Unlock()
		if seen {
			return
		}
		if err := frontier.AddURL(abs); err != nil {
			log.Printf("crawler: enqueue %s: %v", abs, err)
		}
	})

	collector.OnError(func(r *colly.Response, err error) {
		// Page failures are logged and skipped; the crawl carries on.
		log.Printf("crawler: fetch %s: %v", r.Request.URL, err)
	})

	if err := frontier.AddURL(seedURL); err != nil {
		return nil, fmt.Errorf("enqueueing seed URL: %w", err)
	}
	if err := frontier.Run(collector); err != nil {
		return nil, fmt.Errorf("running crawl: %w", err)
	}
	collector.Wait()

	log.Printf("crawler: fetched %d page(s) from %s", len(pages), seedURL)
	return pages, nil
}

// extractText turns a parsed page into clean text: script/style subtrees are
// dropped, every line is trimmed, double-space runs inside a line become
// separate lines, and blank lines are removed.
func extractText(doc *goquery.Selection) string {
	doc.Find("script, style").Remove()
	raw := doc.Text()

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		for _, phrase := range strings.Split(strings.TrimSpace(line), "  ") {
			phrase = strings.TrimSpace(phrase)
			if phrase != "" {
				lines = append(lines, phrase)
			}
		}
	}
	return strings.Join(lines, "\n")
}
