// Package bot wires retrieval, generation and image matching into one
// question answering pipeline.
package bot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/horizonedu/starbot/internal/llm"
	"github.com/horizonedu/starbot/internal/media"
	"github.com/horizonedu/starbot/internal/retriever"
)

// ErrEmptyQuestion is returned before any retrieval or generation work
// when the question is blank.
var ErrEmptyQuestion = errors.New("bot: no question provided")

// ModeError marks an answer produced from a failure instead of a model.
const ModeError = "error"

// Answer is the complete reply to one question.
type Answer struct {
	Answer     string        `json:"answer"`
	AnswerHTML string        `json:"answer_html,omitempty"`
	Mode       string        `json:"mode"`
	HasImages  bool          `json:"has_images"`
	Images     []media.Image `json:"images,omitempty"`
}

// Engine answers questions with retrieved site context.
type Engine struct {
	retriever retriever.Retriever
	provider  llm.Provider
	matcher   *media.Matcher
	topK      int
	markdown  goldmark.Markdown
}

// New assembles an engine. A topK of zero or less falls back to three
// passages per question.
func New(r retriever.Retriever, p llm.Provider, m *media.Matcher, topK int) *Engine {
	if topK <= 0 {
		topK = 3
	}
	return &Engine{
		retriever: r,
		provider:  p,
		matcher:   m,
		topK:      topK,
		markdown:  goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Initialize warms the retriever so the first question does not pay
// the crawl or index cost.
func (e *Engine) Initialize(ctx context.Context) error {
	if err := e.retriever.Initialize(ctx); err != nil {
		return fmt.Errorf("bot: initialize retriever: %w", err)
	}
	return nil
}

// Mode names the generation backend behind this engine.
func (e *Engine) Mode() string { return string(e.provider.Kind()) }

// Ask answers one question. Generation failures return both the error
// and an apology answer so callers can report a failure status while
// still showing the user something readable.
func (e *Engine) Ask(ctx context.Context, question string) (*Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	passages := e.retriever.Search(ctx, question, e.topK)

	text, err := e.provider.Generate(ctx, question, passages)
	if err != nil {
		log.Printf("bot: generate answer: %v", err)
		return &Answer{Answer: llm.Apology(err), Mode: ModeError}, err
	}

	enhanced := e.matcher.Enhance(question, text)
	return &Answer{
		Answer:     enhanced.Text,
		AnswerHTML: e.render(enhanced.Text),
		Mode:       string(e.provider.Kind()),
		HasImages:  enhanced.HasImages,
		Images:     enhanced.Images,
	}, nil
}

// render converts markdown to HTML, returning empty on failure so the
// plain text answer still goes out.
func (e *Engine) render(text string) string {
	var buf bytes.Buffer
	if err := e.markdown.Convert([]byte(text), &buf); err != nil {
		log.Printf("bot: render answer markdown: %v", err)
		return ""
	}
	return buf.String()
}
