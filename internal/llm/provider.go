// Package llm provides the generation backends that turn a question plus
// retrieved context into a grounded answer. All backends share one prompt
// and one contract; the factory falls back to the deterministic mock
// backend whenever the configured one cannot initialize, so the system can
// always produce some answer.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a generation backend.
type Kind string

const (
	KindOpenAI   Kind = "openai"
	KindDeepSeek Kind = "deepseek"
	KindOllama   Kind = "ollama"
	KindMock     Kind = "mock"
)

// ParseKind maps a configuration string to a Kind. Unrecognized values
// resolve to the mock backend.
func ParseKind(s string) Kind {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindOpenAI:
		return KindOpenAI
	case KindDeepSeek:
		return KindDeepSeek
	case KindOllama:
		return KindOllama
	default:
		return KindMock
	}
}

// Provider is a generation backend. Implementations move through a simple
// lifecycle: uninitialized, then initialized or failed. Initialize is
// idempotent — an initialized provider returns true immediately, a failed
// one stays failed until process restart.
type Provider interface {
	// Initialize prepares the backend and reports whether it is usable.
	Initialize() bool

	// Generate answers the question using only the supplied context
	// passages. It must only be called after a successful Initialize;
	// calling it earlier yields ErrNotInitialized.
	Generate(ctx context.Context, question string, passages []string) (string, error)

	// Kind reports which backend this is.
	Kind() Kind
}

// ErrNotInitialized is returned by Generate when the provider has not been
// successfully initialized.
var ErrNotInitialized = errors.New("llm: provider not initialized")

// lifecycle states shared by all real backends.
type state int

const (
	stateUninitialized state = iota
	stateInitialized
	stateFailed
)

const (
	// answerTokenBudget bounds the generated answer length.
	answerTokenBudget = 500

	// systemPrompt pins every backend to the grounding contract.
	systemPrompt = "You are StarBot, a helpful assistant for Star College Durban. " +
		"Only answer based on the provided context."

	// noContextPlaceholder stands in when retrieval produced nothing.
	noContextPlaceholder = "No additional context provided."
)

// buildPrompt assembles the user prompt shared by every backend: it binds
// the model to the supplied context and names the exact refusal phrase for
// insufficient context.
func buildPrompt(question string, passages []string) string {
	contextText := noContextPlaceholder
	if len(passages) > 0 {
		contextText = strings.Join(passages, "\n")
	}

	return fmt.Sprintf(`Use ONLY the following context to answer the question. If the answer is not in the context, say "I don't have enough information to answer that question."

Context:
%s

Question: %s

Answer:`, contextText, question)
}

// InitFailureApology is shown when a provider cannot be initialized at
// answer time.
const InitFailureApology = "I'm sorry, I couldn't initialize the language model. Please try again later."

// Apology converts a generation error into the user-facing answer text.
// Callers use it at the boundary so failure causes stay inspectable in
// between.
func Apology(err error) string {
	if errors.Is(err, ErrNotInitialized) {
		return InitFailureApology
	}
	return fmt.Sprintf("I'm sorry, I encountered an error while processing your question: %v", err)
}
