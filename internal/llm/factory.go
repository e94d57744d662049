package llm

import (
	"log"
	"os"
)

// New constructs the provider for the given kind without initializing it.
// API keys are read from the conventional environment variables. Unknown
// kinds yield the mock provider.
func New(kind Kind, model string) Provider {
	switch kind {
	case KindOpenAI:
		return NewOpenAIProvider(os.Getenv("OPENAI_API_KEY"), model)
	case KindDeepSeek:
		return NewDeepSeekProvider(os.Getenv("DEEPSEEK_API_KEY"), model)
	case KindOllama:
		return NewOllamaProvider(os.Getenv("OLLAMA_HOST"), model)
	default:
		return NewMockProvider()
	}
}

// Resolve constructs and initializes the provider for the given kind,
// substituting the mock provider when initialization fails. The returned
// provider is always initialized. Failover happens here, at selection time;
// there is no per-call retry.
func Resolve(kind Kind, model string) Provider {
	return orMock(New(kind, model))
}

// orMock initializes p and falls back to the mock provider on failure.
func orMock(p Provider) Provider {
	if p.Initialize() {
		return p
	}
	log.Printf("llm: %s provider failed to initialize, falling back to mock", p.Kind())
	mock := NewMockProvider()
	mock.Initialize()
	return mock
}
