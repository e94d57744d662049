package llm

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultDeepSeekModel   = "deepseek-chat"
	deepSeekBaseURL        = "https://api.deepseek.com/v1"
	deepSeekProbeTimeout   = 10 * time.Second
)

// DeepSeekProvider generates answers through the DeepSeek API, which is
// OpenAI-compatible, so the same client is reused with a different base URL.
type DeepSeekProvider struct {
	apiKey string
	model  string

	mu     sync.Mutex
	state  state
	client *openai.Client
}

// NewDeepSeekProvider creates a DeepSeek provider. The provider is not
// usable until Initialize succeeds.
func NewDeepSeekProvider(apiKey, model string) *DeepSeekProvider {
	if model == "" {
		model = defaultDeepSeekModel
	}
	return &DeepSeekProvider{apiKey: apiKey, model: model}
}

func (p *DeepSeekProvider) Kind() Kind { return KindDeepSeek }

// Initialize verifies the API key by listing models, so a bad key is caught
// here rather than on the first question.
func (p *DeepSeekProvider) Initialize() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case stateInitialized:
		return true
	case stateFailed:
		return false
	}

	if p.apiKey == "" {
		log.Printf("llm: deepseek API key not provided")
		p.state = stateFailed
		return false
	}

	cfg := openai.DefaultConfig(p.apiKey)
	cfg.BaseURL = deepSeekBaseURL
	client := openai.NewClientWithConfig(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), deepSeekProbeTimeout)
	defer cancel()
	if _, err := client.ListModels(ctx); err != nil {
		log.Printf("llm: deepseek API probe failed: %v", err)
		p.state = stateFailed
		return false
	}

	p.client = client
	p.state = stateInitialized
	log.Printf("llm: deepseek provider initialized with model %s", p.model)
	return true
}

func (p *DeepSeekProvider) Generate(ctx context.Context, question string, passages []string) (string, error) {
	p.mu.Lock()
	ready := p.state == stateInitialized
	client := p.client
	p.mu.Unlock()
	if !ready {
		return "", ErrNotInitialized
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(question, passages)},
		},
		Temperature: 0,
		MaxTokens:   answerTokenBudget,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
