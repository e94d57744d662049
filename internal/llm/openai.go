package llm

import (
	"context"
	"log"
	"strings"
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = "gpt-3.5-turbo"

// OpenAIProvider generates answers through the OpenAI Chat Completions API.
type OpenAIProvider struct {
	apiKey string
	model  string

	mu     sync.Mutex
	state  state
	client *openai.Client
}

// NewOpenAIProvider creates an OpenAI provider. The provider is not usable
// until Initialize succeeds.
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIProvider{apiKey: apiKey, model: model}
}

func (p *OpenAIProvider) Kind() Kind { return KindOpenAI }

func (p *OpenAIProvider) Initialize() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case stateInitialized:
		return true
	case stateFailed:
		return false
	}

	if p.apiKey == "" {
		log.Printf("llm: openai API key not provided")
		p.state = stateFailed
		return false
	}

	p.client = openai.NewClient(p.apiKey)
	p.state = stateInitialized
	log.Printf("llm: openai provider initialized with model %s", p.model)
	return true
}

func (p *OpenAIProvider) Generate(ctx context.Context, question string, passages []string) (string, error) {
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
