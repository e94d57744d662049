package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	defaultOllamaModel = "mistral"
	defaultOllamaHost  = "http://localhost:11434"
	ollamaProbeTimeout = 5 * time.Second
)

// OllamaProvider generates answers with a local Ollama instance over its
// HTTP API.
type OllamaProvider struct {
	baseURL string
	model   string

	mu         sync.Mutex
	state      state
	httpClient *http.Client
}

// NewOllamaProvider creates an Ollama provider. baseURL defaults to the
// local Ollama port.
func NewOllamaProvider(baseURL, model string) *OllamaProvider {
	if baseURL == "" {
		baseURL = defaultOllamaHost
	}
	if model == "" {
		model = defaultOllamaModel
	}
	return &OllamaProvider{baseURL: baseURL, model: model}
}

func (p *OllamaProvider) Kind() Kind { return KindOllama }

// Initialize checks that the Ollama server is reachable.
func (p *OllamaProvider) Initialize() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case stateInitialized:
		return true
	case stateFailed:
		return false
	}

	client := &http.Client{}
	ctx, cancel := context.WithTimeout(context.Background(), ollamaProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/tags", nil)
	if err != nil {
		log.Printf("llm: ollama probe request: %v", err)
		p.state = stateFailed
		return false
	}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("llm: ollama not reachable at %s: %v", p.baseURL, err)
		p.state = stateFailed
		return false
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("llm: ollama probe returned status %d", resp.StatusCode)
		p.state = stateFailed
		return false
	}

	p.httpClient = client
	p.state = stateInitialized
	log.Printf("llm: ollama provider initialized with model %s", p.model)
	return true
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  ollamaOptions   `json:"options,omitempty"`
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
	Done    bool          `json:"done"`
}

func (p *OllamaProvider) Generate(ctx context.Context, question string, passages []string) (string, error) {
	p.mu.Lock()
	ready := p.state == stateInitialized
	client := p.httpClient
	p.mu.Unlock()
	if !ready {
		return "", ErrNotInitialized
	}

	body, err := json.Marshal(ollamaChatRequest{
		Model: p.model,
		Messages: []ollamaMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(question, passages)},
		},
		Stream: false,
		Options: ollamaOptions{
			Temperature: 0,
			NumPredict:  answerTokenBudget,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshalling ollama request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating ollama request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading ollama response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var chatResp ollamaChatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("unmarshalling ollama response: %w", err)
	}
	return strings.TrimSpace(chatResp.Message.Content), nil
}
