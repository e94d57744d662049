package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/horizonedu/starbot/internal/bot"
	"github.com/horizonedu/starbot/internal/config"
	"github.com/horizonedu/starbot/internal/crawler"
	"github.com/horizonedu/starbot/internal/embeddings"
	"github.com/horizonedu/starbot/internal/llm"
	"github.com/horizonedu/starbot/internal/media"
	"github.com/horizonedu/starbot/internal/retriever"
	"github.com/horizonedu/starbot/internal/vectordb"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `starbot init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// createEmbedderFromConfig creates an embeddings.Embedder for the vector
// retriever based on the configured embedding provider.
func createEmbedderFromConfig(cfg *config.Config) (embeddings.Embedder, error) {
	switch cfg.EmbeddingProvider {
	case config.ProviderOpenAI:
		apiKey := os.Getenv(config.APIKeyEnvVar(config.ProviderOpenAI))
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required for OpenAI embeddings")
		}
		return embeddings.NewOpenAIEmbedder(apiKey, cfg.EmbeddingModel), nil
	default:
		return embeddings.NewOllamaEmbedder(cfg.EmbeddingModel, 768, os.Getenv("OLLAMA_HOST")), nil
	}
}

// createCrawlerFromConfig builds the site crawler with the configured
// per-request timeout.
func createCrawlerFromConfig(cfg *config.Config) *crawler.Crawler {
	return crawler.New(crawler.Config{Timeout: time.Duration(cfg.CrawlTimeout) * time.Second})
}

// createRetrieverFromConfig builds the retrieval strategy named in the
// config. The vector retriever loads its persisted store from the data
// directory; run `starbot ingest` to build it.
func createRetrieverFromConfig(cfg *config.Config) (retriever.Retriever, error) {
	switch cfg.Retriever {
	case config.RetrieverVector:
		embedder, err := createEmbedderFromConfig(cfg)
		if err != nil {
			return nil, err
		}
		store, err := vectordb.New(embedder, cfg.Collection)
		if err != nil {
			return nil, fmt.Errorf("creating vector store: %w", err)
		}
		if err := store.Load(cfg.DataDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load vector store from %s: %v\n", cfg.DataDir, err)
			fmt.Fprintf(os.Stderr, "Search results will be empty. Run `starbot ingest` first.\n")
		}
		return retriever.NewVectorRetriever(store), nil
	default:
		return retriever.NewKeywordRetriever(createCrawlerFromConfig(cfg), cfg.SiteURL, cfg.MaxPages), nil
	}
}

// createEngineFromConfig wires the full answer pipeline. The retriever
// is returned alongside the engine so commands can also search directly.
func createEngineFromConfig(cfg *config.Config) (*bot.Engine, retriever.Retriever, error) {
	ret, err := createRetrieverFromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}

	provider := llm.Resolve(llm.ParseKind(string(cfg.Provider)), cfg.Model)
	matcher := media.NewMatcher(media.LoadCatalog(cfg.CatalogPath), cfg.ImageBaseURL)

	return bot.New(ret, provider, matcher, cfg.TopK), ret, nil
}
