package config

// ProviderType identifies a generation backend.
type ProviderType string

const (
	ProviderOpenAI   ProviderType = "openai"
	ProviderDeepSeek ProviderType = "deepseek"
	ProviderOllama   ProviderType = "ollama"
	ProviderMock     ProviderType = "mock"
)

// RetrieverType identifies a retrieval strategy.
type RetrieverType string

const (
	RetrieverKeyword RetrieverType = "keyword"
	RetrieverVector  RetrieverType = "vector"
)

// Config is the top-level starbot configuration, corresponding to .starbot.yml.
type Config struct {
	Provider          ProviderType  `yaml:"provider" koanf:"provider"`
	Model             string        `yaml:"model" koanf:"model"`
	Retriever         RetrieverType `yaml:"retriever" koanf:"retriever"`
	EmbeddingProvider ProviderType  `yaml:"embedding_provider" koanf:"embedding_provider"`
	EmbeddingModel    string        `yaml:"embedding_model" koanf:"embedding_model"`
	SiteURL           string        `yaml:"site_url" koanf:"site_url"`
	MaxPages          int           `yaml:"max_pages" koanf:"max_pages"`
	CrawlTimeout      int           `yaml:"crawl_timeout" koanf:"crawl_timeout"` // seconds per page request
	ChunkSize         int           `yaml:"chunk_size" koanf:"chunk_size"`
	ChunkOverlap      int           `yaml:"chunk_overlap" koanf:"chunk_overlap"`
	Collection        string        `yaml:"collection" koanf:"collection"`
	TopK              int           `yaml:"top_k" koanf:"top_k"`
	Port              int           `yaml:"port" koanf:"port"`
	DataDir           string        `yaml:"data_dir" koanf:"data_dir"`
	StaticDir         string        `yaml:"static_dir" koanf:"static_dir"`
	CatalogPath       string        `yaml:"catalog_path" koanf:"catalog_path"`
	ImageBaseURL      string        `yaml:"image_base_url" koanf:"image_base_url"`
}
