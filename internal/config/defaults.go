package config

// DefaultSiteURL is the website crawled when no site_url is configured.
const DefaultSiteURL = "https://starcollegedurban.co.za/"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:          ProviderMock,
		Retriever:         RetrieverKeyword,
		EmbeddingProvider: ProviderOllama,
		EmbeddingModel:    "nomic-embed-text",
		SiteURL:           DefaultSiteURL,
		MaxPages:          10,
		CrawlTimeout:      30,
		ChunkSize:         750,
		ChunkOverlap:      100,
		Collection:        "star-college",
		TopK:              3,
		Port:              8000,
		DataDir:           ".starbot",
		StaticDir:         "static",
		CatalogPath:       "static/images/database.json",
		ImageBaseURL:      "/static/images/",
	}
}
