package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/horizonedu/starbot/internal/document"
	"github.com/horizonedu/starbot/internal/ingest"
	"github.com/horizonedu/starbot/internal/progress"
	"github.com/horizonedu/starbot/internal/vectordb"
)

var (
	ingestTextFiles []string
	ingestDirs      []string
	ingestURLs      []string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Crawl and index content into the vector store",
	Long: `Crawls the configured website (plus any extra files or directories),
splits the content into overlapping chunks, embeds them, and persists
the vector store for the vector retriever.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		embedder, err := createEmbedderFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("creating embedder: %w", err)
		}
		store, err := vectordb.New(embedder, cfg.Collection)
		if err != nil {
			return fmt.Errorf("creating vector store: %w", err)
		}

		ingestor := ingest.New(createCrawlerFromConfig(cfg), cfg.MaxPages, cfg.ChunkSize, cfg.ChunkOverlap)

		urls := ingestURLs
		if len(urls) == 0 {
			urls = []string{cfg.SiteURL}
		}

		fmt.Fprintf(os.Stderr, "Ingesting %d site(s), %d file(s), %d directorie(s)\n",
			len(urls), len(ingestTextFiles), len(ingestDirs))

		docs, err := ingestor.All(cmd.Context(), ingest.Sources{
			URLs:        urls,
			TextFiles:   ingestTextFiles,
			Directories: ingestDirs,
		})
		if err != nil {
			return fmt.Errorf("ingesting sources: %w", err)
		}
		if len(docs) == 0 {
			return fmt.Errorf("no content found to index")
		}

		// Embed in small batches so the bar reflects real progress.
		reporter := progress.NewReporter()
		reporter.Start(len(docs))
		const batch = 10
		for i := 0; i < len(docs); i += batch {
			end := i + batch
			if end > len(docs) {
				end = len(docs)
			}
			if err := store.Add(cmd.Context(), docs[i:end]); err != nil {
				return fmt.Errorf("adding chunks: %w", err)
			}
			reporter.Update(end, describeChunk(docs[end-1]))
		}
		reporter.Finish()

		if err := store.Persist(cfg.DataDir); err != nil {
			return fmt.Errorf("persisting vector store: %w", err)
		}

		fmt.Printf("Indexed %d chunks into %s (collection %s)\n", store.Count(), cfg.DataDir, cfg.Collection)
		return nil
	},
}

func describeChunk(d document.Document) string {
	return fmt.Sprintf("%s #%d", d.Metadata.Source, d.Metadata.Chunk)
}

func init() {
	ingestCmd.Flags().StringSliceVar(&ingestTextFiles, "file", nil, "extra text files to index")
	ingestCmd.Flags().StringSliceVar(&ingestDirs, "dir", nil, "extra directories of text files to index")
	ingestCmd.Flags().StringSliceVar(&ingestURLs, "url", nil, "sites to crawl (defaults to the configured site_url)")
	rootCmd.AddCommand(ingestCmd)
}
