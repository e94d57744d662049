package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .starbot.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to starbot! Let's configure your chatbot.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Provider selection.
	providerPrompt := promptui.Select{
		Label: "Select answer provider",
		Items: []string{"mock", "openai", "deepseek", "ollama"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	cfg.Provider = ProviderType(providerStr)

	// 2. Retriever selection.
	retrieverPrompt := promptui.Select{
		Label: "Select retrieval strategy",
		Items: []string{
			"keyword — crawl pages and rank by term frequency",
			"vector  — embed chunks and search by similarity",
		},
	}
	retrieverIdx, _, err := retrieverPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("retriever selection: %w", err)
	}
	retrievers := []RetrieverType{RetrieverKeyword, RetrieverVector}
	cfg.Retriever = retrievers[retrieverIdx]

	// 3. Site URL.
	sitePrompt := promptui.Prompt{
		Label:   "Website to answer questions about",
		Default: DefaultSiteURL,
	}
	siteURL, err := sitePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site url: %w", err)
	}
	cfg.SiteURL = siteURL

	// 4. Crawl budget.
	pagesPrompt := promptui.Prompt{
		Label:   "Maximum pages to crawl",
		Default: strconv.Itoa(cfg.MaxPages),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 {
				return fmt.Errorf("enter a positive number")
			}
			return nil
		},
	}
	pagesStr, err := pagesPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("max pages: %w", err)
	}
	cfg.MaxPages, _ = strconv.Atoi(pagesStr)

	// 5. Server port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP server port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	// Check for API key.
	if envVar := APIKeyEnvVar(cfg.Provider); envVar != "" {
		if os.Getenv(envVar) == "" {
			fmt.Printf("\nNote: Set %s in your environment before running starbot serve.\n", envVar)
		}
	}

	// Save to .starbot.yml.
	if err := cfg.Save(DefaultPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultPath)
	return cfg, nil
}
