package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the bot interactively in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		engine, _, err := createEngineFromConfig(cfg)
		if err != nil {
			return err
		}

		fmt.Printf("StarBot ready (provider=%s). Type your question, or 'exit' to quit.\n\n", engine.Mode())

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("You: ")
			if !scanner.Scan() {
				break
			}
			question := strings.TrimSpace(scanner.Text())
			if question == "" {
				continue
			}
			if question == "exit" || question == "quit" {
				break
			}

			answer, err := engine.Ask(cmd.Context(), question)
			if err != nil && answer == nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}

			fmt.Printf("\nStarBot: %s\n", answer.Answer)
			for _, img := range answer.Images {
				fmt.Printf("[image] %s (%s)\n", img.Caption, img.URL)
			}
			fmt.Println()
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
