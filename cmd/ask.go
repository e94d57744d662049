package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question from the command line",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		engine, _, err := createEngineFromConfig(cfg)
		if err != nil {
			return err
		}

		answer, err := engine.Ask(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			if answer != nil && answer.Answer != "" {
				fmt.Println(answer.Answer)
			}
			return err
		}

		fmt.Println(answer.Answer)
		for _, img := range answer.Images {
			fmt.Printf("\n[image] %s (%s)\n", img.Caption, img.URL)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
