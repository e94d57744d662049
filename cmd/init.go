package cmd

import (
	"github.com/spf13/cobra"

	"github.com/horizonedu/starbot/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize starbot configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure starbot and generates a .starbot.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
