package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "house-price",
	Short: "House price prediction service",
	Long: `house-price serves a form and a JSON API that estimate the price of a house
from its attributes using a pre-trained prediction pipeline.

Running without a subcommand starts the server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML config file (overrides CONFIG_FILE)")
	rootCmd.AddCommand(serveCmd, predictCmd, tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
