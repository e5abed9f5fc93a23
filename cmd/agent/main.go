// Command agent collects internship postings, scores and ranks them, and
// sends the best ones to Telegram.
package main

import (
	"fmt"
	"os"

	"go-internship-agent/internal/config"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "agent",
	Short:        "Data analyst internship alert agent",
	Long:         "Collects internship postings from job boards, scores them against a candidate profile, ranks them by company tier and sends a Telegram digest.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to config YAML")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
