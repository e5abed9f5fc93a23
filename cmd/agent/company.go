package main

import (
	"fmt"

	"go-internship-agent/internal/agent"
	"go-internship-agent/internal/config"

	"github.com/spf13/cobra"
)

var companyCmd = &cobra.Command{
	Use:   "company <name>...",
	Short: "Classify company names into tiers",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCompany,
}

func init() {
	rootCmd.AddCommand(companyCmd)
}

func runCompany(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}
	sc, err := agent.BuildScoring(cfg)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Tier table %s\n", sc.Tiers.Version)
	for _, name := range args {
		info := sc.Tiers.Info(name)
		alert := "no"
		if info.TelegramAlert {
			alert = "yes"
		}
		fmt.Fprintf(w, "%-30s -> %-28s score %.2f alert %s (normalized %q)\n",
			info.OriginalName, info.TierLabel, info.CompanyScore, alert, info.NormalizedName)
	}
	return nil
}
