package main

import (
	"fmt"

	"go-internship-agent/internal/config"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration without running anything",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "🔧 Checking config", configPath)

	cfg, err := config.Parse(configPath)
	if err != nil {
		return err
	}

	res := config.Check(cfg)
	for _, warn := range res.Warnings {
		fmt.Fprintln(w, "⚠️", warn)
	}
	for _, e := range res.Errors {
		fmt.Fprintln(w, "❌", e)
	}
	if !res.OK() {
		return fmt.Errorf("%d config errors", len(res.Errors))
	}

	fmt.Fprintln(w, "✅ Config is valid")
	fmt.Fprintf(w, "   Sources: internshala=%t linkedin=%t naukri=%t indeed=%t\n",
		cfg.Sources.Internshala.On(), cfg.Sources.LinkedIn.On(), cfg.Sources.Naukri.On(), cfg.Sources.Indeed.On())
	fmt.Fprintf(w, "   Semantic: %s  History: %s (%s)\n", cfg.Scoring.SemanticStrategy, cfg.History.Backend, cfg.History.Path)
	return nil
}
