package main

import (
	"encoding/json"
	"fmt"

	"go-internship-agent/internal/agent"
	"go-internship-agent/internal/config"
	"go-internship-agent/internal/models"

	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain <title>",
	Short: "Show how a single posting is scored",
	Args:  cobra.ExactArgs(1),
	RunE:  runExplain,
}

var (
	explainDescription string
	explainLocation    string
	explainCompany     string
)

func init() {
	explainCmd.Flags().StringVarP(&explainDescription, "description", "d", "", "Posting description")
	explainCmd.Flags().StringVarP(&explainLocation, "location", "l", "", "Posting location")
	explainCmd.Flags().StringVar(&explainCompany, "company", "", "Company name")
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}
	sc, err := agent.BuildScoring(cfg)
	if err != nil {
		return err
	}

	job := models.Job{
		Title:       args[0],
		Description: explainDescription,
		Location:    explainLocation,
		Company:     explainCompany,
	}
	out, err := json.MarshalIndent(sc.Explain(cmd.Context(), job), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal explanation: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
