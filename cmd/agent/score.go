package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go-internship-agent/internal/agent"
	"go-internship-agent/internal/config"
	"go-internship-agent/internal/models"
	"go-internship-agent/internal/scoring"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score <postings.json>",
	Short: "Score and rank a JSON array of postings",
	Long:  "Reads a JSON array of raw postings (title, company, link, location, stipend, description, source, easy_apply), scores and ranks them and prints the result as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

var scoreOutput string

func init() {
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Write ranked JSON here instead of stdout")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}
	sc, err := agent.BuildScoring(cfg)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read postings file %s: %w", args[0], err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if scoreOutput != "" {
		f, err := os.Create(scoreOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	return scoreJSON(cmd.Context(), sc, data, w)
}

// scoreJSON decodes raw postings, scores and ranks them, and writes JSON.
func scoreJSON(ctx context.Context, sc *scoring.Context, data []byte, w io.Writer) error {
	var raws []models.RawJob
	if err := json.Unmarshal(data, &raws); err != nil {
		return fmt.Errorf("failed to unmarshal postings JSON: %w", err)
	}

	jobs := make([]models.Job, len(raws))
	for i, r := range raws {
		jobs[i] = models.FromRaw(r)
	}

	ranked := sc.ScoreBatch(ctx, jobs)
	scoring.Rank(ranked)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ranked)
}
