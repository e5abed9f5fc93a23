package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"go-internship-agent/internal/agent"
	"go-internship-agent/internal/config"
	"go-internship-agent/internal/database"
	"go-internship-agent/internal/export"
	"go-internship-agent/internal/filter"
	"go-internship-agent/internal/telegram"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full collect, score and notify pipeline once",
	RunE:  runPipeline,
}

var (
	runNoNotify bool
	runTimeout  time.Duration
)

func init() {
	runCmd.Flags().BoolVar(&runNoNotify, "no-notify", false, "Skip Telegram even if notify.enabled is set")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 10*time.Minute, "Overall run timeout")
	rootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}

	//setup context with timeout
	ctx, cancel := context.WithTimeout(cmd.Context(), runTimeout)
	defer cancel()

	sc, err := agent.BuildScoring(cfg)
	if err != nil {
		return err
	}

	fetcher, release, err := agent.BuildFetcher(cfg)
	if err != nil {
		return err
	}
	defer release()

	history, closer, err := agent.OpenHistory(cfg)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer closer.Close()

	runner := &agent.Runner{
		Cfg:      cfg,
		Scoring:  sc,
		Rules:    filter.NewRules(cfg),
		Scrapers: agent.BuildScrapers(cfg, fetcher),
		History:  history,
		Sinks: []agent.Sink{
			export.NewCSVWriter(cfg.CSVPath, cfg.Scoring.KeywordPassThreshold),
			export.NewJSONLog(cfg.LogDir),
		},
	}

	if cfg.Notify.Enabled && !runNoNotify {
		bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			return fmt.Errorf("failed to init Telegram Bot: %w", err)
		}
		log.Println("🤖 Telegram Bot initialized.")
		runner.Notifier = bot
	}

	if cfg.DatabaseURL != "" {
		repo, err := database.ConnectDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Printf("⚠️ Postgres disabled: %v", err)
		} else {
			defer repo.Close()
			if err := repo.EnsureSchema(ctx); err != nil {
				log.Printf("⚠️ Postgres disabled: %v", err)
			} else {
				runner.Sinks = append(runner.Sinks, repo)
			}
		}
	}

	sum, err := runner.Run(ctx)
	if err != nil && !agent.IsPersistence(err) {
		return err
	}
	if err != nil {
		log.Printf("⚠️ Run completed with write failures: %v", err)
	}

	out, _ := json.MarshalIndent(sum, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
