package main

import (
	"context"
	"log"
	"os"

	"go-internship-agent/internal/agent"
	"go-internship-agent/internal/config"
	"go-internship-agent/internal/database"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	cfg := config.Load()
	sc, err := agent.BuildScoring(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to build scorers: %v", err)
	}

	var jobs jobLister
	if cfg.DatabaseURL != "" {
		repo, err := database.ConnectDB(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Printf("⚠️ Postgres disabled: %v", err)
		} else {
			defer repo.Close()
			jobs = repo
		}
	}

	r := newRouter(sc, jobs)
	log.Printf("Server listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
