// Copyright (c) 2026 Netskope, Inc. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/netSkope/notion-bootstrap/internal/config"
	"github.com/netSkope/notion-bootstrap/internal/credentials"
	"github.com/netSkope/notion-bootstrap/internal/importer"
	blog "github.com/netSkope/notion-bootstrap/internal/log"
	"github.com/netSkope/notion-bootstrap/internal/notion"
	"github.com/netSkope/notion-bootstrap/internal/plan"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Best-effort .env load so NOTION_TOKEN can live in a local dotenv file.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := blog.NewLogger("/tmp", "notion-bootstrap", cfg.Debug, cfg.LogStdout)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	// The plan is always computed; dry-run stops here without touching the network.
	p, err := plan.Build(cfg.SampleDataDir, cfg.QuestionsCSV)
	if err != nil {
		return err
	}

	if !cfg.Apply {
		fmt.Println(plan.Format(p))
		return nil
	}

	token, err := credentials.ResolveToken(cfg.Token, !cfg.NoPrompt)
	if err != nil {
		return err
	}

	client := notion.NewClient(token, logger)
	if cfg.APIBaseURL != "" {
		client.SetBaseURL(cfg.APIBaseURL)
	}

	logger.Info("Starting Notion import",
		zap.String("sample_data_dir", cfg.SampleDataDir),
		zap.String("questions_csv", cfg.QuestionsCSV),
		zap.Int("planned_rows", p.Questions+p.Vendors+p.Assessments+p.AssessmentItems))

	result, err := importer.New(client, logger).Run(context.Background(), cfg.SampleDataDir, cfg.QuestionsCSV)
	if err != nil {
		return err
	}

	logger.Info("Import completed",
		zap.Int("questions", result.Questions),
		zap.Int("vendors", result.Vendors),
		zap.Int("assessments", result.Assessments),
		zap.Int("assessment_items", result.AssessmentItems))

	fmt.Println("Import complete. Evidence Inbox remains empty by design.")
	if !cfg.Quiet {
		fmt.Printf("\n=== Import Summary ===\n")
		fmt.Printf("Questions: %d\n", result.Questions)
		fmt.Printf("Vendors: %d\n", result.Vendors)
		fmt.Printf("Assessments: %d\n", result.Assessments)
		fmt.Printf("Assessment items: %d\n", result.AssessmentItems)
		fmt.Printf("======================\n")
	}

	return nil
}
