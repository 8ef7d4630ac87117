// Copyright 2025 Docdex Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/docdex/docdex"
	"github.com/docdex/docdex/ai"
	"github.com/docdex/docdex/core"
	"github.com/docdex/docdex/filter"
	"github.com/docdex/docdex/ingest"
	"github.com/docdex/docdex/reprocess"
	"github.com/docdex/docdex/search"
)

func main() {
	app := &cli.App{
		Name:  "docdex",
		Usage: "Document discovery and retrieval engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory",
				Value:   "./docdex_db",
			},
			&cli.StringFlag{
				Name:  "ai-host",
				Usage: "AI service host URL",
				Value: "http://localhost:11434/v1",
			},
			&cli.StringFlag{
				Name:  "ai-model",
				Usage: "AI model name",
				Value: "qwen2.5:3b",
			},
			&cli.StringFlag{
				Name:  "ai-key",
				Usage: "AI service API key",
				Value: "ollama",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add text files as documents and extract their metadata",
				ArgsUsage: "FILE [FILE...]",
				Action:    addCommand,
				Flags: []cli.Flag{
					&cli.DurationFlag{
						Name:  "wait",
						Usage: "How long to wait for metadata extraction to finish",
						Value: 2 * time.Minute,
					},
				},
			},
			{
				Name:   "list",
				Usage:  "List all documents, newest first",
				Action: listCommand,
			},
			{
				Name:      "options",
				Usage:     "Show the filter options of a category",
				ArgsUsage: "CATEGORY [TYPED]",
				Action:    optionsCommand,
			},
			{
				Name:      "filter",
				Usage:     "Resolve the collection through categorical filters",
				ArgsUsage: "CATEGORY=VALUE [CATEGORY=VALUE...]",
				Action:    filterCommand,
			},
			{
				Name:      "search",
				Usage:     "Manual fuzzy search across the collection",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
			},
			{
				Name:      "ask",
				Usage:     "AI search: answer a natural-language question with documents",
				ArgsUsage: "QUESTION",
				Action:    askCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "strategy",
						Usage: "Search strategy (direct, criteria)",
						Value: "direct",
					},
				},
			},
			{
				Name:   "reprocess",
				Usage:  "Re-extract metadata for documents stuck in processing",
				Action: reprocessCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "all",
						Usage: "Reprocess every document, not just pending ones",
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N documents",
						Value: 10,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed extractions",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openDatabase(c *cli.Context) (*docdex.Database, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("ai-host")),
		ai.WithModel(c.String("ai-model")),
		ai.WithAPIKey(c.String("ai-key")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	db, err := docdex.NewDatabase(c.String("db"), docdex.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// loadedEngine builds a filter engine over the current collection.
func loadedEngine(ctx context.Context, db *docdex.Database) (*filter.Engine, error) {
	engine, err := db.NewFilterEngine()
	if err != nil {
		return nil, err
	}
	docs, err := db.DocumentRepository().ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}
	engine.SetDocuments(docs)
	return engine, nil
}

func addCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one file is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	processed := make(chan core.ID, c.NArg())
	pipeline, err := db.NewIngestPipeline(ingest.WithProcessedHook(func(id core.ID) {
		processed <- id
	}))
	if err != nil {
		return err
	}
	defer pipeline.Release()

	ctx := context.Background()
	submitted := 0
	for _, path := range c.Args().Slice() {
		text, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		doc, err := pipeline.Submit(ctx, filepath.Base(path), string(text), time.Now())
		if err != nil {
			return fmt.Errorf("failed to submit %s: %w", path, err)
		}
		submitted++
		fmt.Printf("submitted %s (%d)\n", doc.FileName, doc.Id)
	}

	// Wait for the extractions so the command exits with searchable documents.
	deadline := time.After(c.Duration("wait"))
	for done := 0; done < submitted; {
		select {
		case id := <-processed:
			done++
			fmt.Printf("processed %d (%d/%d)\n", id, done, submitted)
		case <-deadline:
			fmt.Fprintf(os.Stderr, "timed out; remaining documents can be recovered with 'docdex reprocess'\n")
			return nil
		}
	}
	return nil
}

func listCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	docs, err := db.DocumentRepository().ListDocuments(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("%d documents\n", len(docs))
	printDocuments(docs)
	return nil
}

func optionsCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("category is required (owner, type, company, country)")
	}
	category, err := parseCategory(c.Args().Get(0))
	if err != nil {
		return err
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	engine, err := loadedEngine(context.Background(), db)
	if err != nil {
		return err
	}

	var options []string
	if c.NArg() > 1 {
		options = engine.FilterOptions(category, c.Args().Get(1))
	} else {
		options = engine.Options(category)
	}
	for _, option := range options {
		fmt.Println(option)
	}
	return nil
}

func filterCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one CATEGORY=VALUE pair is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	engine, err := loadedEngine(context.Background(), db)
	if err != nil {
		return err
	}

	for _, arg := range c.Args().Slice() {
		name, value, found := strings.Cut(arg, "=")
		if !found || value == "" {
			return fmt.Errorf("invalid filter %q: expected CATEGORY=VALUE", arg)
		}
		category, err := parseCategory(name)
		if err != nil {
			return err
		}
		if err := engine.ToggleFilter(category, value); err != nil {
			return err
		}
	}

	docs := engine.Resolve()
	fmt.Printf("%d documents\n", len(docs))
	printDocuments(docs)
	return nil
}

func searchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("query is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	engine, err := loadedEngine(context.Background(), db)
	if err != nil {
		return err
	}

	engine.SubmitSearch(strings.Join(c.Args().Slice(), " "))
	docs := engine.Resolve()
	fmt.Printf("%d documents\n", len(docs))
	printDocuments(docs)
	return nil
}

func askCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("question is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	engine, err := loadedEngine(ctx, db)
	if err != nil {
		return err
	}

	var strategy search.Strategy
	switch c.String("strategy") {
	case "direct":
		strategy, err = db.NewDirectStrategy()
	case "criteria":
		strategy, err = db.NewCriteriaStrategy()
	default:
		return fmt.Errorf("unknown strategy %q: must be direct or criteria", c.String("strategy"))
	}
	if err != nil {
		return err
	}

	runner, err := db.NewSearchRunner(engine, strategy)
	if err != nil {
		return err
	}

	docs, err := runner.Run(ctx, strings.Join(c.Args().Slice(), " "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "search failed: %v\n", err)
	}
	fmt.Printf("%d documents\n", len(docs))
	printDocuments(docs)
	return nil
}

func reprocessCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	config := &reprocess.Config{
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
		OnlyPending:    !c.Bool("all"),
	}
	if config.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reprocessor, err := db.NewReprocessor(config, os.Stderr)
	if err != nil {
		return err
	}

	if err := reprocessor.Run(context.Background()); err != nil {
		return fmt.Errorf("reprocessing failed: %w", err)
	}
	return nil
}

func printDocuments(docs []*core.Document) {
	for _, doc := range docs {
		status := ""
		if doc.IsProcessing {
			status = " [processing]"
		}
		fmt.Printf("%d: %s | %s | %s | %s%s\n",
			doc.Id, doc.FileName, doc.Owner, doc.Type,
			doc.UploadedAt.Format("2006-01-02"), status)
	}
}

func parseCategory(name string) (core.FilterCategory, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, category := range core.Categories {
		if category.String() == name {
			return category, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q: must be one of owner, type, company, country", name)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
