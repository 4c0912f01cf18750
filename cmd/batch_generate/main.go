// Command batch_generate runs the quiz pipeline for a list of article URLs and
// stores every quiz it manages to generate.
//
//	batch_generate https://en.wikipedia.org/wiki/Alan_Turing ...
//	batch_generate -file urls.txt
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"wiki-quiz/internal/adapter/quizgen"
	"wiki-quiz/internal/adapter/scraper"
	"wiki-quiz/internal/config"
	"wiki-quiz/internal/database"
	"wiki-quiz/internal/logger"
	"wiki-quiz/internal/repository"
	"wiki-quiz/internal/service"

	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "", "read URLs from this file, one per line ('-' for stdin)")
	delay := flag.Duration("delay", 0, "pause between articles")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	l := logger.Get()

	if err := cfg.Validate(); err != nil {
		l.Fatal("Invalid configuration", zap.Error(err))
	}

	urls, err := collectURLs(flag.Args(), *file)
	if err != nil {
		l.Fatal("Failed to read URL list", zap.Error(err))
	}
	if len(urls) == 0 {
		fmt.Fprintln(os.Stderr, "usage: batch_generate [-file urls.txt] [-delay 2s] [url ...]")
		os.Exit(2)
	}

	dsn := cfg.GetDSN()
	if cfg.DB.AutoMigrate {
		if err := database.MigrateUp(dsn, l); err != nil {
			l.Fatal("Failed to run migrations", zap.Error(err))
		}
	}
	db, err := database.Connect(dsn, l)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	llm, err := quizgen.NewModel(ctx, cfg.LLM)
	if err != nil {
		l.Fatal("Failed to create LLM client", zap.Error(err))
	}
	generator, err := quizgen.NewLLMQuizGenerator(llm, quizgen.Options{
		Temperature:   cfg.LLM.Temperature,
		JSONMode:      cfg.LLM.JSONMode,
		StrictAnswers: cfg.LLM.StrictAnswers,
		Timeout:       cfg.LLM.Timeout,
	}, l.Named("quizgen"))
	if err != nil {
		l.Fatal("Failed to create quiz generator", zap.Error(err))
	}

	quizService := service.NewQuizService(
		scraper.NewArticleExtractor(cfg.Scraper.UserAgent, cfg.Scraper.Timeout, l.Named("scraper")),
		generator,
		repository.NewQuizDatabaseAdapter(db),
	)

	failed := 0
	for i, url := range urls {
		if i > 0 && *delay > 0 {
			time.Sleep(*delay)
		}
		payload, err := quizService.GenerateQuiz(ctx, url)
		if err != nil {
			failed++
			l.Error("Article skipped", zap.String("url", url), zap.Error(err))
			continue
		}
		l.Info("Article done", zap.String("url", url), zap.String("title", payload.Title), zap.Int("questions", len(payload.Quiz)))
	}

	l.Info("Batch finished", zap.Int("total", len(urls)), zap.Int("failed", failed))
	if failed > 0 {
		logger.Sync()
		os.Exit(1)
	}
}

// collectURLs merges positional URLs with those listed in file. Blank lines
// and lines starting with '#' are ignored.
func collectURLs(args []string, file string) ([]string, error) {
	urls := append([]string(nil), args...)
	if file == "" {
		return urls, nil
	}

	var r io.Reader = os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	fromFile, err := readURLs(r)
	if err != nil {
		return nil, err
	}
	return append(urls, fromFile...), nil
}

func readURLs(r io.Reader) ([]string, error) {
	var urls []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, scanner.Err()
}
