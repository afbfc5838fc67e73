package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"kaibun/analyze"
	"kaibun/config"
	"kaibun/ingest"
	"kaibun/logger"
	"kaibun/palindrome"
	"kaibun/pipeline"
	"kaibun/tokenize"
)

func main() {
	if err := run(); err != nil {
		slog.Error("kaibun failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cli := parseFlags()

	cfg, err := config.Load(cli.ConfigPath)
	if err != nil {
		return err
	}
	if cli.MinLength > 0 {
		cfg.MinLength = cli.MinLength
	}

	log, err := logger.Setup(cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}

	docs, err := readDocuments(cli.Files)
	if err != nil {
		return err
	}

	tk, err := tokenize.New(cfg.Dictionary, cfg.Mode)
	if err != nil {
		return err
	}
	an := analyze.New(palindrome.NewExtractor(palindrome.WithLogger(log)), cfg.MinLength)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := pipeline.New(tk, an, cfg.Workers, log).Run(ctx, docs)
	if err != nil {
		return err
	}

	for _, a := range results {
		for _, m := range a.Palindromes {
			fmt.Printf("%s\t%s\n", m.Text, m.Reading)
		}
	}

	if !cli.WriteLogs {
		return nil
	}
	if err := logger.InitLogs(cfg.LogDir); err != nil {
		return fmt.Errorf("init logs: %w", err)
	}
	for _, a := range results {
		if err := logger.LogJSON(cfg.LogDir, a.DocumentID+"_analysis", a); err != nil {
			log.Warn("failed to write analysis log", "document_id", a.DocumentID, "error", err)
		}
	}
	return nil
}

// readDocuments reads every named file as one document, or stdin when none are given.
func readDocuments(files []string) ([]ingest.Document, error) {
	if len(files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		d, err := ingest.NewDocument("stdin", string(data))
		if err != nil {
			return nil, err
		}
		return []ingest.Document{d}, nil
	}

	docs := make([]ingest.Document, 0, len(files))
	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		d, err := ingest.NewDocument(name, string(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		docs = append(docs, d)
	}
	return docs, nil
}
