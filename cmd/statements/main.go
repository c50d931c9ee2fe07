package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/statements/internal/config"
	"github.com/MrJamesThe3rd/statements/internal/extract"
	"github.com/MrJamesThe3rd/statements/internal/importer"
	"github.com/MrJamesThe3rd/statements/internal/report"
)

const (
	formatJSON  = "json"
	formatCSV   = "csv"
	formatTable = "table"
)

var writers = map[string]func(io.Writer, []report.File) error{
	formatJSON:  report.WriteJSON,
	formatCSV:   report.WriteCSV,
	formatTable: report.WriteTable,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("statements", flag.ContinueOnError)
	format := fs.String("format", formatTable, "output format: json, csv or table")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: statements [-format json|csv|table] FILE...\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	write, ok := writers[*format]
	if fs.NArg() == 0 || !ok {
		fs.Usage()
		return 2
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.App.LogLevel}))
	slog.SetDefault(logger)

	extractor, err := extract.NewByExtension(cfg.Extractor.Backend, cfg.Extractor.PdftotextPath)
	if err != nil {
		slog.Error("failed to build extractor", "error", err)
		return 1
	}

	svc := importer.NewService(
		extractor,
		importer.DefaultSelector(cfg.ParserOptions()...),
		importer.WithLogger(logger),
		importer.WithDetectionPages(cfg.Parser.DetectionPages),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Debug("parsing statements", "app", cfg.App.Name, "files", fs.NArg(), "concurrency", cfg.Parser.Concurrency)

	files := parseAll(ctx, svc, fs.Args(), cfg.Parser.Concurrency)

	if err := write(stdout, files); err != nil {
		slog.Error("failed to write results", "error", err)
		return 1
	}

	for _, f := range files {
		if !f.Result.Success {
			return 1
		}
	}

	return 0
}

// parseAll parses every path, at most limit at a time. Results keep the
// order of paths.
func parseAll(ctx context.Context, svc *importer.Service, paths []string, limit int) []report.File {
	files := make([]report.File, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			files[i] = report.File{Path: path, Result: svc.Parse(ctx, path)}
			return nil
		})
	}

	// Parse reports failures in the result, so the group never errors.
	_ = g.Wait()

	return files
}
