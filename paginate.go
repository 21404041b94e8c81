package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/sgaunet/paginator/pkg/config"
	"github.com/sgaunet/paginator/pkg/dto"
	"github.com/sgaunet/paginator/pkg/paginator"
)

func main() {
	var err error
	var fileName, baseURL string
	var page, perPage, total, window int
	var verify bool
	flag.StringVar(&fileName, "f", "", "Configuration file (optional)")
	flag.IntVar(&page, "page", 1, "Current page (1-indexed)")
	flag.IntVar(&perPage, "per-page", 0, "Items per page (defaults to the configured value)")
	flag.IntVar(&total, "total", 0, "Total number of items")
	flag.StringVar(&baseURL, "url", "", "Base URL the page parameter is appended to")
	flag.IntVar(&window, "window", 0, "Number of page links to show (defaults to the configured value)")
	flag.BoolVar(&verify, "verify", false, "Fail when the page or page size is invalid")
	flag.Parse()

	cfg := config.Default()
	if fileName != "" {
		if cfg, err = config.ReadYamlCnxFile(fileName); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading configuration file: %s\n", err.Error())
			os.Exit(1)
		}
	}
	l := initTrace(cfg.LogLevel)

	if perPage == 0 {
		perPage = cfg.Pagination.DefaultPerPage
	}
	if window == 0 {
		window = cfg.Pagination.Window
	}

	p := paginator.New(page, perPage, total,
		paginator.WithBaseURL(baseURL),
		paginator.WithPageParameter(cfg.Pagination.PageParameter),
	)
	l.Debug("paginator created",
		slog.Int("page", p.Page()),
		slog.Int("perPage", p.PerPage()),
		slog.Int("total", p.Total()))

	if verify {
		if err = p.Verify(); err != nil {
			l.Error("verification failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	info, err := dto.NewPaginationInfo(p, window)
	if err != nil {
		l.Error("cannot compute pagination", slog.String("error", err.Error()))
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err = enc.Encode(info); err != nil {
		l.Error("cannot encode pagination", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// initTrace initializes the logger
func initTrace(debugLevel string) *slog.Logger {
	handlerOptions := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}

	switch debugLevel {
	case "debug":
		handlerOptions.Level = slog.LevelDebug
		handlerOptions.AddSource = true
	case "info":
		handlerOptions.Level = slog.LevelInfo
	case "warn":
		handlerOptions.Level = slog.LevelWarn
	case "error":
		handlerOptions.Level = slog.LevelError
	default:
		handlerOptions.Level = slog.LevelInfo
	}

	// stdout carries the JSON result
	handler := slog.NewTextHandler(os.Stderr, handlerOptions)
	return slog.New(handler)
}
