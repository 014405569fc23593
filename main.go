package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"book-scraper/config"
	"book-scraper/fetcher"
	"book-scraper/parser"
	"book-scraper/scraper"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file (defaults are used if it does not exist)")
	flag.Parse()

	cfg := loadConfig(*configPath)

	f := fetcher.NewCollyFetcher(cfg.FetcherOptions())
	p := parser.NewParser(cfg.Selectors)
	s := scraper.NewScraper(f, p, cfg.Output)

	// Failed fetches are skipped; only an export failure ends the run non-zero
	if _, err := s.Run(context.Background(), cfg.URLs); err != nil {
		log.Fatalf("Scraping failed: %v\n", err)
	}
}

// loadConfig loads the config file, falling back to defaults when it is absent
func loadConfig(configPath string) *config.Config {
	cfg, err := config.LoadConfig(configPath)
	if err == nil {
		return cfg
	}

	if errors.Is(err, os.ErrNotExist) {
		return config.GetDefaultConfig()
	}

	log.Fatalf("Error: %v\n", err)
	return nil
}
