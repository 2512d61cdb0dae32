package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/0xPuncker/job-grid/internal/config"
	"github.com/0xPuncker/job-grid/internal/scraper"
	"github.com/sirupsen/logrus"
)

// Scrapes every configured board once and prints what came back.
func main() {
	sourcesPath := flag.String("sources", "config/sources.yaml", "path to the sources catalog")
	timeout := flag.Duration("timeout", scraper.DefaultTimeout, "request timeout per board")
	show := flag.Int("show", 5, "number of records to print per board")
	flag.Parse()

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	catalog, err := config.LoadCatalog(*sourcesPath)
	if err != nil {
		fmt.Printf("Failed to load sources: %v\n", err)
		os.Exit(1)
	}

	client := scraper.NewHTTPClient(*timeout)
	for _, def := range catalog.Definitions() {
		fmt.Printf("\nScraping %s: %s\n", def.Name, def.URL)

		start := time.Now()
		jobs := scraper.New(def, client, "", logger).Scrape(context.Background())
		fmt.Printf("Records: %d (limit %d) in %s\n", len(jobs), def.Limit, time.Since(start).Round(time.Millisecond))

		for i, job := range jobs {
			if i >= *show {
				break
			}
			fmt.Printf("  %-40s %-25s %s\n", job.Title, job.Company, job.Salary)
		}
	}
}
