package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/0xPuncker/job-grid/internal/aggregator"
	"github.com/0xPuncker/job-grid/internal/api"
	"github.com/0xPuncker/job-grid/internal/config"
	"github.com/0xPuncker/job-grid/internal/cron"
	"github.com/0xPuncker/job-grid/internal/jobs"
	"github.com/0xPuncker/job-grid/internal/scraper"
	"github.com/dimiro1/banner"
	"github.com/joho/godotenv"
	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
)

const bannerText = `
{{ .Title "Job Grid" "" 0 }}
{{ .AnsiBackground.BrightBlue }}{{ .AnsiColor.White }}
{{ .AnsiReset }}
`

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load(".env.local"); err != nil {
			fmt.Printf("No .env or .env.local file found. Using environment variables.\n")
		}
	}

	banner.Init(colorable.NewColorableStdout(), true, true, strings.NewReader(bannerText))

	configPath := flag.String("config", "config/config.json", "path to config file")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05-07:00",
	})

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.Warnf("Invalid log level %q, using info", cfg.Log.Level)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	catalog, err := config.LoadCatalog(cfg.Scraper.SourcesFile)
	if err != nil {
		logger.Fatalf("Failed to load sources: %v", err)
	}

	client := scraper.NewHTTPClient(cfg.Scraper.RequestTimeout())
	var sources []aggregator.Source
	for _, def := range catalog.Definitions() {
		logger.Debugf("Registering job board %s (%s)", def.Name, def.URL)
		sources = append(sources, scraper.New(def, client, cfg.Scraper.UserAgent, logger))
	}

	service := jobs.NewService(
		aggregator.New(logger, sources...),
		jobs.NewStore(jobs.Duration),
		catalog.Fallback,
		logger,
	)

	scheduler := cron.NewScheduler(logger, cfg.Jobs)
	scheduler.RegisterTask(config.WarmGridTask, service.Warm)
	if err := scheduler.LoadPredefinedJobs(cfg.Jobs.Predefined); err != nil {
		logger.Fatalf("Failed to load predefined jobs: %v", err)
	}

	handler := api.NewHandler(service, scheduler, logger, cfg.Server.StaticDir)
	server := api.NewServer(
		cfg.Server.Port,
		api.NewRouter(handler),
		cfg.Server.ReadTimeoutDuration(),
		cfg.Server.WriteTimeoutDuration(),
	)

	if err := scheduler.Start(); err != nil {
		logger.Fatalf("Failed to start scheduler: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	logger.Infof("Server running at http://localhost:%s - Press Ctrl+C to stop.", cfg.Server.Port)
	logger.Infof("API endpoint: http://localhost:%s/api/jobs", cfg.Server.Port)

	<-stop
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	scheduler.Stop()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}

	logger.Info("Server stopped")
}
