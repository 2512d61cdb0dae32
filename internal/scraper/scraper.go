package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/0xPuncker/job-grid/pkg/types"
	"github.com/sirupsen/logrus"
)

const (
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	DefaultTimeout   = 5 * time.Second
)

var ErrUnexpectedStatus = errors.New("unexpected status code")

type Scraper struct {
	def       Definition
	client    *http.Client
	userAgent string
	logger    *logrus.Logger
}

// NewHTTPClient returns the client shared by all scrapers.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: timeout,
		},
	}
}

func New(def Definition, client *http.Client, userAgent string, logger *logrus.Logger) *Scraper {
	if client == nil {
		client = NewHTTPClient(DefaultTimeout)
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Scraper{
		def:       def,
		client:    client,
		userAgent: userAgent,
		logger:    logger,
	}
}

func (s *Scraper) Name() string { return s.def.Name }

// Scrape fetches the board once and returns whatever could be extracted.
// Failures are logged and produce an empty result.
func (s *Scraper) Scrape(ctx context.Context) []types.JobRecord {
	start := time.Now()
	s.logger.WithFields(logrus.Fields{
		"source": s.def.Name,
		"url":    s.def.URL,
	}).Info("Scraping job board")

	jobs, err := s.fetch(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"source":   s.def.Name,
			"url":      s.def.URL,
			"duration": time.Since(start).String(),
			"error":    err.Error(),
		}).Error("Failed to scrape job board")
		return []types.JobRecord{}
	}

	s.logger.WithFields(logrus.Fields{
		"source":   s.def.Name,
		"count":    len(jobs),
		"duration": time.Since(start).String(),
	}).Info("Scraped job board")

	return jobs
}

func (s *Scraper) fetch(ctx context.Context) ([]types.JobRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.def.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return Extract(resp.Body, s.def.Selectors, s.def.Limit, s.def.Label)
}
