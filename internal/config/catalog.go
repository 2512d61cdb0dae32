package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/0xPuncker/job-grid/internal/scraper"
	"github.com/0xPuncker/job-grid/pkg/types"
	"gopkg.in/yaml.v3"
)

// Catalog lists the job boards to scrape and, optionally, the static fallback
// jobs.
type Catalog struct {
	Sources  []scraper.Definition `yaml:"sources"`
	Fallback []types.JobRecord    `yaml:"fallback"`
}

// LoadCatalog reads a YAML catalog. A missing file yields an empty catalog.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Catalog{}, nil
		}
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	if err := catalog.validate(); err != nil {
		return nil, err
	}

	for i := range catalog.Fallback {
		if catalog.Fallback[i].Source == "" {
			catalog.Fallback[i].Source = types.SourceFallback
		}
	}

	return &catalog, nil
}

// Definitions returns the configured boards, or the built-in ones when the
// catalog names none.
func (c *Catalog) Definitions() []scraper.Definition {
	if len(c.Sources) == 0 {
		return scraper.DefaultDefinitions()
	}
	return c.Sources
}

func (c *Catalog) validate() error {
	for i, def := range c.Sources {
		switch {
		case def.Name == "":
			return fmt.Errorf("source %d: name is required", i)
		case def.URL == "":
			return fmt.Errorf("source %q: url is required", def.Name)
		case def.Selectors.Card == "":
			return fmt.Errorf("source %q: card selector is required", def.Name)
		}
	}
	for i, job := range c.Fallback {
		if job.Title == "" || job.Company == "" {
			return fmt.Errorf("fallback job %d: title and company are required", i)
		}
	}
	return nil
}
