package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/0xPuncker/job-grid/internal/scraper"
	"github.com/0xPuncker/job-grid/pkg/types"
)

const (
	defaultPort         = "3000"
	defaultLogLevel     = "info"
	defaultStaticDir    = "web"
	defaultSourcesFile  = "config/sources.yaml"
	defaultReadTimeout  = "10s"
	defaultWriteTimeout = "30s"

	WarmGridTask = "warm-grid"
)

type Config struct {
	Server  ServerConfig          `json:"server"`
	Log     LogConfig             `json:"log"`
	Scraper ScraperConfig         `json:"scraper"`
	Jobs    types.SchedulerConfig `json:"jobs"`
}

type ServerConfig struct {
	Port         string `json:"port"`
	ReadTimeout  string `json:"read_timeout"`
	WriteTimeout string `json:"write_timeout"`
	StaticDir    string `json:"static_dir"`
}

type LogConfig struct {
	Level string `json:"level"`
}

type ScraperConfig struct {
	Timeout     string `json:"timeout"`
	UserAgent   string `json:"user_agent"`
	SourcesFile string `json:"sources_file"`
}

// Load reads the JSON config at configPath. When the file does not exist the
// config is built from environment variables instead. Server, log and scraper
// environment variables override values from the file.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		return FromEnv(), nil
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.applyEnv()
	config.applyDefaults()

	return &config, nil
}

func FromEnv() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", defaultPort),
			ReadTimeout:  getEnv("SERVER_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: getEnv("SERVER_WRITE_TIMEOUT", defaultWriteTimeout),
			StaticDir:    getEnv("STATIC_DIR", defaultStaticDir),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", defaultLogLevel),
		},
		Scraper: ScraperConfig{
			Timeout:     getEnv("SCRAPE_TIMEOUT", scraper.DefaultTimeout.String()),
			UserAgent:   getEnv("SCRAPE_USER_AGENT", scraper.DefaultUserAgent),
			SourcesFile: getEnv("SOURCES_FILE", defaultSourcesFile),
		},
		Jobs: types.SchedulerConfig{
			MaxConcurrent: getEnvInt("SCHEDULER_MAX_CONCURRENT", 1),
		},
	}

	if schedule := os.Getenv("WARMUP_SCHEDULE"); schedule != "" {
		config.Jobs.Predefined = []types.ScheduledJob{
			{
				Name:        "grid-warmup",
				Schedule:    schedule,
				TaskName:    WarmGridTask,
				Enabled:     true,
				Description: "Rebuild the job grid once the cache has expired",
			},
		}
	}

	return config
}

func DefaultConfig() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Server.ReadTimeout = getEnv("SERVER_READ_TIMEOUT", c.Server.ReadTimeout)
	c.Server.WriteTimeout = getEnv("SERVER_WRITE_TIMEOUT", c.Server.WriteTimeout)
	c.Server.StaticDir = getEnv("STATIC_DIR", c.Server.StaticDir)
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Scraper.Timeout = getEnv("SCRAPE_TIMEOUT", c.Scraper.Timeout)
	c.Scraper.UserAgent = getEnv("SCRAPE_USER_AGENT", c.Scraper.UserAgent)
	c.Scraper.SourcesFile = getEnv("SOURCES_FILE", c.Scraper.SourcesFile)
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = defaultPort
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = defaultReadTimeout
	}
	if c.Server.WriteTimeout == "" {
		c.Server.WriteTimeout = defaultWriteTimeout
	}
	if c.Server.StaticDir == "" {
		c.Server.StaticDir = defaultStaticDir
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Scraper.Timeout == "" {
		c.Scraper.Timeout = scraper.DefaultTimeout.String()
	}
	if c.Scraper.UserAgent == "" {
		c.Scraper.UserAgent = scraper.DefaultUserAgent
	}
	if c.Scraper.SourcesFile == "" {
		c.Scraper.SourcesFile = defaultSourcesFile
	}
	if c.Jobs.MaxConcurrent <= 0 {
		c.Jobs.MaxConcurrent = 1
	}
}

func (s ScraperConfig) RequestTimeout() time.Duration {
	return parseDuration(s.Timeout, scraper.DefaultTimeout)
}

func (s ServerConfig) ReadTimeoutDuration() time.Duration {
	return parseDuration(s.ReadTimeout, 10*time.Second)
}

func (s ServerConfig) WriteTimeoutDuration() time.Duration {
	return parseDuration(s.WriteTimeout, 30*time.Second)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
