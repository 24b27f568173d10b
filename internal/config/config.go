package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultMaxArticlesPerSource = 50
	DefaultTrendsFeedURL        = "https://trends.google.com/trending/rss"
	DefaultDocsURL              = "https://github.com/byrro/serverless-news-monitor/"
)

type Config struct {
	Port                 string
	MaxArticlesPerSource int
	NLPCorpusPath        string
	HTTPTimeout          time.Duration
	CategoryCrawlLimit   int
	RenderJS             bool
	BrowserPath          string
	TrendsFeedURL        string
	TrendsGeo            string
	OpenAIKey            string
	OpenAIModel          string
	OpenAIBaseURL        string
	LogPath              string
	LogLevel             string
	LogMaxSize           int
	LogMaxBackups        int
	LogMaxAge            int
	GinMode              string
	DocsURL              string
}

// LoadEnv reads a .env file when one exists. Missing files are not an error.
func LoadEnv(paths ...string) {
	if err := godotenv.Load(paths...); err != nil {
		log.Println("no .env file found, using system environment")
	}
}

// Load builds the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		MaxArticlesPerSource: getIntEnv("MAX_ARTICLES_PER_SOURCE", DefaultMaxArticlesPerSource),
		NLPCorpusPath:        getEnv("NLP_CORPUS_PATH", "./nlp_data"),
		HTTPTimeout:          getDurationEnv("HTTP_TIMEOUT", "15s"),
		CategoryCrawlLimit:   getIntEnv("CATEGORY_CRAWL_LIMIT", 5),
		RenderJS:             getBoolEnv("RENDER_JS", false),
		BrowserPath:          getEnv("BROWSER_PATH", ""),
		TrendsFeedURL:        getEnv("TRENDS_FEED_URL", DefaultTrendsFeedURL),
		TrendsGeo:            getEnv("TRENDS_GEO", "US"),
		OpenAIKey:            getEnv("OPENAI_KEY", ""),
		OpenAIModel:          getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:        getEnv("OPENAI_BASE_URL", ""),
		LogPath:              getEnv("LOG_PATH", "logs/newsmonitor.log"),
		LogLevel:             getEnv("LOG_LEVEL", "INFO"),
		LogMaxSize:           getIntEnv("LOG_MAX_SIZE", 10),
		LogMaxBackups:        getIntEnv("LOG_MAX_BACKUPS", 5),
		LogMaxAge:            getIntEnv("LOG_MAX_AGE", 30),
		GinMode:              getEnv("GIN_MODE", "release"),
		DocsURL:              getEnv("DOCS_URL", DefaultDocsURL),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MaxArticlesPerSource < 1 {
		return fmt.Errorf("MAX_ARTICLES_PER_SOURCE must be positive, got %d", c.MaxArticlesPerSource)
	}
	if c.CategoryCrawlLimit < 0 {
		return fmt.Errorf("CATEGORY_CRAWL_LIMIT must not be negative, got %d", c.CategoryCrawlLimit)
	}
	if c.NLPCorpusPath == "" {
		return errors.New("NLP_CORPUS_PATH must not be empty")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue string) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
