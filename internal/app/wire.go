package app

import (
	"newsmonitor/internal/adapter/article"
	"newsmonitor/internal/adapter/browser"
	"newsmonitor/internal/adapter/httpclient"
	"newsmonitor/internal/adapter/llm"
	"newsmonitor/internal/adapter/nlp"
	"newsmonitor/internal/adapter/source"
	"newsmonitor/internal/adapter/trends"
	"newsmonitor/internal/config"
	"newsmonitor/internal/logger"
	"newsmonitor/internal/repository"
	"newsmonitor/internal/usecase"
)

// NewEnv builds the adapters selected by cfg and returns the execution
// context shared by every request.
func NewEnv(cfg *config.Config, log *logger.Logger) *usecase.Env {
	plain := httpclient.NewFetcher(httpclient.NewHTTPClient(cfg.HTTPTimeout))

	var pages repository.Fetcher = plain
	if cfg.RenderJS {
		log.Info("rendering pages with headless browser %q", cfg.BrowserPath)
		pages = browser.NewFetcher(cfg.BrowserPath, cfg.HTTPTimeout, log.With("chromedp").Debug)
	}

	corpus := nlp.NewCorpus(cfg.NLPCorpusPath)

	var enricher repository.Enricher = nlp.NewSummarizer(corpus)
	if cfg.OpenAIKey != "" {
		log.Info("using %s for summaries and keywords", cfg.OpenAIModel)
		enricher = llm.NewSummarizer(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, corpus)
	}

	return &usecase.Env{
		Log:                  log,
		Corpus:               corpus,
		Sources:              source.NewBuilder(pages, cfg.CategoryCrawlLimit, log.With("source")).WithFeedFetcher(plain),
		Articles:             article.NewParser(pages),
		Trends:               trends.NewClient(plain, cfg.TrendsFeedURL, cfg.TrendsGeo),
		Popular:              trends.NewPopular(),
		Enricher:             enricher,
		MaxArticlesPerSource: cfg.MaxArticlesPerSource,
		DocsURL:              cfg.DocsURL,
	}
}

// NewLogger opens the rotated log file described by cfg.
func NewLogger(module string, cfg *config.Config) (*logger.Logger, error) {
	return logger.NewRotating(module, logger.Options{
		Path:       cfg.LogPath,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Level:      logger.ParseLevel(cfg.LogLevel),
	})
}
