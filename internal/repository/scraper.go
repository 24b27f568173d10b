package repository

import (
	"context"

	"newsmonitor/internal/domain"
)

// Fetcher downloads a single page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*domain.Page, error)
}

// SourceBuilder discovers the articles, categories and feeds of a publisher.
// limit caps the returned article list; ArticlesFound stays uncapped.
type SourceBuilder interface {
	Build(ctx context.Context, sourceURL string, limit int) (*domain.Source, error)
}

// ArticleParser downloads and parses one article.
type ArticleParser interface {
	Parse(ctx context.Context, articleURL string) (*domain.Article, error)
}

// TrendSource returns currently trending search topics.
type TrendSource interface {
	HotTopics(ctx context.Context) ([]string, error)
}

// PopularSource returns well-known news source URLs.
type PopularSource interface {
	PopularURLs(ctx context.Context) ([]string, error)
}

// Enricher derives a summary and keywords from article text.
type Enricher interface {
	Enrich(ctx context.Context, title, text string) (summary string, keywords []string, err error)
}

// Corpus is the NLP reference data. Configure is idempotent and returns
// domain.ErrCorpusUnavailable when the data cannot be found.
type Corpus interface {
	Configure() error
}
