package usecase

import (
	"newsmonitor/internal/logger"
	"newsmonitor/internal/repository"
)

const DefaultMaxArticlesPerSource = 50

// Env is the execution context shared by every handler. It is built once
// at startup and never mutated afterwards.
type Env struct {
	Log      *logger.Logger
	Corpus   repository.Corpus
	Sources  repository.SourceBuilder
	Articles repository.ArticleParser
	Trends   repository.TrendSource
	Popular  repository.PopularSource
	Enricher repository.Enricher

	MaxArticlesPerSource int
	DocsURL              string
}

func (e *Env) maxArticles() int {
	if e.MaxArticlesPerSource < 1 {
		return DefaultMaxArticlesPerSource
	}
	return e.MaxArticlesPerSource
}

// withLog returns a shallow copy of e that logs through l.
func (e *Env) withLog(l *logger.Logger) *Env {
	c := *e
	c.Log = l
	return &c
}
