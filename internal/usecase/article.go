package usecase

import (
	"context"
	"errors"
	"fmt"

	"newsmonitor/internal/domain"
	"newsmonitor/internal/metrics"
)

const (
	NLPDisabledNotice = "NLP disabled: the language corpus is not available, so summary and keywords were not generated."
	NLPFailedNotice   = "NLP failed: summary and keywords could not be generated for this article."
)

// ParseArticleHandler downloads one article, parses it and, when the NLP
// corpus is available, adds a summary and keywords.
type ParseArticleHandler struct {
	env *Env
	req domain.RequestContext
}

func (h *ParseArticleHandler) Run(ctx context.Context) domain.Result {
	raw, _ := h.req.Param1()

	articleURL, err := normalizeURL(raw)
	if err != nil {
		return h.fail(raw, err)
	}

	h.env.Log.Info("parsing article %s", articleURL)
	article, err := h.env.Articles.Parse(ctx, articleURL)
	if err != nil {
		return h.fail(raw, err)
	}

	notice := h.nlp(ctx, article)

	p := domain.NewPayload(200).Set("article", articleRecord(article))
	if notice != "" {
		if err := AppendMessage(p, notice); err != nil {
			return h.fail(raw, err)
		}
	}
	return domain.Success(p)
}

// nlp fills the summary and keywords. It never fails the request: on any
// error the article is left without a summary and with no keywords, and
// the returned notice explains why.
func (h *ParseArticleHandler) nlp(ctx context.Context, a *domain.Article) string {
	a.Summary = nil
	a.Keywords = []string{}

	err := h.env.Corpus.Configure()
	if err == nil {
		if h.env.Enricher == nil {
			err = domain.ErrCorpusUnavailable
		} else {
			var summary string
			var keywords []string
			summary, keywords, err = h.env.Enricher.Enrich(ctx, a.Title, a.Text)
			if err == nil {
				if summary != "" {
					a.Summary = &summary
				}
				a.Keywords = nonNil(keywords)
				return ""
			}
		}
	}

	if errors.Is(err, domain.ErrCorpusUnavailable) {
		h.env.Log.Warning("nlp disabled for %s: %v", a.URL, err)
		metrics.NLPDegradedTotal.WithLabelValues("corpus_unavailable").Inc()
		return NLPDisabledNotice
	}
	h.env.Log.Error("nlp failed for %s: %v", a.URL, err)
	metrics.NLPDegradedTotal.WithLabelValues("error").Inc()
	return NLPFailedNotice
}

func articleRecord(a *domain.Article) *domain.Payload {
	var published, summary any
	if d := a.PublishDatetime(); d != nil {
		published = *d
	}
	if a.Summary != nil {
		summary = *a.Summary
	}

	return domain.NewRecord().
		Set("url", a.URL).
		Set("publish_datetime", published).
		Set("title", a.Title).
		Set("text", a.Text).
		Set("keywords", nonNil(a.Keywords)).
		Set("summary", summary).
		Set("authors", nonNil(a.Authors)).
		Set("images", nonNil(a.Images)).
		Set("movies", nonNil(a.Movies)).
		Set("html", a.HTML)
}

func (h *ParseArticleHandler) fail(raw string, err error) domain.Result {
	kind := domain.FailureKind(err)
	h.env.Log.Error("could not parse article %q: %v", raw, err)
	return domain.Fail(500, domain.ArticleParseFailure, fmt.Sprintf("Could not parse article %q (%s)", raw, kind))
}
