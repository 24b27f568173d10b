package usecase

import (
	"context"
	"fmt"

	"newsmonitor/internal/domain"
)

const TruncationNotice = "Article list limited to %d items; %d articles were found in total."

// BuildHandler discovers the articles, categories and feeds of a source.
type BuildHandler struct {
	env *Env
	req domain.RequestContext
}

func (h *BuildHandler) Run(ctx context.Context) domain.Result {
	raw, _ := h.req.Param1()

	sourceURL, err := normalizeURL(raw)
	if err != nil {
		return h.fail(raw, err)
	}

	limit := h.env.maxArticles()
	h.env.Log.Info("building source %s (limit %d)", sourceURL, limit)

	src, err := h.env.Sources.Build(ctx, sourceURL, limit)
	if err != nil {
		return h.fail(raw, err)
	}

	articles := nonNil(src.Articles)
	if len(articles) > limit {
		articles = articles[:limit]
	}
	found := src.ArticlesFound
	if found < len(articles) {
		found = len(articles)
	}

	source := domain.NewRecord().
		Set("url", src.URL).
		Set("brand", src.Brand).
		Set("description", src.Description)

	p := domain.NewPayload(200).
		Set("source", source).
		Set("articles_found", found).
		Set("articles", articles).
		Set("categories", nonNil(src.Categories)).
		Set("feeds", nonNil(src.Feeds))

	h.env.Log.Info("source %s: %d articles found, %d returned", src.URL, found, len(articles))
	return domain.Success(p)
}

// EnrichPayload adds the truncation notice when more articles were found
// than returned.
func (h *BuildHandler) EnrichPayload(p *domain.Payload) error {
	found, _ := getInt(p, "articles_found")
	articles, _ := getStrings(p, "articles")
	if found > len(articles) {
		return AppendMessage(p, fmt.Sprintf(TruncationNotice, h.env.maxArticles(), found))
	}
	return nil
}

func (h *BuildHandler) fail(raw string, err error) domain.Result {
	kind := domain.FailureKind(err)
	h.env.Log.Error("could not build source %q: %v", raw, err)
	return domain.Fail(500, domain.SourceBuildFailure, fmt.Sprintf("Could not build source %q (%s)", raw, kind))
}

func getInt(p *domain.Payload, key string) (int, bool) {
	v, ok := p.Get(key)
	if !ok {
		return 0, false
	}
	n, ok := v.(int)
	return n, ok
}

func getStrings(p *domain.Payload, key string) ([]string, bool) {
	v, ok := p.Get(key)
	if !ok {
		return nil, false
	}
	s, ok := v.([]string)
	return s, ok
}
