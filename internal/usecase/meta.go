package usecase

import (
	"context"
	"fmt"
	"strings"

	"newsmonitor/internal/domain"
)

const (
	metaHotTopics   = "hot_topics"
	metaPopularURLs = "popular_urls"
)

// MetaHandler returns trending topics and popular source URLs. Each subset
// is included when its name appears anywhere in param1.
type MetaHandler struct {
	env *Env
	req domain.RequestContext
}

func (h *MetaHandler) Run(ctx context.Context) domain.Result {
	data, _ := h.req.Param1()
	p := domain.NewPayload(200)

	if strings.Contains(data, metaHotTopics) {
		topics, err := h.env.Trends.HotTopics(ctx)
		if err != nil {
			return h.fail(data, err)
		}
		p.Set("hot-topics", nonNil(topics))
	}

	if strings.Contains(data, metaPopularURLs) {
		urls, err := h.env.Popular.PopularURLs(ctx)
		if err != nil {
			return h.fail(data, err)
		}
		p.Set("popular-urls", nonNil(urls))
	}

	return domain.Success(p)
}

func (h *MetaHandler) fail(data string, err error) domain.Result {
	kind := domain.FailureKind(err)
	h.env.Log.Error("could not fetch metadata %q: %v", data, err)
	return domain.Fail(500, domain.MetadataFetchFailure, fmt.Sprintf("Could not fetch metadata %q (%s)", data, kind))
}
