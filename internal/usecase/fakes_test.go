package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"newsmonitor/internal/domain"
	"newsmonitor/internal/logger"
)

type fakeSources struct {
	src     *domain.Source
	err     error
	gotURL  string
	gotCap  int
	panicky bool
}

func (f *fakeSources) Build(ctx context.Context, sourceURL string, limit int) (*domain.Source, error) {
	if f.panicky {
		panic("boom")
	}
	f.gotURL, f.gotCap = sourceURL, limit
	if f.err != nil {
		return nil, f.err
	}
	return f.src, nil
}

type fakeArticles struct {
	article *domain.Article
	err     error
	gotURL  string
}

func (f *fakeArticles) Parse(ctx context.Context, articleURL string) (*domain.Article, error) {
	f.gotURL = articleURL
	if f.err != nil {
		return nil, f.err
	}
	a := *f.article
	return &a, nil
}

type fakeTrends struct {
	topics []string
	err    error
	calls  int
}

func (f *fakeTrends) HotTopics(ctx context.Context) ([]string, error) {
	f.calls++
	return f.topics, f.err
}

type fakePopular struct {
	urls  []string
	err   error
	calls int
}

func (f *fakePopular) PopularURLs(ctx context.Context) ([]string, error) {
	f.calls++
	return f.urls, f.err
}

type fakeCorpus struct{ err error }

func (f fakeCorpus) Configure() error { return f.err }

type fakeEnricher struct {
	summary  string
	keywords []string
	err      error
	calls    int
}

func (f *fakeEnricher) Enrich(ctx context.Context, title, text string) (string, []string, error) {
	f.calls++
	return f.summary, f.keywords, f.err
}

func newTestEnv() *Env {
	return &Env{
		Log:                  logger.Discard(),
		Corpus:               fakeCorpus{},
		Sources:              &fakeSources{src: &domain.Source{}},
		Articles:             &fakeArticles{article: &domain.Article{}},
		Trends:               &fakeTrends{},
		Popular:              &fakePopular{},
		Enricher:             &fakeEnricher{},
		MaxArticlesPerSource: 50,
		DocsURL:              "https://docs.example.com/",
	}
}

func record() map[string]any {
	return map[string]any{"method": "GET", "path": "/", "query_params": map[string]string{}}
}

func recordWithQuery(q map[string]string) map[string]any {
	r := record()
	r["query_params"] = q
	return r
}

func articleURLs(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("https://news.example.com/2024/05/01/story-%d", i)
	}
	return out
}

func mustPayload(t *testing.T, res domain.Result) *domain.Payload {
	t.Helper()
	p, ok := res.Payload()
	if !ok {
		f, _ := res.Failure()
		require.Failf(t, "expected success", "got failure %+v", f)
	}
	return p
}

func mustFailure(t *testing.T, res domain.Result) *domain.Failure {
	t.Helper()
	f, ok := res.Failure()
	require.True(t, ok, "expected failure, got success")
	_, hasPayload := res.Payload()
	require.False(t, hasPayload, "failure must not carry a payload")
	return f
}
