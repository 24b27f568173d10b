package source

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsmonitor/internal/domain"
	"newsmonitor/internal/logger"
)

type fakeFetcher struct {
	pages   map[string]string
	fetched []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (*domain.Page, error) {
	f.fetched = append(f.fetched, url)
	body, ok := f.pages[url]
	if !ok {
		return nil, fmt.Errorf("%w: %s returned 404", domain.ErrHTTPStatus, url)
	}
	return &domain.Page{URL: url, StatusCode: 200, HTML: body}, nil
}

const homepage = `<html><head>
<title>Example News</title>
<meta name="description" content="All the news that fits.">
<link rel="alternate" type="application/rss+xml" href="/rss.xml">
</head><body>
<a href="#top">top</a>
<a href="/2024/05/01/first-story">First</a>
<a href="/2024/05/01/first-story#comments">First comments</a>
<a href="/politics/senate-passes-new-budget-bill">Budget</a>
<a href="/world">World</a>
<a href="/about">About</a>
<a href="/feed">Feed</a>
<a href="https://other.org/2024/05/01/elsewhere-story">Elsewhere</a>
<a href="mailto:desk@news.example.com">Mail</a>
</body></html>`

const worldPage = `<html><body>
<a href="/world/2024/05/02/second-story">Second</a>
<a href="/2024/05/01/first-story">First again</a>
<a href="/login">Login</a>
</body></html>`

const rssFeed = `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Example</title>
<item><title>From feed</title><link>https://news.example.com/2024/05/03/feed-story</link></item>
</channel></rss>`

const atomFeed = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom"><title>Example</title>
<entry><title>Atom</title><link rel="alternate" href="https://news.example.com/tech/atom-only-story-about-go"/></entry>
</feed>`

func newSite() *fakeFetcher {
	return &fakeFetcher{pages: map[string]string{
		"https://news.example.com":         homepage,
		"https://news.example.com/world":   worldPage,
		"https://news.example.com/rss.xml": rssFeed,
		"https://news.example.com/feed":    atomFeed,
	}}
}

func TestBuild_DiscoversArticlesCategoriesAndFeeds(t *testing.T) {
	b := NewBuilder(newSite(), 5, logger.Discard())

	src, err := b.Build(context.Background(), "https://news.example.com", 50)
	require.NoError(t, err)

	wantArticles := []string{
		"https://news.example.com/2024/05/01/first-story",
		"https://news.example.com/politics/senate-passes-new-budget-bill",
		"https://news.example.com/world/2024/05/02/second-story",
		"https://news.example.com/2024/05/03/feed-story",
		"https://news.example.com/tech/atom-only-story-about-go",
	}
	assert.Equal(t, wantArticles, src.Articles)
	assert.Equal(t, len(wantArticles), src.ArticlesFound)
	assert.Equal(t, []string{"https://news.example.com/", "https://news.example.com/world"}, src.Categories)
	assert.Equal(t, []string{"https://news.example.com/rss.xml", "https://news.example.com/feed"}, src.Feeds)
	assert.Equal(t, "example", src.Brand)
	assert.Equal(t, "All the news that fits.", src.Description)
	assert.Equal(t, "https://news.example.com", src.URL)
}

func TestBuild_CapsArticlesButKeepsTrueCount(t *testing.T) {
	b := NewBuilder(newSite(), 5, logger.Discard())

	src, err := b.Build(context.Background(), "https://news.example.com", 2)
	require.NoError(t, err)
	assert.Len(t, src.Articles, 2)
	assert.Equal(t, 5, src.ArticlesFound)
}

func TestBuild_CrawlLimitZeroSkipsCategories(t *testing.T) {
	site := newSite()
	b := NewBuilder(site, 0, logger.Discard())

	src, err := b.Build(context.Background(), "https://news.example.com", 50)
	require.NoError(t, err)
	assert.NotContains(t, site.fetched, "https://news.example.com/world", "category page should not be fetched with crawl limit 0")
	assert.Equal(t, 4, src.ArticlesFound)
}

func TestBuild_BrokenFeedIsSkipped(t *testing.T) {
	site := newSite()
	site.pages["https://news.example.com/rss.xml"] = "<rss><channel><item>"
	delete(site.pages, "https://news.example.com/feed")

	src, err := NewBuilder(site, 5, logger.Discard()).Build(context.Background(), "https://news.example.com", 50)
	require.NoError(t, err)
	assert.Equal(t, 3, src.ArticlesFound)
}

func TestBuild_HomepageFailure(t *testing.T) {
	b := NewBuilder(&fakeFetcher{pages: map[string]string{}}, 5, logger.Discard())

	_, err := b.Build(context.Background(), "https://missing.example.com", 50)
	assert.ErrorIs(t, err, domain.ErrHTTPStatus)
}

func TestBuild_UsesFeedFetcher(t *testing.T) {
	pages := newSite()
	feeds := &fakeFetcher{pages: map[string]string{
		"https://news.example.com/rss.xml": rssFeed,
	}}
	delete(pages.pages, "https://news.example.com/rss.xml")

	b := NewBuilder(pages, 0, logger.Discard()).WithFeedFetcher(feeds)
	src, err := b.Build(context.Background(), "https://news.example.com", 50)
	require.NoError(t, err)
	assert.Contains(t, src.Articles, "https://news.example.com/2024/05/03/feed-story")
	assert.Contains(t, feeds.fetched, "https://news.example.com/rss.xml")
}
