package source

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"newsmonitor/internal/domain"
	"newsmonitor/internal/logger"
	"newsmonitor/internal/repository"
)

// Builder discovers a publisher's articles from its homepage, a few of its
// section pages and its feeds.
type Builder struct {
	fetcher    repository.Fetcher
	feeds      repository.Fetcher
	crawlLimit int
	log        *logger.Logger
}

func NewBuilder(fetcher repository.Fetcher, crawlLimit int, log *logger.Logger) *Builder {
	return &Builder{fetcher: fetcher, feeds: fetcher, crawlLimit: crawlLimit, log: log}
}

// WithFeedFetcher downloads feeds with f instead of the page fetcher, so
// that XML is not pushed through a browser renderer.
func (b *Builder) WithFeedFetcher(f repository.Fetcher) *Builder {
	b.feeds = f
	return b
}

// Build returns the source descriptor. limit <= 0 means no cap.
func (b *Builder) Build(ctx context.Context, sourceURL string, limit int) (*domain.Source, error) {
	page, err := b.fetcher.Fetch(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("fetching source homepage: %w", err)
	}

	base, err := url.Parse(page.URL)
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("%w: source url %q", domain.ErrInvalidURL, page.URL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return nil, fmt.Errorf("%w: source homepage: %v", domain.ErrParse, err)
	}

	feeds := newLinkSet()
	categories := newLinkSet()
	articles := newLinkSet()

	root := &url.URL{Scheme: base.Scheme, Host: base.Host, Path: "/"}
	categories.add(root.String())

	doc.Find(`link[rel="alternate"]`).Each(func(i int, s *goquery.Selection) {
		typ, _ := s.Attr("type")
		if !strings.Contains(typ, "rss") && !strings.Contains(typ, "atom") {
			return
		}
		href, _ := s.Attr("href")
		if u, ok := resolve(base, href); ok {
			feeds.add(u.String())
		}
	})

	doc.Find("a[href]").Each(func(i int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		u, ok := resolve(base, href)
		if !ok || !sameSite(u, base) {
			return
		}
		switch {
		case isFeedURL(u):
			feeds.add(u.String())
		case isArticleURL(u):
			articles.add(u.String())
		case isCategoryURL(u, base):
			categories.add(u.String())
		}
	})

	b.crawlCategories(ctx, base, categories.list[1:], articles)
	b.crawlFeeds(ctx, feeds.list, articles)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: building %s: %v", domain.ErrTimeout, sourceURL, err)
	}

	found := articles.len()
	list := articles.list
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}

	b.log.Info("built source %s: %d articles found, %d categories, %d feeds", sourceURL, found, categories.len(), feeds.len())

	return &domain.Source{
		URL:           sourceURL,
		Brand:         brand(base.Hostname()),
		Description:   description(doc),
		ArticlesFound: found,
		Articles:      list,
		Categories:    categories.list,
		Feeds:         feeds.list,
	}, nil
}

func (b *Builder) crawlCategories(ctx context.Context, base *url.URL, categories []string, articles *linkSet) {
	for i, category := range categories {
		if i >= b.crawlLimit || ctx.Err() != nil {
			return
		}
		page, err := b.fetcher.Fetch(ctx, category)
		if err != nil {
			b.log.Warning("skipping category %s: %v", category, err)
			continue
		}
		pageURL, err := url.Parse(page.URL)
		if err != nil {
			continue
		}
		hrefs, err := extractLinks(strings.NewReader(page.HTML))
		if err != nil {
			b.log.Warning("partial links for category %s: %v", category, err)
		}
		for _, href := range hrefs {
			if u, ok := resolve(pageURL, href); ok && sameSite(u, base) && isArticleURL(u) {
				articles.add(u.String())
			}
		}
	}
}

func (b *Builder) crawlFeeds(ctx context.Context, feeds []string, articles *linkSet) {
	for _, feed := range feeds {
		if ctx.Err() != nil {
			return
		}
		page, err := b.feeds.Fetch(ctx, feed)
		if err != nil {
			b.log.Warning("skipping feed %s: %v", feed, err)
			continue
		}
		feedURL, err := url.Parse(page.URL)
		if err != nil {
			continue
		}
		links, err := feedLinks(page.HTML)
		if err != nil {
			b.log.Warning("unreadable feed %s: %v", feed, err)
			continue
		}
		for _, link := range links {
			if u, ok := resolve(feedURL, link); ok {
				articles.add(u.String())
			}
		}
	}
}

func description(doc *goquery.Document) string {
	for _, sel := range []string{`meta[name="description"]`, `meta[property="og:description"]`, `meta[name="twitter:description"]`} {
		if content, ok := doc.Find(sel).First().Attr("content"); ok && strings.TrimSpace(content) != "" {
			return strings.TrimSpace(content)
		}
	}
	return ""
}
