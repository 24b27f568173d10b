package article

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	readability "github.com/go-shiori/go-readability"

	"newsmonitor/internal/domain"
	"newsmonitor/internal/repository"
)

// Parser downloads an article and extracts its fields.
type Parser struct {
	fetcher repository.Fetcher
}

func NewParser(fetcher repository.Fetcher) *Parser {
	return &Parser{fetcher: fetcher}
}

func (p *Parser) Parse(ctx context.Context, articleURL string) (*domain.Article, error) {
	page, err := p.fetcher.Fetch(ctx, articleURL)
	if err != nil {
		return nil, fmt.Errorf("downloading article: %w", err)
	}

	a, err := ParseHTML(page.URL, page.HTML)
	if err != nil {
		return nil, err
	}
	a.URL = articleURL
	return a, nil
}

// ParseHTML extracts an article from an already downloaded page.
func ParseHTML(pageURL, rawHTML string) (*domain.Article, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidURL, pageURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("%w: article html: %v", domain.ErrParse, err)
	}

	profile, hasProfile := profileFor(base.Hostname())
	if hasProfile && profile.isNonText(base.Hostname()) {
		return nil, fmt.Errorf("%w: %s is a video or photo page, not a text article", domain.ErrParse, pageURL)
	}

	var readable *readability.Article
	if r, err := readability.FromReader(strings.NewReader(rawHTML), base); err == nil {
		readable = &r
	}

	a := &domain.Article{
		URL:         pageURL,
		Title:       extractTitle(doc, readable),
		Authors:     extractAuthors(doc, readable),
		PublishedAt: extractPublishDate(doc, base),
		Text:        extractText(doc, readable),
		Keywords:    []string{},
		HTML:        rawHTML,
	}
	if hasProfile {
		if text := profile.text(doc); text != "" {
			a.Text = text
		}
	}
	a.Images = extractImages(doc, readable, base)
	a.Movies = extractMovies(doc, base)

	if a.Title == "" && a.Text == "" {
		return nil, fmt.Errorf("%w: no title or body found in %s", domain.ErrParse, pageURL)
	}
	return a, nil
}

func metaContent(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if v, ok := doc.Find(sel).First().Attr("content"); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func extractTitle(doc *goquery.Document, readable *readability.Article) string {
	if t := metaContent(doc, `meta[property="og:title"]`, `meta[name="twitter:title"]`); t != "" {
		return collapseSpaces(t)
	}
	if readable != nil && strings.TrimSpace(readable.Title) != "" {
		return collapseSpaces(readable.Title)
	}
	if t := strings.TrimSpace(doc.Find("h1").First().Text()); t != "" {
		return collapseSpaces(t)
	}
	return collapseSpaces(doc.Find("title").First().Text())
}

var (
	spacesRe    = regexp.MustCompile(`[ \t\r\f\v\x{00a0}]+`)
	blankLineRe = regexp.MustCompile(`\n\s*\n+`)
)

func collapseSpaces(s string) string {
	return strings.TrimSpace(spacesRe.ReplaceAllString(strings.ReplaceAll(s, "\n", " "), " "))
}

// normalizeText collapses runs of spaces and keeps single blank lines
// between paragraphs.
func normalizeText(s string) string {
	s = spacesRe.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	s = strings.Join(lines, "\n")
	s = blankLineRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

func extractText(doc *goquery.Document, readable *readability.Article) string {
	if readable != nil {
		if text := normalizeText(readable.TextContent); text != "" {
			return text
		}
	}

	var b strings.Builder
	doc.Find("article p, main p, body p").Each(func(i int, s *goquery.Selection) {
		if t := collapseSpaces(s.Text()); t != "" {
			b.WriteString(t + "\n\n")
		}
	})
	return strings.TrimSpace(b.String())
}

var (
	byPrefixRe      = regexp.MustCompile(`(?i)^\s*(written\s+)?by[:\s]+`)
	authorSplitRe   = regexp.MustCompile(`(?i)\s*(,|\band\b|&|\|)\s*`)
	authorLettersRe = regexp.MustCompile(`\p{L}`)
)

func extractAuthors(doc *goquery.Document, readable *readability.Article) []string {
	var candidates []string
	doc.Find(`meta[name="author"], meta[property="article:author"], meta[name="byl"], meta[name="parsely-author"]`).Each(func(i int, s *goquery.Selection) {
		if v, ok := s.Attr("content"); ok {
			candidates = append(candidates, v)
		}
	})
	doc.Find(`[rel="author"], [itemprop="author"] [itemprop="name"], [itemprop="author"], .byline, .author-name`).Each(func(i int, s *goquery.Selection) {
		if v, ok := s.Attr("content"); ok {
			candidates = append(candidates, v)
			return
		}
		candidates = append(candidates, s.Text())
	})
	if readable != nil && readable.Byline != "" {
		candidates = append(candidates, readable.Byline)
	}

	seen := make(map[string]bool)
	authors := []string{}
	for _, c := range candidates {
		c = collapseSpaces(c)
		if c == "" || strings.HasPrefix(c, "http") {
			continue
		}
		c = byPrefixRe.ReplaceAllString(c, "")
		for _, name := range authorSplitRe.Split(c, -1) {
			name = strings.Trim(collapseSpaces(name), ".;:-")
			words := len(strings.Fields(name))
			if words == 0 || words > 5 || !authorLettersRe.MatchString(name) {
				continue
			}
			key := strings.ToLower(name)
			if seen[key] {
				continue
			}
			seen[key] = true
			authors = append(authors, name)
		}
	}
	return authors
}

var urlDateRe = regexp.MustCompile(`/((?:19|20)\d{2})[/-](0?[1-9]|1[0-2])[/-](0?[1-9]|[12]\d|3[01])(?:/|$|[^\d])`)

// extractPublishDate reads publication metadata, then falls back to a
// date embedded in the URL. Unparseable values yield nil.
func extractPublishDate(doc *goquery.Document, base *url.URL) *time.Time {
	candidates := []string{metaContent(doc,
		`meta[property="article:published_time"]`,
		`meta[property="og:published_time"]`,
		`meta[name="pubdate"]`,
		`meta[name="publishdate"]`,
		`meta[name="publish-date"]`,
		`meta[itemprop="datePublished"]`,
		`meta[name="DC.date.issued"]`,
		`meta[name="date"]`,
	)}
	doc.Find(`time[datetime], [itemprop="datePublished"]`).Each(func(i int, s *goquery.Selection) {
		if v, ok := s.Attr("datetime"); ok {
			candidates = append(candidates, v)
		} else {
			candidates = append(candidates, s.Text())
		}
	})

	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if t, err := dateparse.ParseAny(c); err == nil && !t.IsZero() {
			return &t
		}
	}

	if m := urlDateRe.FindStringSubmatch(base.Path); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		return &t
	}
	return nil
}

func resolveMedia(base *url.URL, src string) (string, bool) {
	src = strings.TrimSpace(src)
	if src == "" || strings.HasPrefix(src, "data:") {
		return "", false
	}
	ref, err := url.Parse(src)
	if err != nil {
		return "", false
	}
	u := base.ResolveReference(ref)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	return u.String(), true
}

func extractImages(doc *goquery.Document, readable *readability.Article, base *url.URL) []string {
	images := []string{}
	seen := make(map[string]bool)
	add := func(src string) {
		if u, ok := resolveMedia(base, src); ok && !seen[u] {
			seen[u] = true
			images = append(images, u)
		}
	}

	add(metaContent(doc, `meta[property="og:image"]`, `meta[name="twitter:image"]`))

	scope := doc.Selection
	if readable != nil && readable.Content != "" {
		if content, err := goquery.NewDocumentFromReader(strings.NewReader(readable.Content)); err == nil {
			scope = content.Selection
		}
	}
	scope.Find("img").Each(func(i int, s *goquery.Selection) {
		src, ok := s.Attr("src")
		if !ok {
			src, _ = s.Attr("data-src")
		}
		add(src)
	})
	return images
}

var videoHosts = []string{"youtube.com", "youtube-nocookie.com", "youtu.be", "vimeo.com", "dailymotion.com", "dai.ly", "twitch.tv", "facebook.com/plugins/video", "players.brightcove.net", "jwplayer.com"}

func isVideoHost(u string) bool {
	for _, h := range videoHosts {
		if strings.Contains(u, h) {
			return true
		}
	}
	return false
}

func extractMovies(doc *goquery.Document, base *url.URL) []string {
	movies := []string{}
	seen := make(map[string]bool)
	add := func(src string, requireHost bool) {
		u, ok := resolveMedia(base, src)
		if !ok || seen[u] || (requireHost && !isVideoHost(u)) {
			return
		}
		seen[u] = true
		movies = append(movies, u)
	}

	doc.Find("iframe[src], embed[src]").Each(func(i int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		add(src, true)
	})
	doc.Find("object[data]").Each(func(i int, s *goquery.Selection) {
		src, _ := s.Attr("data")
		add(src, true)
	})
	doc.Find("video[src], video source[src]").Each(func(i int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		add(src, false)
	})
	return movies
}
