package article

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsmonitor/internal/domain"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head>
<title>Senate passes budget | Example News</title>
<meta property="og:title" content="Senate passes new budget bill">
<meta name="author" content="By Jane Doe and John Smith">
<meta property="article:published_time" content="2024-05-01T10:30:00Z">
<meta property="og:image" content="https://cdn.example.com/lead.jpg">
</head>
<body>
<nav><a href="/">Home</a></nav>
<article>
<h1>Senate passes new budget bill</h1>
<p>The Senate passed the new budget bill late on Tuesday after a long debate that stretched across several days of negotiation between the parties.</p>
<img src="/images/vote.jpg" alt="The vote">
<p>Lawmakers said the bill would fund public services for the coming fiscal year, while critics argued that the spending levels were far too high for the economy.</p>
<p>The measure now moves to the House, where leaders expect a vote next week. Analysts believe the bill will pass with a narrow majority in the lower chamber.</p>
<iframe src="https://www.youtube.com/embed/abc123"></iframe>
<iframe src="https://ads.example.com/banner"></iframe>
<video><source src="/media/clip.mp4" type="video/mp4"></video>
</article>
</body>
</html>`

func TestParseHTML_ExtractsFields(t *testing.T) {
	a, err := ParseHTML("https://news.example.com/politics/senate-passes-new-budget-bill", articleHTML)
	require.NoError(t, err)

	assert.Equal(t, "Senate passes new budget bill", a.Title)
	assert.Equal(t, []string{"Jane Doe", "John Smith"}, a.Authors)
	require.NotNil(t, a.PublishDatetime())
	assert.Equal(t, "2024-05-01 10:30:00", *a.PublishDatetime())
	assert.Contains(t, a.Text, "The Senate passed the new budget bill")
	require.NotEmpty(t, a.Images)
	assert.Equal(t, "https://cdn.example.com/lead.jpg", a.Images[0], "og:image comes first")
	for _, img := range a.Images {
		assert.True(t, strings.HasPrefix(img, "https://"), "expected absolute image url, got %s", img)
	}
	assert.Equal(t, []string{"https://www.youtube.com/embed/abc123", "https://news.example.com/media/clip.mp4"}, a.Movies)
	assert.Equal(t, articleHTML, a.HTML)
	assert.NotNil(t, a.Keywords)
	assert.Empty(t, a.Keywords)
}

func TestParseHTML_DateFromURL(t *testing.T) {
	html := `<html><head><title>Story</title></head><body><p>Some text about the day.</p></body></html>`

	a, err := ParseHTML("https://news.example.com/2023/02/03/story", html)
	require.NoError(t, err)
	require.NotNil(t, a.PublishDatetime())
	assert.Equal(t, "2023-02-03 00:00:00", *a.PublishDatetime())
}

func TestParseHTML_UnparseableDateIsAbsent(t *testing.T) {
	html := `<html><head><title>Story</title><meta name="pubdate" content="sometime last week"></head><body><p>Text.</p></body></html>`

	a, err := ParseHTML("https://news.example.com/world/story", html)
	require.NoError(t, err)
	assert.Nil(t, a.PublishDatetime())
}

func TestParseHTML_EmptyDocument(t *testing.T) {
	_, err := ParseHTML("https://news.example.com/empty", `<html><head></head><body></body></html>`)
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestParseHTML_InvalidURL(t *testing.T) {
	_, err := ParseHTML("://bad", articleHTML)
	assert.ErrorIs(t, err, domain.ErrInvalidURL)
}

func TestExtractAuthors(t *testing.T) {
	html := `<html><head><meta property="article:author" content="https://facebook.com/someone"></head><body>
<span rel="author">Written by Ana Lima</span>
<div itemprop="author" content="Ana Lima"></div>
<p class="byline">By Bob Stone, Carla Diaz &amp; Dan Wu</p>
<p class="byline">123</p>
</body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	assert.Equal(t, []string{"Ana Lima", "Bob Stone", "Carla Diaz", "Dan Wu"}, extractAuthors(doc, nil))
}

type stubFetcher struct {
	page *domain.Page
	err  error
}

func (s stubFetcher) Fetch(ctx context.Context, url string) (*domain.Page, error) {
	return s.page, s.err
}

func TestParse_UsesRequestedURL(t *testing.T) {
	p := NewParser(stubFetcher{page: &domain.Page{URL: "https://news.example.com/final", StatusCode: 200, HTML: articleHTML}})

	a, err := p.Parse(context.Background(), "http://news.example.com/short")
	require.NoError(t, err)
	assert.Equal(t, "http://news.example.com/short", a.URL)
}

func TestParse_DownloadFailure(t *testing.T) {
	p := NewParser(stubFetcher{err: fmt.Errorf("%w: refused", domain.ErrNetwork)})

	_, err := p.Parse(context.Background(), "http://news.example.com/x")
	assert.ErrorIs(t, err, domain.ErrNetwork)
}
