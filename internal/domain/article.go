package domain

import "time"

// DateTimeLayout is the publish datetime format returned to callers.
const DateTimeLayout = "2006-01-02 15:04:05"

// Article is the structured extraction of a single article page.
type Article struct {
	URL         string
	Title       string
	Authors     []string
	PublishedAt *time.Time
	Text        string
	Summary     *string
	Keywords    []string
	Images      []string
	Movies      []string
	HTML        string
}

// PublishDatetime returns the formatted publish date, or nil when unknown.
func (a Article) PublishDatetime() *string {
	if a.PublishedAt == nil || a.PublishedAt.IsZero() {
		return nil
	}
	s := a.PublishedAt.Format(DateTimeLayout)
	return &s
}

// Source describes a news publisher discovered from its homepage.
type Source struct {
	URL           string
	Brand         string
	Description   string
	ArticlesFound int
	Articles      []string
	Categories    []string
	Feeds         []string
}

// Page is a downloaded document.
type Page struct {
	URL        string
	StatusCode int
	HTML       string
}
