package trends

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"

	"newsmonitor/internal/domain"
	"newsmonitor/internal/repository"
)

// Client reads the trending searches RSS feed.
type Client struct {
	fetcher repository.Fetcher
	feedURL string
	geo     string
}

func NewClient(fetcher repository.Fetcher, feedURL, geo string) *Client {
	return &Client{fetcher: fetcher, feedURL: feedURL, geo: geo}
}

type trendsFeed struct {
	Channel struct {
		Items []struct {
			Title string `xml:"title"`
		} `xml:"item"`
	} `xml:"channel"`
}

func (c *Client) endpoint() (string, error) {
	u, err := url.Parse(c.feedURL)
	if err != nil {
		return "", fmt.Errorf("%w: trends feed %q", domain.ErrInvalidURL, c.feedURL)
	}
	if c.geo != "" {
		q := u.Query()
		q.Set("geo", c.geo)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// HotTopics returns the trending topic titles in feed order.
func (c *Client) HotTopics(ctx context.Context) ([]string, error) {
	endpoint, err := c.endpoint()
	if err != nil {
		return nil, err
	}

	page, err := c.fetcher.Fetch(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetching trends: %w", err)
	}

	var feed trendsFeed
	if err := xml.Unmarshal([]byte(page.HTML), &feed); err != nil {
		return nil, fmt.Errorf("%w: trends feed: %v", domain.ErrParse, err)
	}

	topics := []string{}
	seen := make(map[string]bool)
	for _, item := range feed.Channel.Items {
		title := strings.TrimSpace(item.Title)
		if title == "" || seen[strings.ToLower(title)] {
			continue
		}
		seen[strings.ToLower(title)] = true
		topics = append(topics, title)
	}
	return topics, nil
}
