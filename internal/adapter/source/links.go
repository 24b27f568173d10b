package source

import (
	"encoding/xml"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// extractLinks returns every anchor href of an HTML document.
func extractLinks(body io.Reader) ([]string, error) {
	var links []string
	z := html.NewTokenizer(body)
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return links, nil
			}
			return links, z.Err()
		case html.StartTagToken, html.SelfClosingTagToken:
			token := z.Token()
			if token.Data != "a" {
				continue
			}
			for _, attr := range token.Attr {
				if attr.Key == "href" {
					links = append(links, attr.Val)
				}
			}
		}
	}
}

type feedDoc struct {
	Channel struct {
		Items []feedItem `xml:"item"`
	} `xml:"channel"`
	Items   []feedItem  `xml:"item"`
	Entries []atomEntry `xml:"entry"`
}

type feedItem struct {
	Link string `xml:"link"`
	GUID string `xml:"guid"`
}

type atomEntry struct {
	Links []struct {
		Href string `xml:"href,attr"`
		Rel  string `xml:"rel,attr"`
	} `xml:"link"`
}

// feedLinks returns the item links of an RSS 2.0, RSS 1.0 or Atom document.
func feedLinks(doc string) ([]string, error) {
	var feed feedDoc
	if err := xml.Unmarshal([]byte(doc), &feed); err != nil {
		return nil, err
	}

	var links []string
	for _, item := range append(feed.Channel.Items, feed.Items...) {
		link := strings.TrimSpace(item.Link)
		if link == "" && strings.HasPrefix(item.GUID, "http") {
			link = strings.TrimSpace(item.GUID)
		}
		if link != "" {
			links = append(links, link)
		}
	}
	for _, entry := range feed.Entries {
		for _, l := range entry.Links {
			if l.Rel == "" || l.Rel == "alternate" {
				links = append(links, strings.TrimSpace(l.Href))
				break
			}
		}
	}
	return links, nil
}
