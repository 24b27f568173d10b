package trends

import (
	"bufio"
	"context"
	_ "embed"
	"strings"
)

//go:embed popular_sources.txt
var popularSources string

// Popular serves the bundled list of well-known news sources.
type Popular struct {
	urls []string
}

func NewPopular() *Popular {
	return &Popular{urls: parseList(popularSources)}
}

func parseList(s string) []string {
	urls := []string{}
	scanner := bufio.NewScanner(strings.NewReader(s))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls
}

func (p *Popular) PopularURLs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]string, len(p.urls))
	copy(out, p.urls)
	return out, nil
}
