package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"newsmonitor/internal/domain"
)

const (
	userAgent   = "Mozilla/5.0 (compatible; NewsMonitor/1.0)"
	maxBodySize = 10 << 20
)

func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &http.Client{
		Timeout: timeout,
	}
}

// Fetcher downloads pages over plain HTTP.
type Fetcher struct {
	client *http.Client
}

func NewFetcher(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*domain.Page, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidURL, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, classify(rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %d", domain.ErrHTTPStatus, rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, classify(rawURL, err)
	}

	return &domain.Page{
		URL:        resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}

func classify(rawURL string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: fetching %s: %v", domain.ErrTimeout, rawURL, err)
	}
	return fmt.Errorf("%w: fetching %s: %v", domain.ErrNetwork, rawURL, err)
}
