package browser

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/chromedp/chromedp"

	"newsmonitor/internal/domain"
)

// Fetcher renders pages in headless Chrome so that script-built
// homepages expose their links.
type Fetcher struct {
	execPath string
	timeout  time.Duration
	logf     func(string, ...interface{})
}

func NewFetcher(execPath string, timeout time.Duration, logf func(string, ...interface{})) *Fetcher {
	if execPath == "" {
		execPath = findFirstExecutable("brave", "brave-browser", "chromium-browser", "chromium", "google-chrome")
	}
	return &Fetcher{execPath: execPath, timeout: timeout, logf: logf}
}

func findFirstExecutable(executables ...string) string {
	for _, executable := range executables {
		path, err := exec.LookPath(executable)
		if err == nil {
			return path
		}
	}
	return ""
}

func (f *Fetcher) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts, chromedp.Flag("headless", true))
	if f.execPath != "" {
		opts = append(opts, chromedp.ExecPath(f.execPath))
	}
	return opts
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*domain.Page, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, f.allocatorOptions()...)
	defer cancel()

	var ctxOpts []chromedp.ContextOption
	if f.logf != nil {
		ctxOpts = append(ctxOpts, chromedp.WithLogf(f.logf))
	}
	taskCtx, cancel := chromedp.NewContext(allocCtx, ctxOpts...)
	defer cancel()

	var htmlBody, finalURL string
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Location(&finalURL),
		chromedp.OuterHTML("html", &htmlBody, chromedp.ByQuery),
	)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: rendering %s: %v", domain.ErrTimeout, url, err)
		}
		return nil, fmt.Errorf("%w: chromedp failed to render %s: %v", domain.ErrNetwork, url, err)
	}

	if htmlBody == "" {
		return nil, fmt.Errorf("%w: rendered page %s is empty", domain.ErrParse, url)
	}
	if finalURL == "" {
		finalURL = url
	}

	return &domain.Page{URL: finalURL, StatusCode: 200, HTML: htmlBody}, nil
}
