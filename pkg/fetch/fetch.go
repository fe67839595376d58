// Package fetch retrieves a job posting from a URL and reduces the page
// to plain text suitable for summarization.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/xrsl/applykit/pkg/errs"
)

const userAgent = "applykit/1.0"

// maxBodySize caps how much of a job page we read. Postings are text;
// anything past this is tracking payloads and embedded assets.
const maxBodySize = 4 << 20

// Fetcher downloads job postings over HTTP.
type Fetcher struct {
	client *http.Client
}

// New returns a Fetcher with a 30 second request timeout.
func New() *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: 30 * time.Second}}
}

// JobText fetches url and returns the page text with scripts, styles,
// and chrome stripped.
func (f *Fetcher) JobText(ctx context.Context, url string) (string, error) {
	if strings.TrimSpace(url) == "" {
		return "", errs.Validation("job_url", "is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", errs.Validation("job_url", fmt.Sprintf("invalid URL: %v", err))
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &errs.IOError{Path: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &errs.IOError{Path: url, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", &errs.IOError{Path: url, Err: err}
	}

	text, err := CleanHTML(string(body))
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", errs.Validation("job_url", "page contains no text")
	}
	return text, nil
}

// CleanHTML strips markup and collapses whitespace to one line per
// block of text.
func CleanHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, nav, footer, header, noscript").Remove()

	lines := strings.Split(doc.Text(), "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n"), nil
}
