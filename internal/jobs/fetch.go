package jobs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const maxFetchBody = 4 << 20 // 4MB

// Fetcher retrieves a job posting's text from a URL.
type Fetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// HTTPFetcher downloads a posting page and reduces it to readable text.
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher constructs an HTTPFetcher with the given timeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPFetcher{Client: &http.Client{Timeout: timeout}}
}

// FetchText GETs the URL and extracts the visible text from the page body.
func (f *HTTPFetcher) FetchText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("fetch job posting: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; resume-rewriter/1.0)")

	resp, err := f.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch job posting: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch job posting: unexpected status %d", resp.StatusCode)
	}

	body := io.LimitReader(resp.Body, maxFetchBody)
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return "", fmt.Errorf("fetch job posting: parse html: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, iframe").Remove()

	content := doc.Find("main, article, [role=main]")
	if content.Length() == 0 {
		content = doc.Find("body")
	}

	return cleanWhitespace(content.Text()), nil
}

var blankRunRE = regexp.MustCompile(`\n{3,}`)

func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.Join(strings.Fields(l), " ")
	}
	joined := strings.Join(lines, "\n")
	joined = blankRunRE.ReplaceAllString(joined, "\n\n")
	return strings.TrimSpace(joined)
}
