// Package fetch retrieves job postings from URLs and converts the HTML
// to plain text for keyword extraction.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/DavidVeksler/ResumeForge/internal/ingestion"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies fetches made by this service.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeForge/1.0)"

// Result holds the raw and processed content of a fetched posting.
type Result struct {
	URL        string
	HTML       string
	Text       string
	StatusCode int
}

// Error represents a failure fetching or processing a posting URL.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures fetch behavior.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	UseBrowser bool // render script-heavy pages with a headless browser
}

// DefaultOptions returns sensible fetch defaults.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// JobPosting fetches a job posting URL and returns its extracted text.
// With UseBrowser set, the page is rendered in headless Chrome first,
// which handles postings served as client-side applications.
func JobPosting(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	var htmlContent string
	statusCode := http.StatusOK
	if opts.UseBrowser {
		htmlContent, err = renderWithBrowser(ctx, urlStr, opts.Timeout)
		if err != nil {
			return nil, &Error{URL: urlStr, Message: "browser rendering failed", Cause: err}
		}
	} else {
		htmlContent, statusCode, err = fetchHTML(ctx, urlStr, opts)
		if err != nil {
			return nil, err
		}
	}

	text, err := HTMLToText(htmlContent)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to extract text", Cause: err}
	}

	return &Result{
		URL:        urlStr,
		HTML:       htmlContent,
		Text:       text,
		StatusCode: statusCode,
	}, nil
}

func fetchHTML(ctx context.Context, urlStr string, opts *Options) (string, int, error) {
	client := &http.Client{Timeout: opts.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", 0, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", 0, &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", resp.StatusCode, &Error{
			URL:     urlStr,
			Message: fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	return string(body), resp.StatusCode, nil
}

// HTMLToText strips navigation, scripts, and styles from an HTML
// document and returns its cleaned visible text.
func HTMLToText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, header, footer").Remove()

	var parts []string
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, td, div").Each(func(_ int, sel *goquery.Selection) {
		// Only leaf-ish nodes; containers repeat their children's text.
		if sel.Children().Filter("div, p, ul, ol, table").Length() > 0 {
			return
		}
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			parts = append(parts, text)
		}
	})

	if len(parts) == 0 {
		return ingestion.CleanText(doc.Text()), nil
	}
	return ingestion.CleanText(strings.Join(parts, "\n")), nil
}
