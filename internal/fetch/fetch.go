// Package fetch retrieves job postings over HTTP and reduces their HTML to
// plain text for the keyword matcher. The scoring engine never touches the
// network; only the --job-url convenience path goes through here.
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
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ATSScorer/1.0)"

// Error represents an error during URL fetching.
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

// JobDescription fetches the URL and returns the visible text of the job
// posting, with navigation, scripts, and other page chrome stripped.
func JobDescription(ctx context.Context, urlStr string) (string, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	client := &http.Client{Timeout: DefaultTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	text, err := ExtractText(string(body))
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to extract text", Cause: err}
	}
	return text, nil
}

// jobContentSelectors are tried in order before falling back to <body>.
var jobContentSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	".posting-content",
	".job-details",
	"main",
	"article",
	".content",
	"#content",
}

// ExtractText parses HTML and returns the cleaned main body text.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .ads, .sidebar, .cookie-banner, .popup").Remove()

	var content *goquery.Selection
	for _, selector := range jobContentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return cleanWhitespace(content.Text()), nil
}

// cleanWhitespace trims each line and drops blank ones.
func cleanWhitespace(text string) string {
	var cleaned []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
