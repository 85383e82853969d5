// internal/engine/static/fetcher.go
package static

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/law-makers/indexables/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/net/html/charset"
)

// Fetcher retrieves a page over plain HTTP and decodes its body to text.
// It uses the client's transport defaults for redirects and connection reuse.
type Fetcher struct {
	client    *http.Client
	userAgent string
	headers   http.Header
	progress  io.Writer
}

var _ domain.Fetcher = (*Fetcher)(nil)

// New creates a new Fetcher with dependency injection
func New(client *http.Client, ua string, headers http.Header) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{
		client:    client,
		userAgent: ua,
		headers:   headers,
	}
}

// WithProgress renders a download progress bar to w while the body is read
func (f *Fetcher) WithProgress(w io.Writer) *Fetcher {
	f.progress = w
	return f
}

// Name returns the name of this fetcher
func (f *Fetcher) Name() string {
	return "StaticFetcher"
}

// FetchText issues a GET for url and returns the body decoded as text.
// The charset is taken from the Content-Type header or the document's meta tags.
// Error statuses are not failures: the body of a 404 page is returned like any other.
func (f *Fetcher) FetchText(ctx context.Context, url string) (string, error) {
	start := time.Now()
	logger := log.Ctx(ctx)

	logger.Debug().
		Str("url", url).
		Str("fetcher", f.Name()).
		Msg("Starting fetch")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	// Custom headers win over the user agent
	for key, values := range f.headers {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		logger.Debug().
			Str("url", url).
			Int("status", resp.StatusCode).
			Msg("Error status, reading body anyway")
	}

	var body io.Reader = resp.Body
	if f.progress != nil {
		bar := progressbar.NewOptions64(resp.ContentLength,
			progressbar.OptionSetWriter(f.progress),
			progressbar.OptionSetDescription("fetching "+req.URL.Host),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
		)
		defer func() { _ = bar.Finish() }()
		body = io.TeeReader(resp.Body, bar)
	}

	decoded, err := charset.NewReader(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	text, err := io.ReadAll(decoded)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	logger.Debug().
		Str("url", url).
		Int("status", resp.StatusCode).
		Int64("response_time_ms", time.Since(start).Milliseconds()).
		Int("bytes", len(text)).
		Msg("Fetch completed")

	return string(text), nil
}
