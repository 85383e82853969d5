package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/law-makers/indexables/internal/config"
	"github.com/law-makers/indexables/internal/domain"
	"github.com/law-makers/indexables/internal/engine/static"
	"github.com/law-makers/indexables/internal/reqctx"
)

// newTestApp points every request at server, whatever host the URL names.
// The httptest certificate is valid for example.com.
func newTestApp(t *testing.T, server *httptest.Server) *Application {
	t.Helper()

	a, err := New(context.Background(), &config.Config{
		LogLevel:    "error",
		HTTPTimeout: 5 * time.Second,
	}, Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	transport := server.Client().Transport.(*http.Transport).Clone()
	transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
		return (&net.Dialer{}).DialContext(ctx, network, server.Listener.Addr().String())
	}
	a.HTTPClient = &http.Client{Transport: transport, Timeout: 5 * time.Second}
	a.Fetcher = static.New(a.HTTPClient, "TestIndexer/1.0", nil)

	t.Cleanup(func() { _ = a.Close(context.Background()) })
	return a
}

func TestApplication_Index(t *testing.T) {
	var gotPath string
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html><body>
			<a href="/a">A</a>
			<a href="/a">A again</a>
			<a href="https://example.com/b">B</a>
			<a href="https://other.com/c">C</a>
		</body></html>`))
	}))
	defer server.Close()

	a := newTestApp(t, server)

	report, err := a.Index(context.Background(), "https://example.com/deep/path?x=1")
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}

	if gotPath != "" && gotPath != "/" {
		t.Errorf("Expected request to the origin root, got path %q", gotPath)
	}
	if report.Base != "https://example.com" || report.Host != "example.com" {
		t.Errorf("unexpected origin: base=%q host=%q", report.Base, report.Host)
	}

	got := append([]string(nil), report.Indexables...)
	sort.Strings(got)
	if len(got) != 2 || got[0] != "https://example.com/a" || got[1] != "https://example.com/b" {
		t.Errorf("unexpected indexables: %v", got)
	}
}

func TestApplication_Index_ErrorStatusPageIsClassified(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`<html><body><a href="/home">Home</a></body></html>`))
	}))
	defer server.Close()

	a := newTestApp(t, server)

	report, err := a.Index(context.Background(), "https://example.com")
	if err != nil {
		t.Fatalf("Expected links from the 404 page, got error: %v", err)
	}
	if len(report.Indexables) != 1 || report.Indexables[0] != "https://example.com/home" {
		t.Errorf("unexpected indexables: %v", report.Indexables)
	}
}

func TestApplication_Index_FetchError(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	a := newTestApp(t, server)
	server.Close()

	_, err := a.Index(context.Background(), "https://example.com")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !errors.Is(err, domain.ErrFetch) {
		t.Errorf("Expected fetch error, got %v", err)
	}

	var runErr *reqctx.RunError
	if !errors.As(err, &runErr) {
		t.Errorf("Expected run error wrapper, got %T", err)
	}
}

func TestApplication_Index_ParseError(t *testing.T) {
	a, err := New(context.Background(), &config.Config{HTTPTimeout: time.Second}, Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = a.Index(context.Background(), "blog.com/----/")
	if !errors.Is(err, domain.ErrParse) {
		t.Errorf("Expected parse error, got %v", err)
	}
}

func TestApplication_Uptime(t *testing.T) {
	a, err := New(context.Background(), &config.Config{HTTPTimeout: time.Second}, Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if up := a.Uptime(); up < 5*time.Millisecond {
		t.Errorf("Expected uptime of at least 5ms, got %v", up)
	}
	if err := a.Close(context.Background()); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestNew_RequiresConfig(t *testing.T) {
	if _, err := New(context.Background(), nil, Options{}); err == nil {
		t.Error("Expected error for nil config")
	}
}
