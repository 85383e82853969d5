// Package app provides the core application initialization and lifecycle management.
package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/law-makers/indexables/internal/config"
	"github.com/law-makers/indexables/internal/domain"
	"github.com/law-makers/indexables/internal/engine/metadata"
	"github.com/law-makers/indexables/internal/engine/static"
	"github.com/law-makers/indexables/internal/reqctx"
	"github.com/law-makers/indexables/pkg/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Application holds the dependencies of an indexing run and manages their lifecycle.
//
// It is created once per CLI invocation. Use Close() to release idle connections.
type Application struct {
	Config     *config.Config
	Logger     *zerolog.Logger
	HTTPClient *http.Client
	Fetcher    *static.Fetcher
	Extractor  *metadata.Extractor
	startTime  time.Time
}

// Options tune a single Application beyond what Config carries
type Options struct {
	// Headers are sent with the page request
	Headers http.Header
	// ProgressWriter receives the download progress bar when Config.Progress is set
	ProgressWriter io.Writer
}

// New creates and initializes a new Application with all dependencies.
//
// It performs the following initialization steps:
//   - Configures logging based on the provided config
//   - Initializes the HTTP client with the configured timeout and proxy
//   - Creates the static fetcher and the goquery link extractor
func New(ctx context.Context, cfg *config.Config, opts Options) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logLevel := zerolog.ErrorLevel // default: suppress non-verbose info logs
	switch cfg.LogLevel {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	var logWriter io.Writer
	if cfg.JSONLog {
		logWriter = os.Stderr
	} else {
		logWriter = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	logger := log.Output(logWriter).With().Timestamp().Logger()
	log.Logger = logger

	logger.Debug().
		Str("level", cfg.LogLevel).
		Bool("json", cfg.JSONLog).
		Msg("Logger initialized")

	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
	}
	if proxyURL := cfg.ProxyURL(); proxyURL != nil {
		transport.Proxy = http.ProxyURL(proxyURL)
	} else {
		transport.Proxy = http.ProxyFromEnvironment
	}

	httpClient := &http.Client{
		Timeout:   cfg.HTTPTimeout,
		Transport: transport,
	}
	logger.Debug().
		Dur("timeout", cfg.HTTPTimeout).
		Str("proxy", cfg.Proxy).
		Msg("HTTP client initialized")

	fetcher := static.New(httpClient, cfg.UserAgent, opts.Headers)
	if cfg.Progress && opts.ProgressWriter != nil {
		fetcher.WithProgress(opts.ProgressWriter)
	}

	app := &Application{
		Config:     cfg,
		Logger:     &logger,
		HTTPClient: httpClient,
		Fetcher:    fetcher,
		Extractor:  metadata.NewExtractor(),
		startTime:  time.Now(),
	}

	logger.Info().Msg("Application initialized successfully")
	return app, nil
}

// Index resolves input to a domain, fetches its page and classifies the links on it.
// Errors are *domain.Error values tagged with the run id.
func (a *Application) Index(ctx context.Context, input string) (*models.Report, error) {
	ctx = reqctx.WithRun(ctx, input)
	logger := reqctx.Logger(ctx)

	d, err := domain.New(input)
	if err != nil {
		logger.Debug().Err(err).Str("input", input).Msg("Domain rejected")
		return nil, reqctx.NewRunError(ctx, err)
	}

	logger.Info().Str("base", d.Base).Str("host", d.Host).Msg("Indexing domain")

	start := time.Now()
	if err := d.ProcessLinks(ctx, a.Fetcher, a.Extractor); err != nil {
		logger.Debug().Err(err).Str("base", d.Base).Msg("Processing failed")
		return nil, reqctx.NewRunError(ctx, err)
	}

	report := &models.Report{
		Input:        input,
		Base:         d.Base,
		Host:         d.Host,
		Indexables:   d.Indexables,
		FetchedAt:    time.Now(),
		ResponseTime: time.Since(start).Milliseconds(),
	}

	logger.Info().
		Int("indexables", report.Count()).
		Int64("response_time_ms", report.ResponseTime).
		Msg("Domain indexed")

	return report, nil
}

// Close releases the application's resources.
// A context with a timeout should be provided to prevent indefinite blocking.
func (a *Application) Close(ctx context.Context) error {
	if a.HTTPClient != nil {
		a.HTTPClient.CloseIdleConnections()
	}

	a.Logger.Info().Dur("uptime", a.Uptime()).Msg("Application shutdown complete")
	return nil
}

// Uptime returns how long the application has been running.
func (a *Application) Uptime() time.Duration {
	return time.Since(a.startTime)
}
