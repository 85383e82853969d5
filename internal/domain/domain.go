// Package domain resolves a user-supplied domain to its origin and collects
// the same-domain links found on that origin's landing page.
package domain

import (
	"context"
	"errors"

	urlutil "github.com/law-makers/indexables/internal/utils/url"
	"github.com/rs/zerolog/log"
)

// Fetcher retrieves the body of a URL as text.
type Fetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// Extractor collects the href values of every anchor in a document.
type Extractor interface {
	ExtractHrefs(document string) (HrefSet, error)
}

// Domain is a single site to index.
type Domain struct {
	// Base is Scheme + host, never with a path, query or fragment.
	Base string
	// Host is the bare host without scheme.
	Host string
	// Indexables holds the classified links once ProcessLinks has run.
	Indexables []string
}

// New parses input and builds the Domain for its host.
func New(input string) (*Domain, error) {
	host, err := urlutil.ParseOrigin(input)
	if err != nil {
		if errors.Is(err, urlutil.ErrMissingHost) {
			return nil, NewError(ErrCodeInternal, "parsed URL has no host", err).
				WithDetail("input", input)
		}
		return nil, NewError(ErrCodeParse, "cannot parse domain", err).
			WithDetail("input", input)
	}

	return &Domain{
		Base:       urlutil.Scheme + host,
		Host:       host,
		Indexables: []string{},
	}, nil
}

// ProcessLinks fetches the domain's base page, extracts its hrefs and stores
// the ones that belong to the domain. On failure Indexables is left as it was.
func (d *Domain) ProcessLinks(ctx context.Context, fetcher Fetcher, extractor Extractor) error {
	target := urlutil.EnsureScheme(d.Base)

	log.Ctx(ctx).Debug().
		Str("host", d.Host).
		Str("url", target).
		Msg("Fetching domain page")

	text, err := fetcher.FetchText(ctx, target)
	if err != nil {
		return NewError(ErrCodeFetch, "failed to fetch domain page", err).
			WithDetail("url", target)
	}

	links, err := extractor.ExtractHrefs(text)
	if err != nil {
		return NewError(ErrCodeInternal, "failed to extract links", err).
			WithDetail("url", target)
	}

	d.Indexables = Classify(d.Base, links)

	log.Ctx(ctx).Debug().
		Str("host", d.Host).
		Int("hrefs", links.Len()).
		Int("indexables", len(d.Indexables)).
		Msg("Links classified")

	return nil
}
