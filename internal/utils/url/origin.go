package urlutil

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Scheme is prepended to every origin built from user input.
const Scheme = "https://"

var (
	// ErrRelativeURL is returned for input with no scheme, e.g. "blog.com/path".
	ErrRelativeURL = errors.New("relative URL without a base")
	// ErrEmptyHost is returned for special schemes whose authority is empty, e.g. "http:///".
	ErrEmptyHost = errors.New("empty host")
	// ErrMissingHost marks a URL that parsed but carries no host, such as
	// "mailto:x", "localhost:8080" or "file:///tmp".
	// Callers treat it as an internal failure rather than an input error.
	ErrMissingHost = errors.New("parsed URL has no host")
)

// specialSchemes always have an authority, however many slashes follow the colon.
var specialSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
	"ftp":   true,
}

// ParseOrigin parses raw as an absolute URL and returns its host.
// The port, path, query and fragment are discarded and the host is lower-cased.
func ParseOrigin(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	if parsed.Scheme == "" {
		return "", fmt.Errorf("invalid URL %q: %w", raw, ErrRelativeURL)
	}

	if specialSchemes[parsed.Scheme] {
		// "https:blog.com" and "http:///blog.com" both name host blog.com
		_, rest, _ := strings.Cut(trimmed, ":")
		rest = strings.TrimLeft(rest, `/\`)
		parsed, err = url.Parse(parsed.Scheme + "://" + rest)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		if specialSchemes[parsed.Scheme] {
			return "", fmt.Errorf("invalid URL %q: %w", raw, ErrEmptyHost)
		}
		return "", fmt.Errorf("%q: %w", raw, ErrMissingHost)
	}

	// Hostname strips the brackets from IPv6 literals
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}

	return host, nil
}

// EnsureScheme prefixes origin with Scheme unless it already contains it.
func EnsureScheme(origin string) string {
	if strings.Contains(origin, Scheme) {
		return origin
	}
	return Scheme + origin
}
