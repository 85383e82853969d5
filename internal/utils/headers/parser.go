package headers

import (
	"net/http"
	"strings"
)

// ParseHeaders converts "Key: Value" strings into an http.Header.
// Repeated keys accumulate values; entries without a colon or key are skipped.
func ParseHeaders(h []string) http.Header {
	out := make(http.Header)
	for _, hdr := range h {
		key, value, ok := strings.Cut(hdr, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		out.Add(key, strings.TrimSpace(value))
	}
	return out
}
