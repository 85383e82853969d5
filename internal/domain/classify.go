package domain

import "strings"

// Classify keeps the links that belong to base.
//
// A root-relative link ("/path") is prefixed with base. Separately, any link
// that contains base as a substring is kept verbatim. Both rules run on every
// link, so a link matching both appears twice in the result. The substring
// test is not anchored to host boundaries.
func Classify(base string, links HrefSet) []string {
	indexables := make([]string, 0, len(links))
	for _, link := range links.Slice() {
		if strings.HasPrefix(link, "/") {
			indexables = append(indexables, base+link)
		}
		if strings.Contains(link, base) {
			indexables = append(indexables, link)
		}
	}
	return indexables
}
