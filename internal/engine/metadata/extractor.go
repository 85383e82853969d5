// internal/engine/metadata/extractor.go
package metadata

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/law-makers/indexables/internal/domain"
)

// Extractor collects anchor hrefs with goquery
type Extractor struct{}

var _ domain.Extractor = (*Extractor)(nil)

// NewExtractor creates a new Extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractHrefs parses document and returns the set of anchor href values.
// Values are kept verbatim, including empty ones and fragments.
func (e *Extractor) ExtractHrefs(document string) (domain.HrefSet, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return nil, err
	}
	return Hrefs(doc), nil
}

// Hrefs returns the href of every <a> in doc
func Hrefs(doc *goquery.Document) domain.HrefSet {
	links := domain.NewHrefSet()
	if doc == nil {
		return links
	}

	doc.Find("a[href]").Each(func(i int, sel *goquery.Selection) {
		if href, exists := sel.Attr("href"); exists {
			links.Add(href)
		}
	})

	return links
}
