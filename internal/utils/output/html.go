package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/law-makers/indexables/pkg/models"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML builds a standalone HTML page listing the report's indexables.
func RenderHTML(report *models.Report) (string, error) {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	doc.AppendChild(root)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	title := element(atom.Title)
	title.AppendChild(text("Indexables for " + report.Host))
	head.AppendChild(title)
	root.AppendChild(head)

	body := element(atom.Body)
	h1 := element(atom.H1)
	h1.AppendChild(text(report.Host))
	body.AppendChild(h1)

	summary := element(atom.P)
	summary.AppendChild(text(fmt.Sprintf("%d indexable links found on %s", report.Count(), report.Base)))
	body.AppendChild(summary)

	list := element(atom.Ul)
	for _, link := range report.Indexables {
		li := element(atom.Li)
		a := element(atom.A, html.Attribute{Key: "href", Val: link})
		a.AppendChild(text(link))
		li.AppendChild(a)
		list.AppendChild(li)
	}
	body.AppendChild(list)
	root.AppendChild(body)

	var sb strings.Builder
	if err := html.Render(&sb, doc); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// SaveHTML writes the HTML report to filepath
func SaveHTML(report *models.Report, filepath string) error {
	content, err := RenderHTML(report)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, []byte(content), 0644)
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
