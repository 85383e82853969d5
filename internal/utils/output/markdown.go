package output

import (
	"os"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/law-makers/indexables/pkg/models"
)

// RenderMarkdown converts the HTML report into GitHub flavored Markdown
func RenderMarkdown(report *models.Report) (string, error) {
	page, err := RenderHTML(report)
	if err != nil {
		return "", err
	}

	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())

	return converter.ConvertString(page)
}

// SaveMarkdown writes the Markdown report to filepath
func SaveMarkdown(report *models.Report, filepath string) error {
	mdStr, err := RenderMarkdown(report)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, []byte(mdStr), 0644)
}
