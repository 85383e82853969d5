package output

import (
	"path/filepath"
	"strings"

	"github.com/law-makers/indexables/pkg/models"
)

// Save writes the report in the format implied by the file extension.
// Unknown extensions fall back to JSON.
func Save(report *models.Report, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return SaveCSV(report, path)
	case ".md", ".markdown":
		return SaveMarkdown(report, path)
	case ".html", ".htm":
		return SaveHTML(report, path)
	case ".txt":
		return SaveText(report, path)
	default:
		return SaveJSON(report, path)
	}
}
