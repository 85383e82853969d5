package output

import (
	"io"
	"os"
	"strings"

	"github.com/law-makers/indexables/pkg/models"
)

// WriteText writes the indexables one per line
func WriteText(w io.Writer, report *models.Report) error {
	if len(report.Indexables) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(report.Indexables, "\n")+"\n")
	return err
}

// SaveText writes the plain list of indexables to filepath
func SaveText(report *models.Report, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteText(file, report)
}
