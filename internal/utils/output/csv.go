package output

import (
	"encoding/csv"
	"os"

	"github.com/law-makers/indexables/pkg/models"
)

// SaveCSV writes one row per indexable to a CSV file. Returns an error on failure.
func SaveCSV(report *models.Report, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write([]string{"host", "base", "indexable"}); err != nil {
		return err
	}
	for _, link := range report.Indexables {
		if err := writer.Write([]string{report.Host, report.Base, link}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
