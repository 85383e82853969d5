package output

import (
	"encoding/json"
	"os"

	"github.com/law-makers/indexables/pkg/models"
)

// SaveJSON writes an indented JSON export of the report to filepath.
func SaveJSON(report *models.Report, filepath string) error {
	content, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, content, 0644)
}
