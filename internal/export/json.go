package export

import (
	"encoding/json"
	"io"

	"github.com/prabalesh/uptop/internal/models"
)

// JSONExporter exports reports in JSON format (pretty-printed)
type JSONExporter struct{}

func (e *JSONExporter) Export(report *models.Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(report)
}

func (e *JSONExporter) Extension() string {
	return "json"
}
