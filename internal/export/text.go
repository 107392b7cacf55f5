package export

import (
	"io"

	"github.com/prabalesh/uptop/internal/models"
)

// TextExporter writes the rendered report text verbatim, no framing.
type TextExporter struct{}

func (e *TextExporter) Export(report *models.Report, w io.Writer) error {
	_, err := io.WriteString(w, report.Text)
	return err
}

func (e *TextExporter) Extension() string {
	return "txt"
}
