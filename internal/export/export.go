package export

import (
	"fmt"
	"io"
	"os"

	"github.com/prabalesh/uptop/internal/models"
)

// Exporter writes a finished report in one format.
type Exporter interface {
	Export(report *models.Report, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "", "text", "txt":
		return &TextExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: text, json, yaml)", format)
	}
}

// WriteFile exports report to path, replacing any existing file.
func WriteFile(path string, exporter Exporter, report *models.Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err := exporter.Export(report, f); err != nil {
		return fmt.Errorf("exporting %s to %s: %w", exporter.Extension(), path, err)
	}
	return nil
}
