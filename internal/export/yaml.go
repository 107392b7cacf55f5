package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/prabalesh/uptop/internal/models"
)

type YAMLExporter struct{}

func (e *YAMLExporter) Export(report *models.Report, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(report)
}

func (e *YAMLExporter) Extension() string {
	return "yaml"
}
