package export

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLExporter exports the archive in YAML format
type YAMLExporter struct{}

// Export exports an archive to YAML format
func (e *YAMLExporter) Export(archive *Archive, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(archive)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
