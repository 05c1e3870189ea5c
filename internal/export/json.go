package export

import (
	"encoding/json"
	"io"
)

// JSONExporter exports the archive as one pretty-printed document
type JSONExporter struct{}

// Export exports an archive to JSON format
func (e *JSONExporter) Export(archive *Archive, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(archive)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
