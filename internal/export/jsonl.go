package export

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONLExporter exports one image record per line
type JSONLExporter struct{}

// Export exports an archive to JSONL format
func (e *JSONLExporter) Export(archive *Archive, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, img := range archive.Images {
		if err := enc.Encode(img); err != nil {
			return fmt.Errorf("failed to encode image %d: %w", img.MessageID, err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
