package export

import (
	"fmt"
	"io"
	"time"

	"github.com/iksnae/wechat-image-archiver/internal"
)

// Archive is the exported view of an archive index
type Archive struct {
	Root        string                 `json:"root" yaml:"root"`
	GeneratedAt time.Time              `json:"generated_at" yaml:"generated_at"`
	Images      []internal.ImageRecord `json:"images" yaml:"images"`
}

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(archive *Archive, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "jsonl":
		return &JSONLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: jsonl, md, yaml, json)", format)
	}
}
