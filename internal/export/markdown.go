package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/iksnae/wechat-image-archiver/internal"
)

// MarkdownExporter exports the archive as one table per sender folder
type MarkdownExporter struct{}

// Export exports an archive to Markdown format
func (e *MarkdownExporter) Export(archive *Archive, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# WeChat image archive\n\n")
	if archive.Root != "" {
		_, _ = fmt.Fprintf(w, "**Root:** %s  \n", archive.Root)
	}
	if !archive.GeneratedAt.IsZero() {
		_, _ = fmt.Fprintf(w, "**Generated:** %s  \n", archive.GeneratedAt.Format("2006-01-02 15:04:05"))
	}
	_, _ = fmt.Fprintf(w, "**Images:** %d\n", len(archive.Images))

	folders, groups := groupByFolder(archive.Images)
	for _, folder := range folders {
		images := groups[folder]
		_, _ = fmt.Fprintf(w, "\n## %s\n\n", escapeCell(folder))
		_, _ = fmt.Fprintf(w, "| Message | File | Size | Stored |\n")
		_, _ = fmt.Fprintf(w, "|---|---|---:|---|\n")
		for _, img := range images {
			_, _ = fmt.Fprintf(w, "| %d | %s | %s | %s |\n",
				img.MessageID,
				escapeCell(filepath.Base(img.Path)),
				humanSize(img.Size),
				img.StoredAt.Format("2006-01-02 15:04:05"),
			)
		}
	}

	return nil
}

// groupByFolder keeps folders in order of first appearance
func groupByFolder(images []internal.ImageRecord) ([]string, map[string][]internal.ImageRecord) {
	var order []string
	groups := make(map[string][]internal.ImageRecord)
	for _, img := range images {
		if _, ok := groups[img.Folder]; !ok {
			order = append(order, img.Folder)
		}
		groups[img.Folder] = append(groups[img.Folder], img)
	}
	return order, groups
}

// escapeCell keeps table cells on one line and their pipes literal
func escapeCell(text string) string {
	text = strings.ReplaceAll(text, "|", "\\|")
	text = strings.ReplaceAll(text, "\n", " ")
	return text
}

func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
