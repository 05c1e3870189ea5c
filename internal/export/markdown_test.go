package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iksnae/wechat-image-archiver/internal"
)

func TestMarkdownExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	if err := (&MarkdownExporter{}).Export(testArchive(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	out := buf.String()

	want := []string{
		"# WeChat image archive",
		"**Root:** /photos",
		"**Images:** 3",
		"## Alice",
		"## wxid_123",
		"| 1 | 1.jpg | 2.0 KB | 2024-05-01 12:30:00 |",
		"| 3 | 2.jpg | 3.0 MB |",
		"| 2 | f3a9c0.png | 512 B |",
	}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q\n%s", w, out)
		}
	}

	if strings.Index(out, "## Alice") > strings.Index(out, "## wxid_123") {
		t.Error("folders should appear in order of first image")
	}
}

func TestMarkdownExporter_EscapesCells(t *testing.T) {
	archive := &Archive{Images: []internal.ImageRecord{
		{MessageID: 9, Folder: "a|b", Path: "/x/pipe|name.jpg"},
	}}

	var buf bytes.Buffer
	if err := (&MarkdownExporter{}).Export(archive, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.Contains(buf.String(), `## a\|b`) {
		t.Errorf("folder heading not escaped:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), `pipe\|name.jpg`) {
		t.Errorf("file cell not escaped:\n%s", buf.String())
	}
}

func TestHumanSize(t *testing.T) {
	tests := map[int64]string{
		0:       "0 B",
		1023:    "1023 B",
		1024:    "1.0 KB",
		1536:    "1.5 KB",
		1 << 20: "1.0 MB",
	}
	for in, want := range tests {
		if got := humanSize(in); got != want {
			t.Errorf("humanSize(%d) = %q, want %q", in, got, want)
		}
	}
}
