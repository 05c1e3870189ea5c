package export

import (
	"fmt"
	"testing"
	"time"

	"github.com/iksnae/wechat-image-archiver/internal"
)

func testArchive() *Archive {
	stored := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	return &Archive{
		Root:        "/photos",
		GeneratedAt: stored.Add(time.Hour),
		Images: []internal.ImageRecord{
			{MessageID: 1, SenderKey: "wxid_alice", Folder: "Alice", Path: "/photos/Alice/1.jpg", Size: 2048, MD5: "abc", StoredAt: stored},
			{MessageID: 2, SenderKey: "wxid_123", Folder: "wxid_123", Path: "/photos/wxid_123/f3a9c0.png", Size: 512, StoredAt: stored.Add(time.Minute)},
			{MessageID: 3, SenderKey: "wxid_alice", Folder: "Alice", Path: "/photos/Alice/2.jpg", Size: 3 << 20, StoredAt: stored.Add(2 * time.Minute)},
		},
	}
}

func TestNewExporter(t *testing.T) {
	tests := []struct {
		format   string
		wantType string
		wantExt  string
		wantErr  bool
	}{
		{"jsonl", "*export.JSONLExporter", "jsonl", false},
		{"md", "*export.MarkdownExporter", "md", false},
		{"markdown", "*export.MarkdownExporter", "md", false},
		{"yaml", "*export.YAMLExporter", "yaml", false},
		{"json", "*export.JSONExporter", "json", false},
		{"xml", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			exporter, err := NewExporter(tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewExporter(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if tt.wantErr {
				if exporter != nil {
					t.Errorf("NewExporter(%q) returned %T, want nil", tt.format, exporter)
				}
				return
			}
			if got := fmt.Sprintf("%T", exporter); got != tt.wantType {
				t.Errorf("NewExporter(%q) type = %s, want %s", tt.format, got, tt.wantType)
			}
			if got := exporter.Extension(); got != tt.wantExt {
				t.Errorf("Extension() = %q, want %q", got, tt.wantExt)
			}
		})
	}
}
