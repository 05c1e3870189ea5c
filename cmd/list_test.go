package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/iksnae/wechat-image-archiver/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedIndex records images in the index of env's archive root
func seedIndex(t *testing.T, env testEnv, records ...internal.ImageRecord) {
	t.Helper()
	ix, err := internal.OpenIndex(filepath.Join(env.root, ".wximg-index.db"))
	require.NoError(t, err)
	defer ix.Close()
	for _, rec := range records {
		require.NoError(t, ix.RecordImage(rec))
	}
}

func sampleRecords(root string) []internal.ImageRecord {
	return []internal.ImageRecord{
		{MessageID: 1, SenderKey: "wxid_alice", Folder: "Alice", Path: filepath.Join(root, "Alice", "1.jpg"), Size: 2048, StoredAt: time.Unix(1700000000, 0)},
		{MessageID: 2, SenderKey: "wxid_alice", Folder: "Alice", Path: filepath.Join(root, "Alice", "2.jpg"), Size: 1024, StoredAt: time.Unix(1700000100, 0)},
		{MessageID: 3, SenderKey: "wxid_bob", Folder: "Bob", Path: filepath.Join(root, "Bob", "1.png"), Size: 10, StoredAt: time.Unix(1700000050, 0)},
	}
}

func TestListCommand(t *testing.T) {
	env := newTestEnv(t)
	seedIndex(t, env, sampleRecords(env.root)...)

	out, err := executeCommand(t, context.Background(), "list", "--config", env.configPath)

	require.NoError(t, err)
	assert.Contains(t, out, "3 image(s) from 2 sender(s)")
	assert.Contains(t, out, "wxid_alice")
	assert.Contains(t, out, "3.0 KiB")
	assert.Contains(t, out, "10 B")
	assert.Less(t, bytes.Index([]byte(out), []byte("wxid_alice")), bytes.Index([]byte(out), []byte("wxid_bob")),
		"most recently active sender comes first")
}

func TestListCommand_NoIndex(t *testing.T) {
	env := newTestEnv(t)

	_, err := executeCommand(t, context.Background(), "list", "--config", env.configPath)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no archive index")
}

func TestListCommand_EmptyIndex(t *testing.T) {
	env := newTestEnv(t)
	seedIndex(t, env)

	out, err := executeCommand(t, context.Background(), "list", "--config", env.configPath)

	require.NoError(t, err)
	assert.Contains(t, out, "No images archived yet")
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatSize(tt.in))
	}
}
