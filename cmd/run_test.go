package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iksnae/wechat-image-archiver/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommand_ArchivesUntilCancelled(t *testing.T) {
	env := newTestEnv(t)
	h := internal.NewFakeHandle("wxid_self")
	h.Names["wxid_alice"] = "Alice"
	h.Messages = []internal.InboundMessage{
		internal.CreateTestImageMessage(1, "wxid_alice", ""),
		internal.CreateTestImageMessage(2, "wxid_alice", ""),
	}
	useFakeDialer(t, &internal.FakeDialer{Handles: []*internal.FakeHandle{h}})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	h.OnEmpty = cancel

	_, err := executeCommand(t, ctx, "run", "--config", env.configPath)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(env.root, "Alice", "1.jpg"))
	assert.FileExists(t, filepath.Join(env.root, "Alice", "2.jpg"))
	assert.True(t, h.Closed)

	out, err := executeCommand(t, context.Background(), "list", "--config", env.configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "wxid_alice")
	assert.Contains(t, out, "2 image(s) from 1 sender(s)")
}

func TestRunCommand_ConnectFailureExitsWithError(t *testing.T) {
	env := newTestEnv(t)
	useFakeDialer(t, &internal.FakeDialer{Failures: 100})

	_, err := executeCommand(t, context.Background(), "run", "--config", env.configPath)

	var connErr *internal.ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, 2, connErr.Attempts)

	data, readErr := os.ReadFile(env.diagLog)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "connection refused")
}

func TestRunCommand_InvalidConfig(t *testing.T) {
	env := newTestEnv(t)
	useFakeDialer(t, &internal.FakeDialer{})

	_, err := executeCommand(t, context.Background(), "run", "--config", env.configPath, "--layout", "by-month")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")

	data, readErr := os.ReadFile(env.diagLog)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "invalid configuration")
}

func TestRunCommand_ConsecutiveRunsIndependent(t *testing.T) {
	env := newTestEnv(t)
	h := internal.NewFakeHandle("wxid_self")
	h.Messages = []internal.InboundMessage{internal.CreateTestImageMessage(1, "wxid_alice", "")}
	useFakeDialer(t, &internal.FakeDialer{Handles: []*internal.FakeHandle{h}})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	h.OnEmpty = cancel
	_, err := executeCommand(t, ctx, "run", "--config", env.configPath)
	require.NoError(t, err)

	// the first run ended by cancellation; the second must not inherit it
	dialer := &internal.FakeDialer{Failures: 100}
	useFakeDialer(t, dialer)
	_, err = executeCommand(t, context.Background(), "run", "--config", env.configPath)

	var connErr *internal.ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, 2, dialer.Dials)
}

func TestRunCommand_UnwritableRoot(t *testing.T) {
	env := newTestEnv(t)
	// a regular file where the root directory should be
	blocker := filepath.Join(filepath.Dir(env.root), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	dialer := &internal.FakeDialer{}
	useFakeDialer(t, dialer)

	_, err := executeCommand(t, context.Background(), "run", "--config", env.configPath, "--root", filepath.Join(blocker, "photos"))

	var dirErr *internal.DirectoryError
	require.ErrorAs(t, err, &dirErr)
	assert.Zero(t, dialer.Dials, "must not connect when the root is unusable")
}

func TestRunCommand_SenderFolderKeptAcrossRuns(t *testing.T) {
	env := newTestEnv(t)
	archive := func(id uint64, name string) {
		h := internal.NewFakeHandle("wxid_self")
		h.Names["wxid_alice"] = name
		h.Messages = []internal.InboundMessage{internal.CreateTestImageMessage(id, "wxid_alice", "")}
		useFakeDialer(t, &internal.FakeDialer{Handles: []*internal.FakeHandle{h}})

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		h.OnEmpty = cancel
		_, err := executeCommand(t, ctx, "run", "--config", env.configPath)
		require.NoError(t, err)
	}

	archive(1, "Alice")
	archive(2, "Alicia")

	assert.FileExists(t, filepath.Join(env.root, "Alice", "1.jpg"))
	assert.FileExists(t, filepath.Join(env.root, "Alice", "2.jpg"))
	assert.NoDirExists(t, filepath.Join(env.root, "Alicia"))
}
