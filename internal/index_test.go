package internal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/iksnae/wechat-image-archiver/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestIndex(t *testing.T) *Index {
	t.Helper()
	ix, err := OpenIndex(filepath.Join(testutil.CreateTempDir(t), "state", "index.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = ix.Close() })
	return ix
}

func TestIndex_RecordAndHasMessage(t *testing.T) {
	ix := openTestIndex(t)

	has, err := ix.HasMessage(42)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, ix.RecordImage(ImageRecord{
		MessageID:  42,
		SenderKey:  "wxid_alice",
		Folder:     "Alice",
		Path:       "/photos/Alice/1.jpg",
		Size:       2048,
		ReceivedAt: time.Unix(1700000000, 0),
		StoredAt:   time.Unix(1700000005, 0),
	}))

	has, err = ix.HasMessage(42)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestIndex_LargeMessageID(t *testing.T) {
	ix := openTestIndex(t)
	id := uint64(1<<63 - 1)

	require.NoError(t, ix.RecordImage(ImageRecord{MessageID: id, SenderKey: "s", Folder: "s", Path: "p"}))

	images, err := ix.Images("")
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, id, images[0].MessageID)
}

func TestIndex_SenderFolderFirstWins(t *testing.T) {
	ix := openTestIndex(t)

	_, ok, err := ix.SenderFolder("wxid_bob")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, ix.RememberSenderFolder("wxid_bob", "Bob"))
	require.NoError(t, ix.RememberSenderFolder("wxid_bob", "Robert"))

	folder, ok, err := ix.SenderFolder("wxid_bob")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Bob", folder)
}

func TestIndex_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(testutil.CreateTempDir(t), "index.db")

	ix, err := OpenIndex(path)
	require.NoError(t, err)
	require.NoError(t, ix.RememberSenderFolder("wxid_carol", "Carol"))
	require.NoError(t, ix.RecordImage(ImageRecord{MessageID: 7, SenderKey: "wxid_carol", Folder: "Carol", Path: "p"}))
	require.NoError(t, ix.Close())

	ro, err := OpenIndexReadOnly(path)
	require.NoError(t, err)
	defer ro.Close()

	folder, ok, err := ro.SenderFolder("wxid_carol")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Carol", folder)

	has, err := ro.HasMessage(7)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestIndex_ReadOnlyMissing(t *testing.T) {
	_, err := OpenIndexReadOnly(filepath.Join(testutil.CreateTempDir(t), "missing.db"))
	assert.Error(t, err)
}

func TestIndex_Summaries(t *testing.T) {
	ix := openTestIndex(t)

	records := []ImageRecord{
		{MessageID: 1, SenderKey: "wxid_alice", Folder: "Alice", Path: "a1", Size: 100, StoredAt: time.Unix(100, 0)},
		{MessageID: 2, SenderKey: "wxid_alice", Folder: "Alice", Path: "a2", Size: 50, StoredAt: time.Unix(300, 0)},
		{MessageID: 3, SenderKey: "wxid_bob", Folder: "Bob", Path: "b1", Size: 10, StoredAt: time.Unix(200, 0)},
	}
	for _, r := range records {
		require.NoError(t, ix.RecordImage(r))
	}

	summaries, err := ix.Summaries()
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "wxid_alice", summaries[0].SenderKey)
	assert.Equal(t, 2, summaries[0].Images)
	assert.Equal(t, int64(150), summaries[0].TotalBytes)
	assert.Equal(t, time.Unix(300, 0), summaries[0].LastStored)

	assert.Equal(t, "wxid_bob", summaries[1].SenderKey)
	assert.Equal(t, 1, summaries[1].Images)
}

func TestIndex_ImagesFilter(t *testing.T) {
	ix := openTestIndex(t)
	require.NoError(t, ix.RecordImage(ImageRecord{MessageID: 1, SenderKey: "a", Folder: "A", Path: "1", StoredAt: time.Unix(2, 0)}))
	require.NoError(t, ix.RecordImage(ImageRecord{MessageID: 2, SenderKey: "b", Folder: "B", Path: "2", StoredAt: time.Unix(1, 0)}))
	require.NoError(t, ix.RecordImage(ImageRecord{MessageID: 3, SenderKey: "a", Folder: "A", Path: "3", StoredAt: time.Unix(3, 0)}))

	all, err := ix.Images("")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, uint64(2), all[0].MessageID)

	onlyA, err := ix.Images("a")
	require.NoError(t, err)
	require.Len(t, onlyA, 2)
	assert.Equal(t, uint64(1), onlyA[0].MessageID)
	assert.Equal(t, uint64(3), onlyA[1].MessageID)
}

func TestIndex_ImplementsFolderStore(t *testing.T) {
	ix := openTestIndex(t)
	root := testutil.CreateTempDir(t)

	r := NewDirectoryResolver(root, LayoutSender, ix)
	dir, err := r.Resolve("wxid_dave", "Dave")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "Dave"), dir)

	// A fresh resolver over the same index keeps the original folder
	r2 := NewDirectoryResolver(root, LayoutSender, ix)
	dir2, err := r2.Resolve("wxid_dave", "David")
	require.NoError(t, err)
	assert.Equal(t, dir, dir2)
}
