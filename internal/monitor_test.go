package internal

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/iksnae/wechat-image-archiver/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type monitorFixture struct {
	root    string
	scratch string
	dialer  *FakeDialer
	diag    *bytes.Buffer
	index   *Index
	monitor *Monitor
}

func newMonitorFixture(t *testing.T, cfg MonitorConfig, handles ...*FakeHandle) *monitorFixture {
	t.Helper()
	f := &monitorFixture{
		root:    testutil.CreateTempDir(t),
		scratch: testutil.CreateTempDir(t),
		dialer:  &FakeDialer{Handles: handles},
		diag:    &bytes.Buffer{},
	}

	ix, err := OpenIndex(filepath.Join(testutil.CreateTempDir(t), "index.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = ix.Close() })
	f.index = ix

	diag := NewDiagnosticLog(f.diag)
	conn := NewConnectionManager(f.dialer, RetryPolicy{Attempts: 5, Delay: 3 * time.Second}, NoSleep)
	conn.SetDiagnosticLog(diag)

	f.monitor = NewMonitor(MonitorDeps{
		Connection: conn,
		Resolver:   NewDirectoryResolver(f.root, LayoutSender, ix),
		Persister:  NewImagePersister(f.scratch, RetryPolicy{Attempts: 5, Delay: 2 * time.Second}, NoSleep),
		Index:      ix,
		Diag:       diag,
		Sleep:      NoSleep,
	}, cfg)
	return f
}

// runUntilDrained runs the monitor until every scripted message was read
func runUntilDrained(t *testing.T, f *monitorFixture, h *FakeHandle) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	h.OnEmpty = cancel
	return f.monitor.Run(ctx)
}

func defaultMonitorConfig() MonitorConfig {
	return MonitorConfig{PollInterval: 100 * time.Millisecond, MaxReceiveFailures: 3, Reconnect: true}
}

func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestMonitor_TwoImagesFromAlice(t *testing.T) {
	h := NewFakeHandle("wxid_self")
	h.Names["wxid_alice"] = "Alice"
	h.Messages = []InboundMessage{
		CreateTestImageMessage(1, "wxid_alice", ""),
		CreateTestImageMessage(2, "wxid_alice", ""),
	}
	f := newMonitorFixture(t, defaultMonitorConfig(), h)

	require.NoError(t, runUntilDrained(t, f, h))

	assert.ElementsMatch(t, []string{"1.jpg", "2.jpg"}, listFiles(t, filepath.Join(f.root, "Alice")))
	stats := f.monitor.Stats()
	assert.Equal(t, uint64(2), stats.Stored)
	assert.Equal(t, "shutdown", stats.State)
	assert.True(t, h.Enabled)
	assert.True(t, h.Closed)
	assert.Empty(t, listFiles(t, f.scratch))
}

func TestMonitor_LookupFailureFallsBackToSenderID(t *testing.T) {
	h := NewFakeHandle("wxid_self")
	h.NameErr = errors.New("contact service unavailable")
	h.Messages = []InboundMessage{CreateTestImageMessage(10, "wxid_123", "abc.dat")}
	f := newMonitorFixture(t, defaultMonitorConfig(), h)

	require.NoError(t, runUntilDrained(t, f, h))

	assert.FileExists(t, filepath.Join(f.root, "wxid_123", "abc.jpg"))
	assert.Equal(t, uint64(1), f.monitor.Stats().Stored)
}

func TestMonitor_NonImageMessagesIgnored(t *testing.T) {
	h := NewFakeHandle("wxid_self")
	h.Names["wxid_bob"] = "Bob"
	h.Messages = []InboundMessage{
		{ID: 1, Type: MessageTypeText, Sender: "wxid_bob", Content: "hi"},
		{ID: 2, Type: MessageTypeVoice, Sender: "wxid_bob", Extra: "voice.silk"},
		{ID: 3, Type: MessageTypeVideo, Sender: "wxid_bob", Extra: "clip.mp4"},
	}
	f := newMonitorFixture(t, defaultMonitorConfig(), h)

	require.NoError(t, runUntilDrained(t, f, h))

	assert.Zero(t, h.DownloadCalls)
	assert.Zero(t, h.DecryptCalls)
	assert.Empty(t, listFiles(t, f.root))
	stats := f.monitor.Stats()
	assert.Equal(t, uint64(3), stats.Received)
	assert.Zero(t, stats.Images)
}

func TestMonitor_ConnectFailsTwiceThenSucceeds(t *testing.T) {
	h := NewFakeHandle("wxid_self")
	f := newMonitorFixture(t, defaultMonitorConfig(), h)
	f.dialer.Failures = 2
	rec := &sleepRecorder{}
	conn := NewConnectionManager(f.dialer, RetryPolicy{Attempts: 5, Delay: 3 * time.Second}, rec.Sleep)
	conn.SetDiagnosticLog(f.monitor.diag)
	f.monitor.conn = conn

	require.NoError(t, runUntilDrained(t, f, h))

	assert.Equal(t, 3, f.dialer.Dials)
	assert.Len(t, rec.calls, 2)
	assert.Equal(t, 2, strings.Count(f.diag.String(), diagSeparator))
}

func TestMonitor_ConnectExhausted(t *testing.T) {
	f := newMonitorFixture(t, defaultMonitorConfig())
	f.dialer.Failures = 100

	err := f.monitor.Run(context.Background())

	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, StateShutdown, f.monitor.State())
	assert.Contains(t, f.diag.String(), "connection error after 5 attempt(s)")
}

func TestMonitor_PersistFailureDoesNotStopLoop(t *testing.T) {
	h := NewFakeHandle("wxid_self")
	h.Names["wxid_alice"] = "Alice"
	h.DownloadFailures = 5
	h.Messages = []InboundMessage{
		CreateTestImageMessage(1, "wxid_alice", "first.dat"),
		CreateTestImageMessage(2, "wxid_alice", "second.dat"),
	}
	f := newMonitorFixture(t, defaultMonitorConfig(), h)

	require.NoError(t, runUntilDrained(t, f, h))

	stats := f.monitor.Stats()
	assert.Equal(t, uint64(1), stats.Failed)
	assert.Equal(t, uint64(1), stats.Stored)
	assert.Equal(t, []string{"second.jpg"}, listFiles(t, filepath.Join(f.root, "Alice")))
	assert.Contains(t, f.diag.String(), "persist error [msg 1]")
}

func TestMonitor_PanicIsContained(t *testing.T) {
	h := NewFakeHandle("wxid_self")
	h.Names["wxid_alice"] = "Alice"
	panicked := false
	h.OnDownload = func() {
		if !panicked {
			panicked = true
			panic("sdk exploded")
		}
	}
	h.Messages = []InboundMessage{
		CreateTestImageMessage(1, "wxid_alice", "a.dat"),
		CreateTestImageMessage(2, "wxid_alice", "b.dat"),
	}
	f := newMonitorFixture(t, defaultMonitorConfig(), h)

	require.NoError(t, runUntilDrained(t, f, h))

	stats := f.monitor.Stats()
	assert.Equal(t, uint64(1), stats.Failed)
	assert.Equal(t, uint64(1), stats.Stored)
	assert.Contains(t, f.diag.String(), "panic: sdk exploded")
	assert.Contains(t, f.diag.String(), "goroutine")
	assert.Empty(t, listFiles(t, f.scratch), "staging must be cleaned up after a panic")
}

func TestMonitor_DuplicateSkipped(t *testing.T) {
	h := NewFakeHandle("wxid_self")
	h.Names["wxid_alice"] = "Alice"
	h.Messages = []InboundMessage{
		CreateTestImageMessage(7, "wxid_alice", "x.dat"),
		CreateTestImageMessage(7, "wxid_alice", "x.dat"),
	}
	f := newMonitorFixture(t, defaultMonitorConfig(), h)

	require.NoError(t, runUntilDrained(t, f, h))

	assert.Equal(t, []string{"x.jpg"}, listFiles(t, filepath.Join(f.root, "Alice")))
	assert.Equal(t, 1, h.DownloadCalls)
	stats := f.monitor.Stats()
	assert.Equal(t, uint64(1), stats.Duplicates)

	images, err := f.index.Images("wxid_alice")
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "Alice", images[0].Folder)
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", images[0].MD5)
}

func TestMonitor_ConnectionLostWithoutReconnect(t *testing.T) {
	h := NewFakeHandle("wxid_self")
	h.OnEmpty = func() {
		h.ReceiveErr = errors.New("socket closed")
		h.LoggedIn = false
	}
	cfg := defaultMonitorConfig()
	cfg.Reconnect = false
	f := newMonitorFixture(t, cfg, h)

	err := f.monitor.Run(context.Background())

	assert.ErrorIs(t, err, ErrConnectionLost)
	assert.True(t, h.Closed)
	assert.Equal(t, StateShutdown, f.monitor.State())
	assert.Contains(t, f.diag.String(), ErrConnectionLost.Error())
}

func TestMonitor_ReconnectsAfterLoss(t *testing.T) {
	first := NewFakeHandle("wxid_self")
	first.OnEmpty = func() {
		first.ReceiveErr = errors.New("socket closed")
		first.LoggedIn = false
	}
	second := NewFakeHandle("wxid_self")
	second.Names["wxid_alice"] = "Alice"
	second.Messages = []InboundMessage{CreateTestImageMessage(3, "wxid_alice", "after.dat")}

	f := newMonitorFixture(t, defaultMonitorConfig(), first, second)
	require.NoError(t, runUntilDrained(t, f, second))

	assert.True(t, first.Closed)
	assert.True(t, second.Closed)
	assert.True(t, second.Enabled)
	assert.FileExists(t, filepath.Join(f.root, "Alice", "after.jpg"))
	stats := f.monitor.Stats()
	assert.Equal(t, uint64(1), stats.Reconnects)
	assert.Equal(t, uint64(1), stats.Stored)
}

func TestMonitor_StalledReceiveWithoutReconnect(t *testing.T) {
	h := NewFakeHandle("wxid_self")
	h.ReceiveErr = errors.New("socket timed out")
	cfg := defaultMonitorConfig()
	cfg.Reconnect = false
	f := newMonitorFixture(t, cfg, h)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := f.monitor.Run(ctx)

	// still logged in: push is restarted once, then the session is given up
	assert.ErrorIs(t, err, ErrConnectionLost)
	assert.Equal(t, 2, h.EnableCalls)
	assert.Equal(t, 6, h.ReceiveCalls)
	assert.Contains(t, f.diag.String(), ErrConnectionLost.Error())
}

func TestMonitor_StalledReceiveRecoveredByReenable(t *testing.T) {
	h := NewFakeHandle("wxid_self")
	h.Names["wxid_alice"] = "Alice"
	h.ReceiveErr = errors.New("socket timed out")
	h.Messages = []InboundMessage{CreateTestImageMessage(4, "wxid_alice", "late.dat")}
	f := newMonitorFixture(t, defaultMonitorConfig(), h)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	h.OnEmpty = cancel
	h.OnEnable = func() {
		if h.EnableCalls == 2 {
			h.ReceiveErr = nil
		}
	}

	require.NoError(t, f.monitor.Run(ctx))

	assert.Equal(t, 2, h.EnableCalls)
	assert.FileExists(t, filepath.Join(f.root, "Alice", "late.jpg"))
	assert.Zero(t, f.monitor.Stats().Reconnects)
}

func TestMonitor_StalledReceiveReconnects(t *testing.T) {
	first := NewFakeHandle("wxid_self")
	first.ReceiveErr = errors.New("socket timed out")
	second := NewFakeHandle("wxid_self")
	second.Names["wxid_alice"] = "Alice"
	second.Messages = []InboundMessage{CreateTestImageMessage(5, "wxid_alice", "fresh.dat")}

	f := newMonitorFixture(t, defaultMonitorConfig(), first, second)
	require.NoError(t, runUntilDrained(t, f, second))

	assert.Equal(t, 2, first.EnableCalls)
	assert.True(t, first.Closed)
	assert.True(t, second.Enabled)
	assert.FileExists(t, filepath.Join(f.root, "Alice", "fresh.jpg"))
	assert.Equal(t, uint64(1), f.monitor.Stats().Reconnects)
}

func TestMonitor_PeriodicHealthCheck(t *testing.T) {
	h := NewFakeHandle("wxid_self")
	cfg := defaultMonitorConfig()
	cfg.HealthInterval = time.Minute
	f := newMonitorFixture(t, cfg, h)

	clock := time.Unix(1700000000, 0)
	f.monitor.now = func() time.Time { return clock }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	empties := 0
	h.OnEmpty = func() {
		empties++
		clock = clock.Add(31 * time.Second)
		if empties == 5 {
			cancel()
		}
	}

	require.NoError(t, f.monitor.Run(ctx))

	// one check at connect, then one per elapsed minute
	assert.Equal(t, 3, h.LoginCalls)
}

func TestMonitor_DispatchOutcomeStrings(t *testing.T) {
	assert.Equal(t, "skipped", OutcomeSkipped.String())
	assert.Equal(t, "duplicate", OutcomeDuplicate.String())
	assert.Equal(t, "stored", OutcomeStored.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.Equal(t, "receiving", StateReceiving.String())
}
