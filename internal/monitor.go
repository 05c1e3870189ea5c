package internal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime/debug"
	"sync/atomic"
	"time"
)

// State is the message loop's lifecycle state
type State int32

const (
	StateIdle State = iota
	StateConnected
	StateReceiving
	StateDispatching
	StateShutdown
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnected:
		return "connected"
	case StateReceiving:
		return "receiving"
	case StateDispatching:
		return "dispatching"
	case StateShutdown:
		return "shutdown"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// DispatchOutcome is the result of handling one inbound message
type DispatchOutcome int

const (
	OutcomeSkipped   DispatchOutcome = iota // not an image
	OutcomeDuplicate                        // already archived
	OutcomeStored
	OutcomeFailed
)

func (o DispatchOutcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeStored:
		return "stored"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ArchiveIndex is the subset of Index the monitor needs
type ArchiveIndex interface {
	HasMessage(messageID uint64) (bool, error)
	RecordImage(rec ImageRecord) error
}

// MonitorConfig tunes the message loop
type MonitorConfig struct {
	PollInterval       time.Duration
	HealthInterval     time.Duration
	MaxReceiveFailures int
	Reconnect          bool
}

// MonitorStats is a snapshot of the loop counters
type MonitorStats struct {
	State      string `json:"state"`
	Received   uint64 `json:"received"`
	Images     uint64 `json:"images"`
	Stored     uint64 `json:"stored"`
	Duplicates uint64 `json:"duplicates"`
	Failed     uint64 `json:"failed"`
	Reconnects uint64 `json:"reconnects"`
}

// MonitorDeps are the collaborators of a Monitor. Index, Notifier, Diag and
// Sleep are optional.
type MonitorDeps struct {
	Connection *ConnectionManager
	Resolver   *DirectoryResolver
	Persister  *ImagePersister
	Index      ArchiveIndex
	Notifier   Notifier
	Diag       *DiagnosticLog
	Sleep      Sleeper
}

// Monitor receives messages from the SDK and archives image attachments.
// Run drives everything from one goroutine; only State and Stats may be
// read concurrently.
type Monitor struct {
	conn      *ConnectionManager
	resolver  *DirectoryResolver
	persister *ImagePersister
	index     ArchiveIndex
	notifier  Notifier
	diag      *DiagnosticLog
	sleep     Sleeper
	cfg       MonitorConfig
	now       func() time.Time

	session *Session
	state   atomic.Int32

	received   atomic.Uint64
	images     atomic.Uint64
	stored     atomic.Uint64
	duplicates atomic.Uint64
	failed     atomic.Uint64
	reconnects atomic.Uint64
}

// NewMonitor wires a monitor from its collaborators
func NewMonitor(deps MonitorDeps, cfg MonitorConfig) *Monitor {
	if deps.Notifier == nil {
		deps.Notifier = NopNotifier{}
	}
	if deps.Sleep == nil {
		deps.Sleep = SleepContext
	}
	if cfg.MaxReceiveFailures < 1 {
		cfg.MaxReceiveFailures = 1
	}
	return &Monitor{
		conn:      deps.Connection,
		resolver:  deps.Resolver,
		persister: deps.Persister,
		index:     deps.Index,
		notifier:  deps.Notifier,
		diag:      deps.Diag,
		sleep:     deps.Sleep,
		cfg:       cfg,
		now:       time.Now,
	}
}

// State returns the current loop state
func (m *Monitor) State() State {
	return State(m.state.Load())
}

func (m *Monitor) setState(s State) {
	m.state.Store(int32(s))
}

// Stats returns a snapshot of the loop counters
func (m *Monitor) Stats() MonitorStats {
	return MonitorStats{
		State:      m.State().String(),
		Received:   m.received.Load(),
		Images:     m.images.Load(),
		Stored:     m.stored.Load(),
		Duplicates: m.duplicates.Load(),
		Failed:     m.failed.Load(),
		Reconnects: m.reconnects.Load(),
	}
}

// Run connects and processes messages until ctx is cancelled or the
// connection is lost for good. Cancellation is a clean shutdown and returns
// nil. The session is closed on every exit path.
func (m *Monitor) Run(ctx context.Context) error {
	m.setState(StateIdle)

	session, err := m.conn.Connect(ctx)
	if err != nil {
		m.setState(StateShutdown)
		if ctx.Err() != nil {
			return nil
		}
		m.diag.Record(err)
		return err
	}
	m.session = session
	defer func() {
		if err := m.conn.Close(m.session); err != nil {
			LogWarn("%v", err)
		}
		m.setState(StateShutdown)
		LogInfo("Monitor stopped")
	}()
	m.setState(StateConnected)

	if err := m.session.Handle().EnableReceiving(ctx); err != nil {
		err = fmt.Errorf("enable receiving: %w", err)
		m.diag.Record(err)
		return err
	}
	m.setState(StateReceiving)
	LogInfo("Listening for images as %s", m.session.SelfID)

	lastHealth := m.now()
	failures := 0
	// reenabled is set once push was restarted on a logged-in session; a
	// second run of failures then replaces the session
	reenabled := false
	for {
		if ctx.Err() != nil {
			LogInfo("Shutdown requested")
			return nil
		}

		stalled := failures >= m.cfg.MaxReceiveFailures
		if stalled || (m.cfg.HealthInterval > 0 && m.now().Sub(lastHealth) >= m.cfg.HealthInterval) {
			lastHealth = m.now()
			healthy := m.conn.IsHealthy(ctx, m.session)
			if ctx.Err() != nil {
				continue
			}

			var err error
			switch {
			case !healthy || (stalled && reenabled):
				err = m.reconnect(ctx)
				reenabled = false
				failures = 0
			case stalled:
				err = m.reenable(ctx)
				reenabled = true
				failures = 0
			}
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				return err
			}
		}

		msg, err := m.session.Handle().Receive(ctx)
		switch {
		case err == nil:
			failures = 0
			reenabled = false
			m.handle(ctx, msg)
		case errors.Is(err, ErrNoMessage):
			reenabled = false
			_ = m.sleep(ctx, m.cfg.PollInterval)
		default:
			if ctx.Err() != nil {
				continue
			}
			failures++
			LogWarn("Receive failed (%d/%d): %v", failures, m.cfg.MaxReceiveFailures, err)
			_ = m.sleep(ctx, m.cfg.PollInterval)
		}
	}
}

// reenable restarts message push on a session that is still logged in but
// keeps failing to receive. Falls back to reconnect when that fails.
func (m *Monitor) reenable(ctx context.Context) error {
	LogWarn("Receiving keeps failing while logged in; re-enabling message push")
	if err := m.session.Handle().EnableReceiving(ctx); err != nil {
		LogWarn("Re-enabling message push failed: %v", err)
		return m.reconnect(ctx)
	}
	ReceiveRestarts.Inc()
	return nil
}

// reconnect replaces a dead session, or reports the loss when reconnecting is
// disabled or fails.
func (m *Monitor) reconnect(ctx context.Context) error {
	LogWarn("Connection to WeChat lost")
	if !m.cfg.Reconnect {
		m.diag.Record(ErrConnectionLost)
		return ErrConnectionLost
	}

	if err := m.conn.Close(m.session); err != nil {
		LogDebug("%v", err)
	}
	m.setState(StateIdle)

	session, err := m.conn.Connect(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrConnectionLost, err)
		m.diag.Record(err)
		return err
	}
	m.session = session
	m.setState(StateConnected)

	if err := m.session.Handle().EnableReceiving(ctx); err != nil {
		err = fmt.Errorf("%w: enable receiving: %w", ErrConnectionLost, err)
		m.diag.Record(err)
		return err
	}

	m.reconnects.Add(1)
	Reconnects.Inc()
	m.setState(StateReceiving)
	LogInfo("Reconnected as %s", m.session.SelfID)
	return nil
}

func (m *Monitor) handle(ctx context.Context, msg InboundMessage) {
	m.received.Add(1)
	MessagesReceived.WithLabelValues(msg.Type.String()).Inc()

	// An interrupt must not cut a save short
	outcome := m.Dispatch(context.WithoutCancel(ctx), msg)

	switch outcome {
	case OutcomeStored:
		m.stored.Add(1)
	case OutcomeDuplicate:
		m.duplicates.Add(1)
	case OutcomeFailed:
		m.failed.Add(1)
	}
	if outcome != OutcomeSkipped {
		m.images.Add(1)
	}
	DispatchOutcomes.WithLabelValues(outcome.String()).Inc()
}

// Dispatch handles one message against the current session. Every failure,
// panics included, is contained and reported as OutcomeFailed.
func (m *Monitor) Dispatch(ctx context.Context, msg InboundMessage) (outcome DispatchOutcome) {
	if !msg.IsImage() {
		LogDebug("Skipping %s message %d", msg.Type, msg.ID)
		return OutcomeSkipped
	}

	m.setState(StateDispatching)
	defer m.setState(StateReceiving)
	defer func() {
		if r := recover(); r != nil {
			perr := &PanicError{Value: r, Stack: debug.Stack()}
			LogError("Recovered while handling message %d: %v", msg.ID, perr)
			m.diag.Record(perr)
			outcome = OutcomeFailed
		}
	}()

	if m.index != nil {
		seen, err := m.index.HasMessage(msg.ID)
		if err != nil {
			LogWarn("Index lookup for message %d failed: %v", msg.ID, err)
		} else if seen {
			LogDebug("Message %d already archived", msg.ID)
			return OutcomeDuplicate
		}
	}

	senderKey := msg.Sender
	if senderKey == "" {
		senderKey = msg.RoomID
	}
	name := m.displayName(ctx, senderKey)

	dir, err := m.resolver.Resolve(senderKey, name)
	if err != nil {
		LogError("Cannot prepare folder for %s: %v", senderKey, err)
		m.diag.Record(err)
		return OutcomeFailed
	}

	stored, err := m.persister.Save(ctx, m.session.Handle(), msg, dir)
	if err != nil {
		LogError("%v", err)
		m.diag.Record(err)
		return OutcomeFailed
	}
	LogInfo("Saved image from %s: %s", displayOr(name, senderKey), stored.Path)

	m.record(ctx, msg, senderKey, name, dir, stored)
	return OutcomeStored
}

// displayName resolves a contact's display name, or "" when it cannot.
func (m *Monitor) displayName(ctx context.Context, senderKey string) string {
	name, err := m.session.Handle().DisplayName(ctx, senderKey)
	if err != nil {
		LogWarn("%v", &LookupError{SenderID: senderKey, Err: err})
		return ""
	}
	return name
}

func (m *Monitor) record(ctx context.Context, msg InboundMessage, senderKey, name, dir string, stored StoredImage) {
	storedAt := m.now()

	if m.index != nil {
		folder, err := filepath.Rel(m.resolver.Root(), dir)
		if err != nil {
			folder = dir
		}
		rec := ImageRecord{
			MessageID:  msg.ID,
			SenderKey:  senderKey,
			Folder:     folder,
			Path:       stored.Path,
			Size:       stored.Size,
			ReceivedAt: msg.Timestamp,
			StoredAt:   storedAt,
		}
		if info, err := ParseImageInfo(msg.Content); err == nil {
			rec.MD5 = info.MD5
		}
		if err := m.index.RecordImage(rec); err != nil {
			LogWarn("Failed to index message %d: %v", msg.ID, err)
		}
	}

	ev := ImageStoredEvent{
		MessageID:  msg.ID,
		SenderKey:  senderKey,
		SenderName: name,
		Path:       stored.Path,
		Size:       stored.Size,
		StoredAt:   storedAt,
	}
	if err := m.notifier.ImageStored(ctx, ev); err != nil {
		LogWarn("Notification for message %d failed: %v", msg.ID, err)
	}
}

func displayOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
