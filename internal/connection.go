package internal

import (
	"context"
	"fmt"
	"time"
)

// Session is one live, verified SDK connection. It is owned by the
// ConnectionManager; everything else borrows the handle.
type Session struct {
	handle      Handle
	SelfID      string
	LoggedIn    bool
	ConnectedAt time.Time
}

// Handle returns the borrowed SDK handle
func (s *Session) Handle() Handle {
	return s.handle
}

// ConnectionManager owns the SDK handle lifecycle
type ConnectionManager struct {
	dialer Dialer
	policy RetryPolicy
	sleep  Sleeper
	diag   *DiagnosticLog
}

// NewConnectionManager creates a connection manager. sleep may be nil.
func NewConnectionManager(dialer Dialer, policy RetryPolicy, sleep Sleeper) *ConnectionManager {
	if sleep == nil {
		sleep = SleepContext
	}
	return &ConnectionManager{
		dialer: dialer,
		policy: policy,
		sleep:  sleep,
	}
}

// SetDiagnosticLog records each failed attempt to diag
func (cm *ConnectionManager) SetDiagnosticLog(diag *DiagnosticLog) {
	cm.diag = diag
}

// Connect dials the SDK and verifies login state and self id, retrying the
// whole sequence with fixed backoff. A reachable SDK with no logged-in
// account is retried the same way as an unreachable one.
func (cm *ConnectionManager) Connect(ctx context.Context) (*Session, error) {
	var session *Session

	err := Retry(ctx, cm.policy, cm.sleep, func(attempt int) error {
		ConnectAttempts.Inc()
		LogInfo("Connecting to WeChat SDK (attempt %d/%d)...", attempt, cm.policy.Attempts)

		s, err := cm.open(ctx)
		if err != nil {
			LogWarn("Connection attempt %d failed: %v", attempt, err)
			cm.diag.Record(fmt.Errorf("connection attempt %d: %w", attempt, err))
			return err
		}
		session = s
		return nil
	})
	if err != nil {
		return nil, &ConnectionError{Attempts: cm.policy.Attempts, Err: err}
	}

	LogInfo("Connected as %s", session.SelfID)
	return session, nil
}

// open performs one dial + verification; the handle is closed on any failure.
func (cm *ConnectionManager) open(ctx context.Context) (*Session, error) {
	handle, err := cm.dialer.Dial(ctx)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}

	loggedIn, err := handle.IsLoggedIn(ctx)
	if err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("login state: %w", err)
	}
	if !loggedIn {
		_ = handle.Close()
		return nil, ErrNotLoggedIn
	}

	self, err := handle.SelfID(ctx)
	if err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("self id: %w", err)
	}
	if self == "" {
		_ = handle.Close()
		return nil, ErrNoSelfID
	}

	return &Session{
		handle:      handle,
		SelfID:      self,
		LoggedIn:    true,
		ConnectedAt: time.Now(),
	}, nil
}

// IsHealthy re-queries login state
func (cm *ConnectionManager) IsHealthy(ctx context.Context, s *Session) bool {
	if s == nil || s.handle == nil {
		return false
	}
	loggedIn, err := s.handle.IsLoggedIn(ctx)
	if err != nil {
		LogWarn("Health check failed: %v", err)
		s.LoggedIn = false
		return false
	}
	s.LoggedIn = loggedIn
	return loggedIn
}

// Close releases the session's handle. Safe to call more than once.
func (cm *ConnectionManager) Close(s *Session) error {
	if s == nil || s.handle == nil {
		return nil
	}
	err := s.handle.Close()
	s.handle = nil
	s.LoggedIn = false
	if err != nil {
		return fmt.Errorf("failed to close sdk handle: %w", err)
	}
	LogDebug("SDK handle closed")
	return nil
}
