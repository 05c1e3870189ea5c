package internal

import (
	"errors"
	"fmt"
)

var (
	// ErrNotLoggedIn means the SDK answered but WeChat has no logged-in account.
	ErrNotLoggedIn = errors.New("wechat is not logged in")
	// ErrNoSelfID means the SDK returned an empty self identifier.
	ErrNoSelfID = errors.New("empty self identifier")
	// ErrNoMessage is returned by Handle.Receive when nothing arrived in time.
	ErrNoMessage = errors.New("no message available")
	// ErrDownloadFailed wraps a non-zero download status from the SDK.
	ErrDownloadFailed = errors.New("attachment download failed")
	// ErrNoDecryptedFile means the decrypt step produced no file.
	ErrNoDecryptedFile = errors.New("decrypted image not found")
	// ErrEmptyPayload means the decrypt step produced a zero-byte file.
	ErrEmptyPayload = errors.New("decrypted image is empty")
	// ErrConnectionLost is returned by the monitor when health checks fail
	// and reconnecting is disabled or exhausted.
	ErrConnectionLost = errors.New("connection to wechat lost")
)

// ConnectionError is returned when no healthy session could be established
type ConnectionError struct {
	Attempts int
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// DirectoryError represents errors creating or writing output directories
type DirectoryError struct {
	Path string
	Op   string // "mkdir", "scan", "write"
	Err  error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("directory error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *DirectoryError) Unwrap() error {
	return e.Err
}

// PersistError represents an image that could not be stored after all retries
type PersistError struct {
	MessageID uint64
	Attempts  int
	Err       error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist error [msg %d] after %d attempt(s): %v", e.MessageID, e.Attempts, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// LookupError records a failed display-name lookup. It is logged, never
// propagated: callers fall back to the raw sender id.
type LookupError struct {
	SenderID string
	Err      error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup error [%s]: %v", e.SenderID, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// RetryError is returned by Retry once every attempt has failed
type RetryError struct {
	Attempts int
	Err      error
}

func (e *RetryError) Error() string {
	return fmt.Sprintf("gave up after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *RetryError) Unwrap() error {
	return e.Err
}

// PanicError is a recovered panic. It carries the goroutine stack.
type PanicError struct {
	Value interface{}
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// StackTrace returns the captured stack.
func (e *PanicError) StackTrace() string {
	return string(e.Stack)
}
