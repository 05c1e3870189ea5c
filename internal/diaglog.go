package internal

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	diagTimeFormat = "2006-01-02 15:04:05"
	diagSeparator  = "--------------------------------------------------"
)

// stackTracer is implemented by errors that carry a stack trace
type stackTracer interface {
	StackTrace() string
}

// DiagnosticLog is the append-only error log the operator reads when
// something goes wrong. A nil *DiagnosticLog discards everything.
type DiagnosticLog struct {
	mu  sync.Mutex
	w   io.Writer
	c   io.Closer
	now func() time.Time
}

// OpenDiagnosticLog opens (or creates) the log file at path, rotating at 10MB.
func OpenDiagnosticLog(path string) *DiagnosticLog {
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
	}
	return &DiagnosticLog{w: lj, c: lj, now: time.Now}
}

// NewDiagnosticLog writes entries to w
func NewDiagnosticLog(w io.Writer) *DiagnosticLog {
	return &DiagnosticLog{w: w, now: time.Now}
}

// Record appends one entry: timestamp + message, the trace when err has
// one, then the separator line.
func (d *DiagnosticLog) Record(err error) {
	if d == nil || err == nil {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", d.now().Format(diagTimeFormat), err.Error())

	var tracer stackTracer
	if errors.As(err, &tracer) {
		trace := strings.TrimRight(tracer.StackTrace(), "\n")
		if trace != "" {
			b.WriteString(trace)
			b.WriteString("\n")
		}
	}
	b.WriteString(diagSeparator)
	b.WriteString("\n")

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, werr := io.WriteString(d.w, b.String()); werr != nil {
		LogWarn("Failed to write diagnostic log: %v", werr)
	}
}

// Close closes the underlying file, if any
func (d *DiagnosticLog) Close() error {
	if d == nil || d.c == nil {
		return nil
	}
	return d.c.Close()
}
