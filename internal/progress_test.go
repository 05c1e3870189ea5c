package internal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestShowProgress(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		message string
		fn      func() error
		wantErr bool
	}{
		{
			name:    "successful function",
			message: "Testing",
			fn: func() error {
				return nil
			},
			wantErr: false,
		},
		{
			name:    "function with error",
			message: "Testing error",
			fn: func() error {
				return errors.New("test error")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ShowProgress(ctx, tt.message, tt.fn)
			if (err != nil) != tt.wantErr {
				t.Errorf("ShowProgress() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func okCheck(name, detail string) Check {
	return Check{Name: name, Fn: func(ctx context.Context) (string, error) { return detail, nil }}
}

func failCheck(name string, optional bool) Check {
	return Check{Name: name, Optional: optional, Fn: func(ctx context.Context) (string, error) {
		return "", errors.New("boom")
	}}
}

func TestRunChecks(t *testing.T) {
	tests := []struct {
		name       string
		checks     []Check
		stop       bool
		wantFailed int
		wantLines  []string
	}{
		{
			name:       "all pass",
			checks:     []Check{okCheck("config", "loaded"), okCheck("root", "")},
			wantFailed: 0,
			wantLines:  []string{"[ok] config: loaded", "[ok] root"},
		},
		{
			name:       "optional failure is a warning",
			checks:     []Check{failCheck("process", true), okCheck("sdk", "")},
			wantFailed: 0,
			wantLines:  []string{"[warn] process: boom", "[ok] sdk"},
		},
		{
			name:       "required failure continues",
			checks:     []Check{failCheck("sdk", false), okCheck("index", "")},
			wantFailed: 1,
			wantLines:  []string{"[fail] sdk: boom", "[ok] index"},
		},
		{
			name:       "required failure stops",
			checks:     []Check{failCheck("sdk", false), okCheck("login", "")},
			stop:       true,
			wantFailed: 1,
			wantLines:  []string{"[fail] sdk: boom", "[skip] login: skipped"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			failed := RunChecks(context.Background(), &buf, tt.checks, tt.stop)
			if failed != tt.wantFailed {
				t.Errorf("RunChecks() failed = %d, want %d", failed, tt.wantFailed)
			}
			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			if len(lines) != len(tt.wantLines) {
				t.Fatalf("RunChecks() printed %d lines, want %d:\n%s", len(lines), len(tt.wantLines), buf.String())
			}
			for i, want := range tt.wantLines {
				if lines[i] != want {
					t.Errorf("line %d = %q, want %q", i, lines[i], want)
				}
			}
		})
	}
}
