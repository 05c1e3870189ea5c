package internal

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)
)

// ShowProgress runs fn behind a spinner when stderr is a terminal
func ShowProgress(ctx context.Context, message string, fn func() error) error {
	if !isTerminal(os.Stderr) {
		LogInfo(message)
		return fn()
	}
	return showProgressSimple(ctx, message, fn)
}

func showProgressSimple(ctx context.Context, message string, fn func() error) error {
	spinnerChars := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	done := make(chan error, 1)
	stop := make(chan struct{})
	spinnerDone := make(chan struct{})

	go func() {
		defer close(spinnerDone)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		i := 0
		for {
			select {
			case <-stop:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				char := spinnerChars[i%len(spinnerChars)]
				fmt.Fprintf(os.Stderr, "\r%s %s", progressStyle.Render(char), message)
				i++
			}
		}
	}()

	go func() {
		done <- fn()
	}()

	select {
	case err := <-done:
		close(stop)
		<-spinnerDone
		if err != nil {
			fmt.Fprintf(os.Stderr, "\r%s %s\n", errorStyle.Render("✗"), message)
			return err
		}
		fmt.Fprintf(os.Stderr, "\r%s %s\n", successStyle.Render("✓"), message)
		return nil
	case <-ctx.Done():
		close(stop)
		<-spinnerDone
		return ctx.Err()
	}
}

// Check is one narrated diagnostic step. Fn returns a short detail shown
// next to the step name on success.
type Check struct {
	Name     string
	Fn       func(ctx context.Context) (string, error)
	Optional bool // failure is a warning, not an error
}

// RunChecks runs every check in order, printing one line per check to w,
// and returns the number of required checks that failed. A required
// failure skips the checks after it when stopOnFailure is set.
func RunChecks(ctx context.Context, w io.Writer, checks []Check, stopOnFailure bool) int {
	styled := isTerminal(w)
	mark := func(style lipgloss.Style, sym, plain string) string {
		if styled {
			return style.Render(sym)
		}
		return plain
	}

	failed := 0
	for i, c := range checks {
		detail, err := c.Fn(ctx)
		switch {
		case err == nil && detail != "":
			fmt.Fprintf(w, "%s %s: %s\n", mark(successStyle, "✓", "[ok]"), c.Name, detail)
		case err == nil:
			fmt.Fprintf(w, "%s %s\n", mark(successStyle, "✓", "[ok]"), c.Name)
		case c.Optional:
			fmt.Fprintf(w, "%s %s: %v\n", mark(warningStyle, "⚠", "[warn]"), c.Name, err)
		default:
			fmt.Fprintf(w, "%s %s: %v\n", mark(errorStyle, "✗", "[fail]"), c.Name, err)
			failed++
			if stopOnFailure {
				for _, rest := range checks[i+1:] {
					fmt.Fprintf(w, "%s %s: skipped\n", mark(progressStyle, "-", "[skip]"), rest.Name)
				}
				return failed
			}
		}
	}
	return failed
}

// isTerminal checks if the writer is a terminal
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	if isTerminal(os.Stdout) {
		fmt.Printf("%s %s\n", successStyle.Render("✓"), message)
	} else {
		fmt.Println(message)
	}
}

// PrintError prints an error message
func PrintError(message string) {
	if isTerminal(os.Stderr) {
		fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render("✗"), message)
	} else {
		fmt.Fprintf(os.Stderr, "%s\n", message)
	}
}

// PrintInfo prints an info message
func PrintInfo(message string) {
	if isTerminal(os.Stdout) {
		fmt.Printf("%s %s\n", progressStyle.Render("ℹ"), message)
	} else {
		fmt.Println(message)
	}
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	if isTerminal(os.Stderr) {
		fmt.Fprintf(os.Stderr, "%s %s\n", warningStyle.Render("⚠"), message)
	} else {
		fmt.Fprintf(os.Stderr, "WARNING: %s\n", message)
	}
}
