package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// Layout selects how images are grouped under the archive root
type Layout string

const (
	LayoutSender    Layout = "sender"     // root/<sender>/
	LayoutSenderDay Layout = "sender-day" // root/<sender>/<YYYY-MM-DD>/
	LayoutFlat      Layout = "flat"       // root/
)

// ParseLayout validates a layout name
func ParseLayout(s string) (Layout, error) {
	switch l := Layout(strings.ToLower(strings.TrimSpace(s))); l {
	case LayoutSender, LayoutSenderDay, LayoutFlat:
		return l, nil
	case "":
		return LayoutSender, nil
	default:
		return "", fmt.Errorf("unknown layout %q (supported: sender, sender-day, flat)", s)
	}
}

// FolderStore persists sender folder choices across restarts
type FolderStore interface {
	SenderFolder(senderKey string) (string, bool, error)
	RememberSenderFolder(senderKey, folder string) error
}

// DirectoryResolver maps senders to output directories. The first folder
// name chosen for a sender is kept for the life of the resolver (and of the
// store, when one is set), even if the display name changes later.
type DirectoryResolver struct {
	root    string
	layout  Layout
	folders map[string]string
	store   FolderStore
	now     func() time.Time
}

// NewDirectoryResolver creates a resolver rooted at root. store may be nil.
func NewDirectoryResolver(root string, layout Layout, store FolderStore) *DirectoryResolver {
	return &DirectoryResolver{
		root:    root,
		layout:  layout,
		folders: make(map[string]string),
		store:   store,
		now:     time.Now,
	}
}

// Root returns the archive root
func (r *DirectoryResolver) Root() string {
	return r.root
}

// EnsureRoot creates the archive root and checks it is writable
func (r *DirectoryResolver) EnsureRoot() error {
	if err := os.MkdirAll(r.root, 0755); err != nil {
		return &DirectoryError{Path: r.root, Op: "mkdir", Err: err}
	}
	probe, err := os.CreateTemp(r.root, ".wximg-probe-*")
	if err != nil {
		return &DirectoryError{Path: r.root, Op: "write", Err: err}
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)
	return nil
}

// Resolve returns the directory for senderKey, creating missing segments.
// displayName may be empty; the sender key is used instead.
func (r *DirectoryResolver) Resolve(senderKey, displayName string) (string, error) {
	dir := r.root
	if r.layout != LayoutFlat {
		dir = filepath.Join(dir, r.folderFor(senderKey, displayName))
	}
	if r.layout == LayoutSenderDay {
		dir = filepath.Join(dir, r.now().Format("2006-01-02"))
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", &DirectoryError{Path: dir, Op: "mkdir", Err: err}
	}
	return dir, nil
}

func (r *DirectoryResolver) folderFor(senderKey, displayName string) string {
	if folder, ok := r.folders[senderKey]; ok {
		return folder
	}

	if r.store != nil {
		folder, ok, err := r.store.SenderFolder(senderKey)
		if err != nil {
			LogWarn("Failed to read stored folder for %s: %v", senderKey, err)
		} else if ok {
			r.folders[senderKey] = folder
			return folder
		}
	}

	folder := SanitizeFolderName(displayName)
	if folder == "" {
		folder = SanitizeFolderName(senderKey)
	}
	if folder == "" {
		folder = "unknown"
	}

	r.folders[senderKey] = folder
	if r.store != nil {
		if err := r.store.RememberSenderFolder(senderKey, folder); err != nil {
			LogWarn("Failed to store folder for %s: %v", senderKey, err)
		}
	}
	LogDebug("Sender %s -> folder %q", senderKey, folder)
	return folder
}

// windowsReserved are device names Windows refuses as file names
var windowsReserved = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// maxFolderRunes keeps folder names well under common path component limits
const maxFolderRunes = 80

// SanitizeFolderName turns a display name into a safe single path segment.
// Reserved and control characters become '_'. The result is deterministic
// and may be empty when nothing usable remains.
func SanitizeFolderName(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case strings.ContainsRune(`<>:"/\|?*`, r):
			b.WriteRune('_')
		case unicode.IsControl(r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}

	out := strings.TrimRight(b.String(), ". ")
	if runes := []rune(out); len(runes) > maxFolderRunes {
		out = strings.TrimRight(string(runes[:maxFolderRunes]), ". ")
	}
	if out == "" {
		return ""
	}

	base := out
	if i := strings.IndexRune(base, '.'); i >= 0 {
		base = base[:i]
	}
	if windowsReserved[strings.ToUpper(base)] {
		out = "_" + out
	}
	return out
}
