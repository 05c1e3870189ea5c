package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// imageExtensions are the files counted when picking the next sequence number
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

const defaultImageExt = ".jpg"

// StoredImage is the final artifact of a successful save
type StoredImage struct {
	Path     string
	Stem     string
	Ext      string
	Size     int64
	Attempts int
}

// ImagePersister downloads, decrypts and stores image attachments
type ImagePersister struct {
	scratchDir string
	policy     RetryPolicy
	sleep      Sleeper
}

// NewImagePersister creates a persister that stages payloads under
// scratchDir. sleep may be nil.
func NewImagePersister(scratchDir string, policy RetryPolicy, sleep Sleeper) *ImagePersister {
	if sleep == nil {
		sleep = SleepContext
	}
	return &ImagePersister{
		scratchDir: scratchDir,
		policy:     policy,
		sleep:      sleep,
	}
}

// Save stores the image carried by msg into targetDir. It never overwrites
// an existing file, and no staging directory outlives the call.
func (p *ImagePersister) Save(ctx context.Context, h Handle, msg InboundMessage, targetDir string) (StoredImage, error) {
	start := time.Now()
	defer func() { SaveDuration.Observe(time.Since(start).Seconds()) }()

	stem, err := p.candidateStem(msg, targetDir)
	if err != nil {
		return StoredImage{}, &PersistError{MessageID: msg.ID, Attempts: 0, Err: err}
	}

	var stored StoredImage
	attempts := 0
	err = Retry(ctx, p.policy, p.sleep, func(attempt int) error {
		attempts = attempt
		s, err := p.attempt(ctx, h, msg, stem, targetDir)
		if err != nil {
			LogWarn("Saving image %d failed (attempt %d/%d): %v", msg.ID, attempt, p.policy.Attempts, err)
			return err
		}
		stored = s
		return nil
	})
	if err != nil {
		return StoredImage{}, &PersistError{MessageID: msg.ID, Attempts: attempts, Err: err}
	}

	stored.Attempts = attempts
	return stored, nil
}

// attempt runs download, decrypt and copy once, inside its own staging dir.
func (p *ImagePersister) attempt(ctx context.Context, h Handle, msg InboundMessage, stem, targetDir string) (StoredImage, error) {
	staging := filepath.Join(p.scratchDir, fmt.Sprintf("msg-%d-%s", msg.ID, uuid.NewString()))
	if err := os.MkdirAll(staging, 0700); err != nil {
		return StoredImage{}, &DirectoryError{Path: staging, Op: "mkdir", Err: err}
	}
	defer func() {
		if err := os.RemoveAll(staging); err != nil {
			LogWarn("Failed to remove staging directory %s: %v", staging, err)
		}
	}()

	status, err := h.DownloadAttachment(ctx, msg.ID, msg.Thumb, msg.Extra)
	if err != nil {
		return StoredImage{}, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	if status != 0 {
		return StoredImage{}, fmt.Errorf("%w: status %d", ErrDownloadFailed, status)
	}

	decrypted, err := h.DecryptImage(ctx, msg.Extra, staging)
	if err != nil {
		return StoredImage{}, fmt.Errorf("decrypt: %w", err)
	}
	if decrypted == "" {
		return StoredImage{}, ErrNoDecryptedFile
	}
	info, err := os.Stat(decrypted)
	if err != nil {
		return StoredImage{}, fmt.Errorf("%w: %v", ErrNoDecryptedFile, err)
	}
	if info.Size() == 0 {
		return StoredImage{}, ErrEmptyPayload
	}

	ext := strings.ToLower(filepath.Ext(decrypted))
	if !imageExtensions[ext] {
		ext = defaultImageExt
	}

	path, size, err := copyToUnique(decrypted, targetDir, stem, ext)
	if err != nil {
		return StoredImage{}, err
	}

	return StoredImage{
		Path: path,
		Stem: strings.TrimSuffix(filepath.Base(path), ext),
		Ext:  ext,
		Size: size,
	}, nil
}

// candidateStem derives the file stem from the extra reference, or from
// the next free sequence number in targetDir.
func (p *ImagePersister) candidateStem(msg InboundMessage, targetDir string) (string, error) {
	if msg.HasExtra() {
		if stem := SanitizeFolderName(referenceStem(msg.Extra)); stem != "" {
			return stem, nil
		}
	}
	n, err := NextSequence(targetDir)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

// referenceStem returns the base name of an SDK path without extension.
// SDK paths are Windows paths, so both separators are honored.
func referenceStem(ref string) string {
	ref = strings.TrimSpace(ref)
	if i := strings.LastIndexAny(ref, `/\`); i >= 0 {
		ref = ref[i+1:]
	}
	if i := strings.LastIndex(ref, "."); i > 0 {
		ref = ref[:i]
	}
	return ref
}

// NextSequence returns max(numeric stem of image files in dir) + 1, or 1
// when there are none.
func NextSequence(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 1, nil
		}
		return 0, &DirectoryError{Path: dir, Op: "scan", Err: err}
	}

	highest := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !imageExtensions[ext] {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(name, filepath.Ext(name)))
		if err != nil || n < 0 {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return highest + 1, nil
}

// copyToUnique copies src into dir as stem+ext, appending _1, _2, ... until
// a name is free. Files are created with O_EXCL so an existing file is
// never overwritten; a partial copy is removed.
func copyToUnique(src, dir, stem, ext string) (string, int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", 0, fmt.Errorf("open decrypted image: %w", err)
	}
	defer in.Close()

	for n := 0; ; n++ {
		name := stem + ext
		if n > 0 {
			name = fmt.Sprintf("%s_%d%s", stem, n, ext)
		}
		path := filepath.Join(dir, name)

		out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", 0, &DirectoryError{Path: path, Op: "write", Err: err}
		}

		size, err := io.Copy(out, in)
		closeErr := out.Close()
		if err == nil {
			err = closeErr
		}
		if err != nil {
			_ = os.Remove(path)
			return "", 0, &DirectoryError{Path: path, Op: "write", Err: err}
		}
		return path, size, nil
	}
}
