package internal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const indexSchema = `
CREATE TABLE IF NOT EXISTS images (
	message_id  INTEGER PRIMARY KEY,
	sender_key  TEXT NOT NULL,
	folder      TEXT NOT NULL,
	path        TEXT NOT NULL,
	size        INTEGER NOT NULL,
	md5         TEXT NOT NULL DEFAULT '',
	received_at INTEGER NOT NULL,
	stored_at   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS images_sender ON images(sender_key);
CREATE TABLE IF NOT EXISTS senders (
	sender_key TEXT PRIMARY KEY,
	folder     TEXT NOT NULL,
	created_at INTEGER NOT NULL
);`

// ImageRecord is one archived image
type ImageRecord struct {
	MessageID  uint64    `json:"message_id" yaml:"message_id"`
	SenderKey  string    `json:"sender_key" yaml:"sender_key"`
	Folder     string    `json:"folder" yaml:"folder"`
	Path       string    `json:"path" yaml:"path"`
	Size       int64     `json:"size" yaml:"size"`
	MD5        string    `json:"md5,omitempty" yaml:"md5,omitempty"`
	ReceivedAt time.Time `json:"received_at" yaml:"received_at"`
	StoredAt   time.Time `json:"stored_at" yaml:"stored_at"`
}

// SenderSummary aggregates the archive for one sender
type SenderSummary struct {
	SenderKey  string
	Folder     string
	Images     int
	TotalBytes int64
	LastStored time.Time
}

// Index is the sqlite record of everything archived so far
type Index struct {
	db   *sql.DB
	path string
}

// OpenIndex opens or creates the index database at path
func OpenIndex(path string) (*Index, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, &DirectoryError{Path: filepath.Dir(path), Op: "mkdir", Err: err}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("index ping failed: %w", err)
	}
	if _, err := db.Exec(indexSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create index schema: %w", err)
	}

	return &Index{db: db, path: path}, nil
}

// OpenIndexReadOnly opens an existing index without creating it
func OpenIndexReadOnly(path string) (*Index, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("index not found: %w", err)
	}
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("index ping failed: %w", err)
	}
	return &Index{db: db, path: path}, nil
}

// Path returns the database file path
func (ix *Index) Path() string {
	return ix.path
}

// Close closes the database
func (ix *Index) Close() error {
	return ix.db.Close()
}

// HasMessage reports whether messageID was already archived
func (ix *Index) HasMessage(messageID uint64) (bool, error) {
	var n int
	err := ix.db.QueryRow("SELECT COUNT(*) FROM images WHERE message_id = ?", int64(messageID)).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("query failed: %w", err)
	}
	return n > 0, nil
}

// RecordImage stores rec, replacing an earlier record for the same message
func (ix *Index) RecordImage(rec ImageRecord) error {
	_, err := ix.db.Exec(
		`INSERT OR REPLACE INTO images
			(message_id, sender_key, folder, path, size, md5, received_at, stored_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		int64(rec.MessageID), rec.SenderKey, rec.Folder, rec.Path, rec.Size, rec.MD5,
		rec.ReceivedAt.Unix(), rec.StoredAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to record image %d: %w", rec.MessageID, err)
	}
	return nil
}

// SenderFolder implements FolderStore
func (ix *Index) SenderFolder(senderKey string) (string, bool, error) {
	var folder string
	err := ix.db.QueryRow("SELECT folder FROM senders WHERE sender_key = ?", senderKey).Scan(&folder)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query failed: %w", err)
	}
	return folder, true, nil
}

// RememberSenderFolder implements FolderStore. The first folder wins.
func (ix *Index) RememberSenderFolder(senderKey, folder string) error {
	_, err := ix.db.Exec(
		"INSERT OR IGNORE INTO senders (sender_key, folder, created_at) VALUES (?, ?, ?)",
		senderKey, folder, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to remember folder for %s: %w", senderKey, err)
	}
	return nil
}

// Summaries returns per-sender totals, most recent first
func (ix *Index) Summaries() ([]SenderSummary, error) {
	rows, err := ix.db.Query(`
		SELECT sender_key, MAX(folder), COUNT(*), SUM(size), MAX(stored_at)
		FROM images
		GROUP BY sender_key
		ORDER BY MAX(stored_at) DESC`)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var out []SenderSummary
	for rows.Next() {
		var s SenderSummary
		var last int64
		if err := rows.Scan(&s.SenderKey, &s.Folder, &s.Images, &s.TotalBytes, &last); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		s.LastStored = time.Unix(last, 0)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return out, nil
}

// Images returns archived images, optionally filtered by sender key, oldest first
func (ix *Index) Images(senderKey string) ([]ImageRecord, error) {
	query := `SELECT message_id, sender_key, folder, path, size, md5, received_at, stored_at FROM images`
	var args []interface{}
	if senderKey != "" {
		query += " WHERE sender_key = ?"
		args = append(args, senderKey)
	}
	query += " ORDER BY stored_at, message_id"

	rows, err := ix.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var out []ImageRecord
	for rows.Next() {
		var rec ImageRecord
		var id, received, stored int64
		if err := rows.Scan(&id, &rec.SenderKey, &rec.Folder, &rec.Path, &rec.Size, &rec.MD5, &received, &stored); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		rec.MessageID = uint64(id)
		rec.ReceivedAt = time.Unix(received, 0)
		rec.StoredAt = time.Unix(stored, 0)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return out, nil
}
