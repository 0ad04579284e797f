// Package auditlog persists accepted submissions as newline-delimited JSON records.
package auditlog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/charliemac24/myosystems/internal/model"
)

// Record is one audit line: the validated submission plus ingestion metadata.
type Record struct {
	ID            string           `json:"id"`
	ReceivedAt    time.Time        `json:"receivedAt"`
	ClientAddress string           `json:"clientAddress"`
	Submission    model.Submission `json:"submission"`
}

// Logger appends audit records to one file per form kind under a base directory.
// Files are append-only; lines are never rewritten or removed.
type Logger struct {
	dir string
	mu  sync.Mutex
	now func() time.Time
}

// New initializes a Logger writing under dir.
func New(dir string) *Logger {
	return &Logger{dir: dir, now: time.Now}
}

// Append writes sub as one JSON line to <dir>/<kind>.jsonl, stamping it with
// the client address and a receipt timestamp. Each call performs a single
// write of a complete line, so concurrent appends never interleave.
func (l *Logger) Append(sub model.Submission, clientAddr string) error {
	rec := Record{
		ID:            uuid.NewString(),
		ReceivedAt:    l.now().UTC(),
		ClientAddress: clientAddr,
		Submission:    sub,
	}
	line, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	line = append(line, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(l.path(sub.Kind()), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(line); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (l *Logger) path(kind string) string {
	return filepath.Join(l.dir, kind+".jsonl")
}
