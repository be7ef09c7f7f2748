// Package archive keeps the raw oracle reply of every generated plan on
// S3-compatible storage.
package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entry is one raw reply to archive
type Entry struct {
	UserID      uuid.UUID
	GeneratedAt time.Time
	Model       string
	Source      string
	Text        string
}

// Key is the object key of the entry: plans/<user>/<timestamp>.md
func (e Entry) Key() string {
	return fmt.Sprintf("plans/%s/%s.md", e.UserID, e.GeneratedAt.UTC().Format("20060102T150405Z"))
}

// Archiver stores raw replies
type Archiver interface {
	Put(ctx context.Context, e Entry) (string, error)
}

// Nop discards entries
type Nop struct{}

// Put returns the key without storing anything
func (Nop) Put(_ context.Context, e Entry) (string, error) {
	return e.Key(), nil
}
