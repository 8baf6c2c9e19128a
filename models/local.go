package models

import (
	"errors"
	"io/fs"
	"os"

	"github.com/google/uuid"
)

// EntityKind names a resource an existence guard can look up.
type EntityKind string

const (
	EntityVideo   EntityKind = "video"
	EntityComment EntityKind = "comment"
	EntityUser    EntityKind = "user"
)

// LookupKey identifies a resource; ParentID is set for nested resources
// such as a comment inside a video.
type LookupKey struct {
	ID       string
	ParentID string
}

// Local is the per-request scratch state. It is created when the request
// enters the engine and released after the response has been written.
type Local struct {
	UserID        uuid.UUID
	Authenticated bool
	Video         *Video
	Comment       *Comment

	tempFiles []string
	released  bool
}

func NewLocal() *Local {
	return &Local{}
}

// Authenticate records the principal of the request.
func (l *Local) Authenticate(id uuid.UUID) {
	l.UserID = id
	l.Authenticated = true
}

// Viewer returns the principal id when the request is authenticated.
func (l *Local) Viewer() *uuid.UUID {
	if !l.Authenticated {
		return nil
	}
	id := l.UserID
	return &id
}

// AddTempFile schedules path for removal when the request ends.
func (l *Local) AddTempFile(path string) {
	l.tempFiles = append(l.tempFiles, path)
}

func (l *Local) TempFiles() []string {
	return append([]string(nil), l.tempFiles...)
}

// RemoveTempFiles deletes every registered temp file. Only the first call
// does anything. Files that are already gone are not reported.
func (l *Local) RemoveTempFiles() []error {
	if l.released {
		return nil
	}
	l.released = true

	var errs []error
	for _, p := range l.tempFiles {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	l.tempFiles = nil
	return errs
}
