// package models defines the data model for the voice recording store
package models

import (
	"context"
	"time"
)

// Recording is one voice capture session.
//
// Date is stored as milliseconds since the epoch, so anything below millisecond precision is dropped on save.
// An empty File means the recording has no audio file and is persisted as NULL.
type Recording struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Date     time.Time  `json:"date"`
	File     string     `json:"file,omitempty"`
	FileSize int64      `json:"file_size"`
	Range    PitchRange `json:"range"`
}

// NewRecording creates a [Recording] dated now with the given name, audio file and pitch range.
func NewRecording(name, file string, fileSize int64, pr PitchRange) *Recording {
	return &Recording{
		Name:     name,
		Date:     time.UnixMilli(time.Now().UnixMilli()),
		File:     file,
		FileSize: fileSize,
		Range:    pr,
	}
}

// HasFile reports whether the recording references an audio file.
func (r *Recording) HasFile() bool { return r.File != "" }

// DateMillis returns the recording date as milliseconds since the epoch.
func (r *Recording) DateMillis() int64 { return r.Date.UnixMilli() }

// PitchRange summarizes the pitch of a recording.
//
// Pitches is only populated when a single recording is fetched by id.
type PitchRange struct {
	Avg     float64   `json:"avg"`
	Max     float64   `json:"max"`
	Min     float64   `json:"min"`
	Pitches []float64 `json:"pitches,omitempty"`
}

// PitchSample is one row of the pitch table.
type PitchSample struct {
	ID          int64   `json:"id" db:"id"`
	Pitch       float64 `json:"p" db:"p"`
	Offset      float64 `json:"offset" db:"offset"`
	RecordingID int64   `json:"recording_id" db:"recording_id"`
}

// RecordingUpdate enumerates the recording columns that may change after save.
// Nil fields are left untouched.
type RecordingUpdate struct {
	Name     *string
	File     *string
	FileSize *int64
}

// IsEmpty reports whether the update sets no field.
func (u RecordingUpdate) IsEmpty() bool {
	return u.Name == nil && u.File == nil && u.FileSize == nil
}

// RecordingStore defines the data access operations for recordings and their pitch samples.
type RecordingStore interface {
	Save(ctx context.Context, rec *Recording) (*Recording, error)                // Save inserts the recording and all of its samples
	ListAll(ctx context.Context, includeOnlyWithFile bool) ([]*Recording, error) // ListAll returns recordings without samples, newest first
	GetByID(ctx context.Context, id int64) (*Recording, error)                   // GetByID returns one recording with its samples
	Delete(ctx context.Context, id int64) error                                  // Delete removes a recording and its samples
	UpdateFilename(ctx context.Context, id int64, filename string) error         // UpdateFilename changes only the file column
	UpdateFields(ctx context.Context, id int64, update RecordingUpdate) error    // UpdateFields applies a partial update
}
