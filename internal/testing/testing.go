// package testing contains shared testing utilities
package testing

import (
	"bytes"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lilithwittmann/voicepitch/internal/models"
	"github.com/lilithwittmann/voicepitch/internal/shared"
)

// MustOpenStore opens a migrated store in a temp directory and closes it when the test ends.
func MustOpenStore(t *testing.T) *sql.DB {
	t.Helper()
	db, _ := MustOpenStoreAt(t, filepath.Join(t.TempDir(), "Recording.db"))
	return db
}

// MustOpenStoreAt opens a migrated store at path and returns it with its config.
func MustOpenStoreAt(t *testing.T, path string) (*sql.DB, shared.DatabaseConfig) {
	t.Helper()

	cfg := shared.DatabaseConfig{Path: path, BusyTimeoutMS: 1000}
	db, err := shared.OpenStore(cfg, shared.NewLogger(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db, cfg
}

// NewRecording builds a recording dated dateMillis with a pitch range computed from pitches.
func NewRecording(name string, dateMillis int64, file string, pitches ...float64) *models.Recording {
	return &models.Recording{
		Name:     name,
		Date:     time.UnixMilli(dateMillis),
		File:     file,
		FileSize: int64(len(pitches)) * 1024,
		Range:    models.NewPitchRange(pitches),
	}
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
