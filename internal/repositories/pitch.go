package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lilithwittmann/voicepitch/internal/models"
)

// sampleOffset is written for every sample; upstream pitch detection does not report offsets.
const sampleOffset = 0.0

// PitchRepository handles the pitch rows that belong to a recording.
type PitchRepository struct {
	db *sqlx.DB
}

// NewPitchRepository creates a new PitchRepository with the given database connection
func NewPitchRepository(db *sql.DB) *PitchRepository {
	return &PitchRepository{db: sqlx.NewDb(db, driverName)}
}

// InsertSamples writes one row per pitch, in order, for the given recording.
func (r *PitchRepository) InsertSamples(ctx context.Context, tx *sqlx.Tx, recordingID int64, pitches []float64) error {
	if len(pitches) == 0 {
		return nil
	}

	stmt, err := tx.PreparexContext(ctx, `INSERT INTO pitch (p, "offset", recording_id) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare pitch insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range pitches {
		if _, err := stmt.ExecContext(ctx, p, sampleOffset, recordingID); err != nil {
			return fmt.Errorf("failed to insert pitch sample %d: %w", i, err)
		}
	}

	return nil
}

// ListByRecording returns the samples of a recording in insertion order.
func (r *PitchRepository) ListByRecording(ctx context.Context, recordingID int64) ([]models.PitchSample, error) {
	query := `
		SELECT id, p, "offset", recording_id
		FROM pitch
		WHERE recording_id = ?
		ORDER BY id ASC
	`

	var samples []models.PitchSample
	if err := r.db.SelectContext(ctx, &samples, query, recordingID); err != nil {
		return nil, fmt.Errorf("failed to query pitch samples: %w", err)
	}

	return samples, nil
}

// DeleteByRecording removes every sample of a recording and returns how many rows went.
func (r *PitchRepository) DeleteByRecording(ctx context.Context, tx *sqlx.Tx, recordingID int64) (int64, error) {
	result, err := tx.ExecContext(ctx, `DELETE FROM pitch WHERE recording_id = ?`, recordingID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete pitch samples: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows, nil
}

// CountOrphans counts samples whose recording_id matches no recording.
//
// The reference is not enforced by the schema, so stores written by older code may carry some.
func (r *PitchRepository) CountOrphans(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM pitch p
		LEFT JOIN recording r ON r.id = p.recording_id
		WHERE r.id IS NULL
	`

	var n int
	if err := r.db.GetContext(ctx, &n, query); err != nil {
		return 0, fmt.Errorf("failed to count orphan samples: %w", err)
	}

	return n, nil
}
