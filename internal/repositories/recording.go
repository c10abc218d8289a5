package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lilithwittmann/voicepitch/internal/models"
	"github.com/lilithwittmann/voicepitch/internal/shared"
)

var _ models.RecordingStore = (*RecordingRepository)(nil)

const recordingColumns = `id, name, date, file, avg_pitch, max_pitch, min_pitch, file_size`

// RecordingRepository implements [models.RecordingStore] over the recording and pitch tables.
type RecordingRepository struct {
	db      *sqlx.DB
	pitches *PitchRepository
}

// NewRecordingRepository creates a new RecordingRepository with the given database connection
func NewRecordingRepository(db *sql.DB) *RecordingRepository {
	return &RecordingRepository{
		db:      sqlx.NewDb(db, driverName),
		pitches: NewPitchRepository(db),
	}
}

// Pitches returns the sample repository used for the pitch table.
func (r *RecordingRepository) Pitches() *PitchRepository { return r.pitches }

// recordingRow is the scan target for one recording row.
// Every column is nullable in the schema.
type recordingRow struct {
	ID       int64           `db:"id"`
	Name     sql.NullString  `db:"name"`
	Date     sql.NullFloat64 `db:"date"`
	File     sql.NullString  `db:"file"`
	AvgPitch sql.NullFloat64 `db:"avg_pitch"`
	MaxPitch sql.NullFloat64 `db:"max_pitch"`
	MinPitch sql.NullFloat64 `db:"min_pitch"`
	FileSize sql.NullInt64   `db:"file_size"`
}

func (row recordingRow) toModel() *models.Recording {
	return &models.Recording{
		ID:       row.ID,
		Name:     row.Name.String,
		Date:     time.UnixMilli(int64(row.Date.Float64)),
		File:     row.File.String,
		FileSize: row.FileSize.Int64,
		Range: models.PitchRange{
			Avg: row.AvgPitch.Float64,
			Max: row.MaxPitch.Float64,
			Min: row.MinPitch.Float64,
		},
	}
}

// Save inserts the recording and one pitch row per sample in a single transaction,
// then sets rec.ID to the assigned identifier.
//
// A zero Date is replaced with the current time. Names are not required to be unique.
func (r *RecordingRepository) Save(ctx context.Context, rec *models.Recording) (*models.Recording, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: nil recording", shared.ErrInvalidInput)
	}

	if rec.Date.IsZero() {
		rec.Date = time.UnixMilli(time.Now().UnixMilli())
	}

	query := `
		INSERT INTO recording (name, date, file, avg_pitch, max_pitch, min_pitch, file_size)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var id int64
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, query,
			rec.Name,
			float64(rec.DateMillis()),
			nullString(rec.File),
			rec.Range.Avg,
			rec.Range.Max,
			rec.Range.Min,
			rec.FileSize,
		)
		if err != nil {
			return fmt.Errorf("failed to insert recording: %w", err)
		}

		if id, err = result.LastInsertId(); err != nil {
			return fmt.Errorf("failed to get recording id: %w", err)
		}

		return r.pitches.InsertSamples(ctx, tx, id, rec.Range.Pitches)
	})
	if err != nil {
		return nil, err
	}

	rec.ID = id
	return rec, nil
}

// ListAll returns recordings newest first, without their samples.
//
// With includeOnlyWithFile set, recordings whose file is NULL are left out.
func (r *RecordingRepository) ListAll(ctx context.Context, includeOnlyWithFile bool) ([]*models.Recording, error) {
	query := `SELECT ` + recordingColumns + ` FROM recording`
	if includeOnlyWithFile {
		query += ` WHERE file IS NOT NULL`
	}
	query += ` ORDER BY date DESC, id DESC`

	var rows []recordingRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to query recordings: %w", err)
	}

	recordings := make([]*models.Recording, 0, len(rows))
	for _, row := range rows {
		recordings = append(recordings, row.toModel())
	}

	return recordings, nil
}

// GetByID returns one recording with its samples in insertion order.
// Returns [shared.ErrRecordingNotFound] if no row has the id.
func (r *RecordingRepository) GetByID(ctx context.Context, id int64) (*models.Recording, error) {
	query := `SELECT ` + recordingColumns + ` FROM recording WHERE id = ?`

	var row recordingRow
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", shared.ErrRecordingNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query recording: %w", err)
	}

	samples, err := r.pitches.ListByRecording(ctx, id)
	if err != nil {
		return nil, err
	}

	rec := row.toModel()
	rec.Range.Pitches = make([]float64, len(samples))
	for i, s := range samples {
		rec.Range.Pitches[i] = s.Pitch
	}

	return rec, nil
}

// Delete removes the recording and all of its samples.
// Returns [shared.ErrRecordingNotFound] if no row has the id.
func (r *RecordingRepository) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM recording WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete recording: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		if rows == 0 {
			return fmt.Errorf("%w: %d", shared.ErrRecordingNotFound, id)
		}

		_, err = r.pitches.DeleteByRecording(ctx, tx, id)
		return err
	})
}

// UpdateFilename changes only the file column. An empty filename clears it.
func (r *RecordingRepository) UpdateFilename(ctx context.Context, id int64, filename string) error {
	return r.UpdateFields(ctx, id, models.RecordingUpdate{File: &filename})
}

// UpdateFields writes the non-nil fields of update to the recording.
//
// Returns [shared.ErrEmptyUpdate] if update sets nothing and [shared.ErrRecordingNotFound] if no row has the id.
func (r *RecordingRepository) UpdateFields(ctx context.Context, id int64, update models.RecordingUpdate) error {
	if update.IsEmpty() {
		return shared.ErrEmptyUpdate
	}

	var (
		sets []string
		args []any
	)

	if update.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *update.Name)
	}
	if update.File != nil {
		sets = append(sets, "file = ?")
		args = append(args, nullString(*update.File))
	}
	if update.FileSize != nil {
		sets = append(sets, "file_size = ?")
		args = append(args, *update.FileSize)
	}

	query := `UPDATE recording SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update recording: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %d", shared.ErrRecordingNotFound, id)
	}

	return nil
}
