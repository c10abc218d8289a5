// Package repositories implements SQLite persistence for recordings and their pitch samples.
//
// Key Implementations:
//   - [RecordingRepository] : CRUD over the recording table, implements [models.RecordingStore]
//   - [PitchRepository] : Sample rows owned by a recording, used by [RecordingRepository]
//
// Writes that touch both tables (save and delete) run in one transaction, so a recording never
// ends up with a partial sample sequence and deleting a recording leaves no orphan samples.
// Row mapping goes through sqlx; the handle passed to the constructors is the process-wide
// *sql.DB returned by shared.OpenStore.
package repositories
