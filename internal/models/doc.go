// Package models defines the entities persisted by the voice recording store.
//
// The package contains two kinds of types:
//
// 1. Stored entities
//   - [Recording] : One voice capture session with metadata and its [PitchRange]
//   - [PitchSample] : One measured frequency belonging to a recording
//
// 2. Request and access types
//   - [RecordingUpdate] : Typed partial update of the mutable recording columns
//   - [RecordingStore] : Data access operations implemented by repositories.RecordingRepository
//
// A recording's pitch summary (average, maximum, minimum) is computed once, before save,
// and stored alongside the row. [NewPitchRange] is the helper callers use to build it.
package models
