package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lilithwittmann/voicepitch/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
	err  error
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgRecordingsFetched MsgKind = iota
	MsgRecordingFetched
	MsgRecordingRenamed
	MsgRecordingDeleted
)

// recordingsFetchedMsg is the constructor for [MsgRecordingsFetched]
func recordingsFetchedMsg(recordings []*models.Recording, err error) Msg {
	return Msg{kind: MsgRecordingsFetched, data: recordings, err: err}
}

// recordingFetchedMsg is the constructor for [MsgRecordingFetched]
func recordingFetchedMsg(recording *models.Recording, err error) Msg {
	return Msg{kind: MsgRecordingFetched, data: recording, err: err}
}

// recordingRenamedMsg is the constructor for [MsgRecordingRenamed]
func recordingRenamedMsg(id int64, err error) Msg {
	return Msg{kind: MsgRecordingRenamed, data: id, err: err}
}

// recordingDeletedMsg is the constructor for [MsgRecordingDeleted]
func recordingDeletedMsg(id int64, err error) Msg {
	return Msg{kind: MsgRecordingDeleted, data: id, err: err}
}
