// Package ui implements an interactive terminal browser for stored recordings using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow:
//  1. [RecordingListView] : Browse recordings, newest first
//  2. [DetailView] : Inspect one recording with its pitch samples
//  3. [RenameView] : Point a recording at a different audio file
//  4. [ConfirmDeleteView] : Confirm removal of a recording and its samples
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the Msg union type.
// Store access runs inside tea.Cmd functions against a [models.RecordingStore], so the view never blocks on SQLite.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
