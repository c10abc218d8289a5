package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lilithwittmann/voicepitch/internal/formatter"
	"github.com/lilithwittmann/voicepitch/internal/models"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	RecordingListView ViewState = iota
	DetailView
	RenameView
	ConfirmDeleteView
)

// samplesPerLine is how many pitch samples the detail view prints per row.
const samplesPerLine = 10

// Model represents the TUI application state.
type Model struct {
	ctx        context.Context
	view       ViewState
	store      models.RecordingStore
	width      int
	height     int
	onlyFiles  bool
	recordings list.Model
	selected   *models.Recording
	input      textinput.Model
	status     string
	err        error
	help       help.Model
	keys       keyMap
}

// NewModel creates a new TUI model backed by store.
func NewModel(ctx context.Context, store models.RecordingStore) *Model {
	recordings := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	recordings.Title = "Recordings"

	input := textinput.New()
	input.Placeholder = "path/to/recording.wav"
	input.CharLimit = 512

	return &Model{
		ctx:        ctx,
		view:       RecordingListView,
		store:      store,
		recordings: recordings,
		input:      input,
		help:       help.New(),
		keys:       newKeyMap(),
	}
}

// Init initializes the TUI by loading recordings from the store.
func (m *Model) Init() tea.Cmd {
	return m.fetchRecordings()
}

// View returns the active view.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress esc to go back, q to quit", m.err))
	}

	switch m.view {
	case RecordingListView:
		return m.renderRecordingList()
	case DetailView:
		return m.renderDetail()
	case RenameView:
		return m.renderRename()
	case ConfirmDeleteView:
		return m.renderConfirmDelete()
	default:
		return ""
	}
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recordings.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		if m.err != nil {
			return m.handleErrorKeys(msg)
		}
		switch m.view {
		case RecordingListView:
			return m.handleListKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		case RenameView:
			return m.handleRenameKeys(msg)
		case ConfirmDeleteView:
			return m.handleConfirmDeleteKeys(msg)
		}

	case Msg:
		return m.handleMsg(msg)
	}

	var cmd tea.Cmd
	if m.view == RecordingListView {
		m.recordings, cmd = m.recordings.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = msg.err
		return m, nil
	}

	switch msg.kind {
	case MsgRecordingsFetched:
		recordings, _ := msg.data.([]*models.Recording)
		cmd := m.recordings.SetItems(recordingItems(recordings))
		return m, cmd

	case MsgRecordingFetched:
		m.selected, _ = msg.data.(*models.Recording)
		m.view = DetailView
		return m, nil

	case MsgRecordingRenamed:
		id, _ := msg.data.(int64)
		m.status = fmt.Sprintf("Renamed recording #%d", id)
		return m, tea.Batch(m.fetchRecording(id), m.fetchRecordings())

	case MsgRecordingDeleted:
		id, _ := msg.data.(int64)
		m.status = fmt.Sprintf("Deleted recording #%d", id)
		m.selected = nil
		m.view = RecordingListView
		return m, m.fetchRecordings()
	}

	return m, nil
}

func (m *Model) handleErrorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.err = nil
		m.view = RecordingListView
		return m, m.fetchRecordings()
	}
	return m, nil
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.recordings.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.recordings, cmd = m.recordings.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.enter):
		if rec := m.selectedItem(); rec != nil {
			return m, m.fetchRecording(rec.ID)
		}
		return m, nil
	case key.Matches(msg, m.keys.files):
		m.onlyFiles = !m.onlyFiles
		return m, m.fetchRecordings()
	case key.Matches(msg, m.keys.refresh):
		return m, m.fetchRecordings()
	}

	var cmd tea.Cmd
	m.recordings, cmd = m.recordings.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = RecordingListView
		m.selected = nil
		return m, nil
	case key.Matches(msg, m.keys.rename):
		m.input.SetValue(m.selected.File)
		m.input.CursorEnd()
		m.view = RenameView
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.remove):
		m.view = ConfirmDeleteView
		return m, nil
	}
	return m, nil
}

func (m *Model) handleRenameKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.input.Blur()
		m.view = DetailView
		return m, nil
	case tea.KeyEnter:
		m.input.Blur()
		m.view = DetailView
		return m, m.renameRecording(m.selected.ID, m.input.Value())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.yes):
		return m, m.deleteRecording(m.selected.ID)
	case key.Matches(msg, m.keys.no), key.Matches(msg, m.keys.back), key.Matches(msg, m.keys.quit):
		m.view = DetailView
		return m, nil
	}
	return m, nil
}

func (m *Model) selectedItem() *models.Recording {
	if item, ok := m.recordings.SelectedItem().(recordingItem); ok {
		return item.recording
	}
	return nil
}

func (m *Model) fetchRecordings() tea.Cmd {
	onlyFiles := m.onlyFiles
	return func() tea.Msg {
		recordings, err := m.store.ListAll(m.ctx, onlyFiles)
		return recordingsFetchedMsg(recordings, err)
	}
}

func (m *Model) fetchRecording(id int64) tea.Cmd {
	return func() tea.Msg {
		recording, err := m.store.GetByID(m.ctx, id)
		return recordingFetchedMsg(recording, err)
	}
}

func (m *Model) renameRecording(id int64, filename string) tea.Cmd {
	return func() tea.Msg {
		return recordingRenamedMsg(id, m.store.UpdateFilename(m.ctx, id, filename))
	}
}

func (m *Model) deleteRecording(id int64) tea.Cmd {
	return func() tea.Msg {
		return recordingDeletedMsg(id, m.store.Delete(m.ctx, id))
	}
}

func (m *Model) renderRecordingList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.files, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	status := ""
	if m.status != "" {
		status = "\n" + styles.ok.Render(m.status)
	}
	if m.onlyFiles {
		status += "\n" + styles.warn.Render("Showing only recordings with files")
	}

	return fmt.Sprintf("%s%s\n\n%s", m.recordings.View(), status, helpView)
}

func (m *Model) renderDetail() string {
	if m.selected == nil {
		return styles.err.Render("No recording selected\n\nPress esc to go back")
	}

	avg := styles.pitch(m.selected.Range.Avg).Render(formatter.FormatHz(m.selected.Range.Avg))
	title := styles.title.Render(m.selected.Name + " · avg " + avg)
	body, err := formatter.RecordingToText(m.selected, samplesPerLine)
	if err != nil {
		return styles.err.Render(err.Error())
	}

	status := ""
	if m.status != "" {
		status = styles.ok.Render(m.status) + "\n"
	}

	helpKeys := []key.Binding{m.keys.rename, m.keys.remove, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s%s", title, body, status, helpView)
}

func (m *Model) renderRename() string {
	title := styles.title.Render(fmt.Sprintf("New file for '%s'", m.selected.Name))
	hint := styles.help.Render("enter to save, esc to cancel, empty clears the file")
	return fmt.Sprintf("%s\n%s\n\n%s", title, m.input.View(), hint)
}

func (m *Model) renderConfirmDelete() string {
	title := styles.title.Render(fmt.Sprintf("Delete '%s'?", m.selected.Name))
	info := styles.warn.Render(fmt.Sprintf("Recording #%d and its %d pitch samples will be removed.", m.selected.ID, len(m.selected.Range.Pitches)))

	helpKeys := []key.Binding{m.keys.yes, m.keys.no}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s", title, info, helpView)
}
