package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lilithwittmann/voicepitch/internal/models"
	"github.com/lilithwittmann/voicepitch/internal/shared"
)

// fakeStore is an in-memory [models.RecordingStore] for driving the model.
type fakeStore struct {
	recordings map[int64]*models.Recording
	renamed    map[int64]string
	deleted    []int64
	listFiles  []bool
	err        error
}

func newFakeStore(recs ...*models.Recording) *fakeStore {
	s := &fakeStore{recordings: map[int64]*models.Recording{}, renamed: map[int64]string{}}
	for _, r := range recs {
		s.recordings[r.ID] = r
	}
	return s
}

func (s *fakeStore) Save(_ context.Context, rec *models.Recording) (*models.Recording, error) {
	rec.ID = int64(len(s.recordings) + 1)
	s.recordings[rec.ID] = rec
	return rec, s.err
}

func (s *fakeStore) ListAll(_ context.Context, onlyWithFile bool) ([]*models.Recording, error) {
	s.listFiles = append(s.listFiles, onlyWithFile)
	if s.err != nil {
		return nil, s.err
	}
	var out []*models.Recording
	for _, r := range s.recordings {
		if onlyWithFile && !r.HasFile() {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *fakeStore) GetByID(_ context.Context, id int64) (*models.Recording, error) {
	if s.err != nil {
		return nil, s.err
	}
	r, ok := s.recordings[id]
	if !ok {
		return nil, shared.ErrRecordingNotFound
	}
	return r, nil
}

func (s *fakeStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.recordings[id]; !ok {
		return shared.ErrRecordingNotFound
	}
	delete(s.recordings, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *fakeStore) UpdateFilename(ctx context.Context, id int64, filename string) error {
	return s.UpdateFields(ctx, id, models.RecordingUpdate{File: &filename})
}

func (s *fakeStore) UpdateFields(_ context.Context, id int64, update models.RecordingUpdate) error {
	r, ok := s.recordings[id]
	if !ok {
		return shared.ErrRecordingNotFound
	}
	if update.File != nil {
		r.File = *update.File
		s.renamed[id] = *update.File
	}
	return nil
}

func testRecording() *models.Recording {
	return &models.Recording{
		ID:       7,
		Name:     "warmup",
		Date:     time.UnixMilli(1700000000000),
		File:     "warmup.wav",
		FileSize: 2048,
		Range:    models.NewPitchRange([]float64{180, 200, 220}),
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run executes cmd and feeds the resulting message back into the model.
func run(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				m.Update(c())
			}
		}
		return
	}
	m.Update(msg)
}

func TestModel(t *testing.T) {
	ctx := context.Background()

	t.Run("Init loads recordings", func(t *testing.T) {
		store := newFakeStore(testRecording())
		m := NewModel(ctx, store)

		run(t, m, m.Init())

		if got := len(m.recordings.Items()); got != 1 {
			t.Fatalf("expected 1 item, got %d", got)
		}
		if m.view != RecordingListView {
			t.Errorf("expected list view, got %v", m.view)
		}
	})

	t.Run("Enter opens detail", func(t *testing.T) {
		store := newFakeStore(testRecording())
		m := NewModel(ctx, store)
		run(t, m, m.Init())

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		run(t, m, cmd)

		if m.view != DetailView {
			t.Fatalf("expected detail view, got %v", m.view)
		}
		if m.selected == nil || m.selected.ID != 7 {
			t.Fatalf("expected recording 7 selected, got %+v", m.selected)
		}
		if view := m.View(); !strings.Contains(view, "warmup.wav") {
			t.Errorf("expected detail to show the file, got:\n%s", view)
		}
	})

	t.Run("Toggle file filter", func(t *testing.T) {
		store := newFakeStore(testRecording())
		m := NewModel(ctx, store)

		_, cmd := m.Update(keyRunes("f"))
		run(t, m, cmd)

		if !m.onlyFiles {
			t.Fatal("expected file filter on")
		}
		if last := store.listFiles[len(store.listFiles)-1]; !last {
			t.Error("expected store to be queried with the file filter")
		}
	})

	t.Run("Rename", func(t *testing.T) {
		store := newFakeStore(testRecording())
		m := NewModel(ctx, store)
		m.selected = store.recordings[7]
		m.view = DetailView

		m.Update(keyRunes("r"))
		if m.view != RenameView {
			t.Fatalf("expected rename view, got %v", m.view)
		}

		m.input.SetValue("renamed.wav")
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		run(t, m, cmd)

		if store.renamed[7] != "renamed.wav" {
			t.Errorf("expected rename to reach the store, got %q", store.renamed[7])
		}
		if !strings.Contains(m.status, "Renamed") {
			t.Errorf("expected rename status, got %q", m.status)
		}
	})

	t.Run("Delete confirmed", func(t *testing.T) {
		store := newFakeStore(testRecording())
		m := NewModel(ctx, store)
		m.selected = store.recordings[7]
		m.view = DetailView

		m.Update(keyRunes("d"))
		if m.view != ConfirmDeleteView {
			t.Fatalf("expected confirm view, got %v", m.view)
		}

		_, cmd := m.Update(keyRunes("y"))
		run(t, m, cmd)

		if len(store.deleted) != 1 || store.deleted[0] != 7 {
			t.Errorf("expected recording 7 deleted, got %v", store.deleted)
		}
		if m.view != RecordingListView || m.selected != nil {
			t.Errorf("expected to return to the list, got view %v", m.view)
		}
	})

	t.Run("Delete declined", func(t *testing.T) {
		store := newFakeStore(testRecording())
		m := NewModel(ctx, store)
		m.selected = store.recordings[7]
		m.view = ConfirmDeleteView

		m.Update(keyRunes("n"))

		if m.view != DetailView {
			t.Errorf("expected detail view, got %v", m.view)
		}
		if len(store.deleted) != 0 {
			t.Errorf("expected nothing deleted, got %v", store.deleted)
		}
	})

	t.Run("Store error", func(t *testing.T) {
		store := newFakeStore()
		store.err = errors.New("disk I/O error")
		m := NewModel(ctx, store)

		run(t, m, m.Init())

		if m.err == nil {
			t.Fatal("expected error to be recorded")
		}
		if view := m.View(); !strings.Contains(view, "disk I/O error") {
			t.Errorf("expected error in view, got:\n%s", view)
		}

		store.err = nil
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		if m.err != nil {
			t.Error("expected esc to clear the error")
		}
		run(t, m, cmd)
	})
}

func TestPalettePitchBands(t *testing.T) {
	p := NewPalette(PaletteColors{Help: "#000001", LowBand: "#000002", MidBand: "#000003", HiBand: "#000004"})

	tests := []struct {
		hz   float64
		want string
	}{
		{0, "#000001"},
		{110, "#000002"},
		{160, "#000003"},
		{220, "#000004"},
	}

	for _, tt := range tests {
		got := p.pitch(tt.hz).GetForeground()
		if got != lipgloss.Color(tt.want) {
			t.Errorf("pitch(%v): expected %v, got %v", tt.hz, tt.want, got)
		}
	}
}
