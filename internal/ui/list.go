package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/lilithwittmann/voicepitch/internal/formatter"
	"github.com/lilithwittmann/voicepitch/internal/models"
)

var _ list.Item = recordingItem{}

// recordingItem wraps [models.Recording] to implement [list.Item].
type recordingItem struct {
	recording *models.Recording
}

func (i recordingItem) FilterValue() string { return i.recording.Name }
func (i recordingItem) Title() string {
	return fmt.Sprintf("%s (#%d)", i.recording.Name, i.recording.ID)
}
func (i recordingItem) Description() string {
	desc := fmt.Sprintf("%s • avg %s", formatter.FormatDate(i.recording.Date), formatter.FormatHz(i.recording.Range.Avg))
	if i.recording.HasFile() {
		desc = fmt.Sprintf("%s • %s", desc, i.recording.File)
	}
	return desc
}

func recordingItems(recordings []*models.Recording) []list.Item {
	items := make([]list.Item, len(recordings))
	for i, rec := range recordings {
		items[i] = recordingItem{recording: rec}
	}
	return items
}
