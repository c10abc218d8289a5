// package formatter renders recordings as plain text for terminal output
package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/lilithwittmann/voicepitch/internal/models"
)

// DateLayout is how recording dates are printed.
const DateLayout = "2006-01-02 15:04:05"

// FormatHz renders a pitch value in hertz with one decimal.
func FormatHz(p float64) string {
	return fmt.Sprintf("%.1f Hz", p)
}

// FormatBytes renders a byte count using binary units.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// FormatDate renders a recording date in the local timezone.
func FormatDate(t time.Time) string {
	return t.Local().Format(DateLayout)
}

// fileOrDash returns the file path, or "-" when the recording has none.
func fileOrDash(rec *models.Recording) string {
	if !rec.HasFile() {
		return "-"
	}
	return rec.File
}

// RecordingsToText renders recordings as an aligned table with columns: ID, Date, Name, Avg, Min, Max, File, Size
func RecordingsToText(recordings []*models.Recording) ([]byte, error) {
	var buf bytes.Buffer

	if len(recordings) == 0 {
		buf.WriteString("No recordings.\n")
		return buf.Bytes(), nil
	}

	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDate\tName\tAvg\tMin\tMax\tFile\tSize")
	for _, rec := range recordings {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			rec.ID,
			FormatDate(rec.Date),
			rec.Name,
			FormatHz(rec.Range.Avg),
			FormatHz(rec.Range.Min),
			FormatHz(rec.Range.Max),
			fileOrDash(rec),
			FormatBytes(rec.FileSize),
		)
	}

	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("failed to render recordings: %w", err)
	}

	return buf.Bytes(), nil
}

// RecordingToText renders one recording with its pitch samples, at most perLine samples per line.
func RecordingToText(rec *models.Recording, perLine int) ([]byte, error) {
	if perLine <= 0 {
		perLine = 8
	}

	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Recording #%d: %s\n", rec.ID, rec.Name))
	buf.WriteString(fmt.Sprintf("Date: %s\n", FormatDate(rec.Date)))
	buf.WriteString(fmt.Sprintf("File: %s (%s)\n", fileOrDash(rec), FormatBytes(rec.FileSize)))
	buf.WriteString(fmt.Sprintf("Pitch: avg %s, min %s, max %s\n",
		FormatHz(rec.Range.Avg), FormatHz(rec.Range.Min), FormatHz(rec.Range.Max)))
	buf.WriteString(fmt.Sprintf("Samples: %d\n", len(rec.Range.Pitches)))

	for i := 0; i < len(rec.Range.Pitches); i += perLine {
		end := min(i+perLine, len(rec.Range.Pitches))
		values := make([]string, 0, end-i)
		for _, p := range rec.Range.Pitches[i:end] {
			values = append(values, fmt.Sprintf("%.1f", p))
		}
		buf.WriteString(fmt.Sprintf("  %s\n", strings.Join(values, " ")))
	}

	return buf.Bytes(), nil
}
