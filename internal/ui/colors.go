package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Average speaking pitch bands in Hz. Below lowBandMax reads as a low voice, above highBandMin as a high
// one, and the range between is shared by both.
const (
	lowBandMax  = 145.0
	highBandMin = 175.0
)

var styles = NewPalette(PaletteColors{
	Title:   "#7D56F4",
	OK:      "#04B575",
	Err:     "#FF0000",
	Warn:    "#FFA500",
	Help:    "#626262",
	LowBand: "#5DA9E9",
	MidBand: "#B48EAD",
	HiBand:  "#F28FAD",
})

// PaletteColors names the foreground color of each style in a [Palette].
type PaletteColors struct {
	Title, OK, Err, Warn, Help string
	LowBand, MidBand, HiBand   string
}

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
	low   lipgloss.Style
	mid   lipgloss.Style
	high  lipgloss.Style
}

func NewPalette(c PaletteColors) *Palette {
	return &Palette{
		title: NewBold(c.Title).MarginBottom(1),
		ok:    NewBold(c.OK),
		err:   NewBold(c.Err),
		warn:  NewStyle(c.Warn),
		help:  NewEm(c.Help),
		low:   NewBold(c.LowBand),
		mid:   NewBold(c.MidBand),
		high:  NewBold(c.HiBand),
	}
}

// pitch returns the style for a pitch value by band. Zero means no samples and renders as help text.
func (p *Palette) pitch(hz float64) lipgloss.Style {
	switch {
	case hz <= 0:
		return p.help
	case hz < lowBandMax:
		return p.low
	case hz > highBandMin:
		return p.high
	default:
		return p.mid
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
