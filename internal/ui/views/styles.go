package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Prompt      lipgloss.Style
	InputBox    lipgloss.Style
	Row         lipgloss.Style
	RowSelected lipgloss.Style
	Highlight   lipgloss.Style
	Price       lipgloss.Style
	Brand       lipgloss.Style
	Thumb       lipgloss.Style
	Loading     lipgloss.Style
	Error       lipgloss.Style
	Count       lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		Row:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		RowSelected: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Price:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Brand:       lipgloss.NewStyle().Faint(true),
		Thumb:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Loading:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Count:       lipgloss.NewStyle().Faint(true),
		Help:        lipgloss.NewStyle().Faint(true),
	}
}
