package terminal

import "github.com/charmbracelet/lipgloss"

var (
	woodColor  = lipgloss.Color("#e6c88c")
	lineColor  = lipgloss.Color("#000000")
	blackStone = lipgloss.Color("#000000")
	whiteStone = lipgloss.Color("#ffffff")
	cursorBg   = lipgloss.Color("#c9a96b")
)

type styles struct {
	Title  lipgloss.Style
	Empty  lipgloss.Style
	Star   lipgloss.Style
	Black  lipgloss.Style
	White  lipgloss.Style
	Status lipgloss.Style
	Won    lipgloss.Style
}

func defaultStyles() styles {
	cell := lipgloss.NewStyle().Background(woodColor)

	return styles{
		Title:  lipgloss.NewStyle().Bold(true),
		Empty:  cell.Foreground(lineColor).Faint(true),
		Star:   cell.Foreground(lineColor).Bold(true),
		Black:  cell.Foreground(blackStone).Bold(true),
		White:  cell.Foreground(whiteStone).Bold(true),
		Status: lipgloss.NewStyle(),
		Won:    lipgloss.NewStyle().Bold(true),
	}
}
