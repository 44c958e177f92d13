package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"golife/src/patterns"
)

var (
	listTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	listNameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Width(23)
	listCatStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Width(12)
	listSizeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(8)
	listHintStyle  = lipgloss.NewStyle().Faint(true)
)

//PatternList renders the pattern catalogue as a styled table
func PatternList() string {
	var b strings.Builder
	b.WriteString(listTitleStyle.Render("Available patterns"))
	b.WriteString("\n\n")
	for _, p := range patterns.All() {
		b.WriteString("  ")
		b.WriteString(listNameStyle.Render(p.Name))
		b.WriteString(listCatStyle.Render(string(p.Category)))
		b.WriteString(listSizeStyle.Render(fmt.Sprintf("%dx%d", p.Width, p.Height)))
		b.WriteString(p.Descr)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(listHintStyle.Render("Use --pattern <name> to run a specific pattern"))
	b.WriteString("\n")
	return b.String()
}
