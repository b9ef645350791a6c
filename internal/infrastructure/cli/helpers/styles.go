package helpers

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/doeshing/termdrop/internal/domain"
)

var (
	HeaderStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	SecondaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	OKStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	WarnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	SelectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8")).Bold(true)
)

// StatusBadge renders a health status as a fixed-width colored tag.
func StatusBadge(status domain.HealthStatus) string {
	label := lipgloss.NewStyle().Width(7).Render("[" + string(status) + "]")
	switch status {
	case domain.HealthOK:
		return OKStyle.Render(label)
	case domain.HealthWarn:
		return WarnStyle.Render(label)
	default:
		return ErrorStyle.Render(label)
	}
}
