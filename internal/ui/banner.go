// Package ui holds the static terminal presentation shared by interactive
// commands.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	bannerBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)
	bannerTitle = lipgloss.NewStyle().Bold(true)
)

// Banner renders the welcome header shown when a session starts.
func Banner(title string) string {
	heading := bannerTitle.Render(strings.ToUpper(title))
	body := strings.Join([]string{
		"Every answer is saved the moment you give it.",
		"Stop at any time; the next session resumes where you left off.",
	}, "\n")
	return bannerBox.Render(lipgloss.JoinVertical(lipgloss.Center, heading, body))
}
