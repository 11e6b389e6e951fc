package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().MarginTop(1)
	focusedStyle = sectionStyle.BorderStyle(lipgloss.NormalBorder()).BorderLeft(true).BorderForeground(lipgloss.Color("99")).PaddingLeft(1)
	blurredStyle = sectionStyle.PaddingLeft(2)
	previewStyle = lipgloss.NewStyle().MarginLeft(4).MarginTop(1)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle    = lipgloss.NewStyle().MarginTop(1)
)
