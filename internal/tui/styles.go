package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/docdeck/docdeck/internal/catalog"
)

// Colors
var (
	PrimaryColor = lipgloss.Color("39")  // Blue
	AccentColor  = lipgloss.Color("76")  // Green
	ErrorColor   = lipgloss.Color("196") // Red
	WarningColor = lipgloss.Color("214") // Orange
	MutedColor   = lipgloss.Color("240") // Gray
	BlackColor   = lipgloss.Color("0")
	TextColor    = lipgloss.Color("252") // Light gray
	BgColor      = lipgloss.Color("235") // Dark gray
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Padding(0, 1)

	FilterBarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(MutedColor).
			Padding(0, 1)

	FilterBarFocusedStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(AccentColor).
				Padding(0, 1)

	SelectorStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1)

	SelectorActiveStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true).
				Padding(0, 1)

	ListStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(MutedColor)

	ListFocusedStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(AccentColor)

	DetailStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 1)

	DetailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(PrimaryColor)

	StaleBadgeStyle = lipgloss.NewStyle().
			Background(WarningColor).
			Foreground(lipgloss.Color("0")).
			Padding(0, 1)

	ConfirmDialogStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.DoubleBorder()).
				BorderForeground(WarningColor).
				Padding(1, 2).
				Align(lipgloss.Center)

	ConfirmTitleStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true).
				MarginBottom(1)

	StatusBarStyle = lipgloss.NewStyle().
			Background(BgColor).
			Foreground(TextColor).
			Padding(0, 1)

	StatusLoadingStyle = lipgloss.NewStyle().
				Background(AccentColor).
				Foreground(lipgloss.Color("0")).
				Padding(0, 1)

	StatusErrorStyle = lipgloss.NewStyle().
				Background(ErrorColor).
				Foreground(lipgloss.Color("0")).
				Padding(0, 1)

	StatusInfoStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SemanticScoreStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	SemanticSelectedStyle = lipgloss.NewStyle().
				Background(PrimaryColor).
				Foreground(lipgloss.Color("0"))
)

// statusStyles render the closed document status set as colored badges.
var statusStyles = map[string]lipgloss.Style{
	catalog.StatusUrgent:    lipgloss.NewStyle().Foreground(ErrorColor).Bold(true),
	catalog.StatusPending:   lipgloss.NewStyle().Foreground(WarningColor),
	catalog.StatusReview:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	catalog.StatusApproved:  lipgloss.NewStyle().Foreground(AccentColor),
	catalog.StatusPublished: lipgloss.NewStyle().Foreground(PrimaryColor),
}

// RenderStatus renders a document status with its badge style.
func RenderStatus(status string) string {
	if status == "" {
		return "-"
	}
	if style, ok := statusStyles[status]; ok {
		return style.Render(status)
	}
	return status
}
