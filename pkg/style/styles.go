package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)
)

// Tree styles
var (
	TreeRootStyle = TitleStyle

	TreeEnumeratorStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				MarginRight(1)

	FolderStyle = lipgloss.NewStyle().
			Foreground(FolderColor).
			Bold(true)

	ArchiveStyle = lipgloss.NewStyle().
			Foreground(ArchiveColor)

	FileStyle = lipgloss.NewStyle()
)

// Bold renders s in bold
func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
