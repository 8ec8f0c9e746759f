package ui

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette for the ordering UI. ANSI 256-color codes for
// broad terminal compatibility.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	Title          lipgloss.Color
	ActiveCategory lipgloss.Color

	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	Price       lipgloss.Color
	BorderColor lipgloss.Color

	Notice  lipgloss.Color // business-rule rejections
	Error   lipgloss.Color // catalog failures
	Success lipgloss.Color // completion toast
}

func DefaultTheme() Theme {
	return Theme{
		NormalText:         lipgloss.Color("252"),
		FaintText:          lipgloss.Color("243"),
		Title:              lipgloss.Color("255"),
		ActiveCategory:     lipgloss.Color("215"),
		SelectedBackground: lipgloss.Color("237"),
		SelectedForeground: lipgloss.Color("255"),
		Price:              lipgloss.Color("108"),
		BorderColor:        lipgloss.Color("240"),
		Notice:             lipgloss.Color("179"),
		Error:              lipgloss.Color("167"),
		Success:            lipgloss.Color("72"),
	}
}
