package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tobybase/Meal-order-app/models"
	"github.com/tobybase/Meal-order-app/services"
)

const (
	menuPaneWidth    = 58
	summaryPaneWidth = 34
	fallbackRows     = 14
)

func (m Model) View() string {
	switch m.screen {
	case screenNameEntry:
		return m.viewNameEntry()
	case screenBudget:
		return m.viewBudget()
	case screenLoading:
		return m.viewLoading()
	case screenLoadError:
		return m.viewLoadError()
	case screenBrowsing:
		return m.viewBrowsing()
	case screenConfirm:
		return m.viewConfirm()
	}
	return ""
}

func (m Model) boxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderColor).
		Padding(1, 3)
}

func (m Model) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(m.theme.Title)
}

func (m Model) faintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(m.theme.FaintText)
}

func (m Model) viewNameEntry() string {
	content := strings.Join([]string{
		m.titleStyle().Render(m.cfg.Mail.EventLabel),
		"",
		"Please enter your name to start your order.",
		"",
		m.nameInput.View(),
		"",
		m.faintStyle().Render("enter start · ctrl+c quit"),
	}, "\n")
	return m.center(m.boxStyle().Render(content))
}

func (m Model) viewBudget() string {
	budget := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Price).
		Render("$" + m.cfg.Budget.StringFixed(2))
	content := strings.Join([]string{
		m.titleStyle().Render(fmt.Sprintf("Welcome, %s!", m.name)),
		"",
		"Your budget for the dinner is:",
		"",
		"        " + budget,
		"",
		m.faintStyle().Render("enter start ordering · q quit"),
	}, "\n")
	return m.center(m.boxStyle().Render(content))
}

func (m Model) viewLoading() string {
	return m.center(m.spin.View() + " Loading menu…")
}

func (m Model) viewLoadError() string {
	errStyle := lipgloss.NewStyle().Foreground(m.theme.Error)
	content := strings.Join([]string{
		errStyle.Render("Failed to load the menu."),
		"",
		m.faintStyle().Render(m.loadErr),
		"",
		m.faintStyle().Render("r retry · q quit"),
	}, "\n")
	return m.center(m.boxStyle().Render(content))
}

func (m Model) viewBrowsing() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewCategoryNav())
	b.WriteString("\n\n")

	menu := m.viewMenuList()
	summary := m.viewSummary()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, menu, "  ", summary))
	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m Model) viewHeader() string {
	left := m.titleStyle().Render(m.cfg.Mail.EventLabel)
	right := m.faintStyle().Render("Ordering as ") +
		lipgloss.NewStyle().Bold(true).Foreground(m.theme.NormalText).Render(m.name)
	return left + "   " + right
}

// viewCategoryNav renders the category strip. The active marker is derived
// from the cursor position each render.
func (m Model) viewCategoryNav() string {
	active := m.ActiveCategory()
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.ActiveCategory)
	parts := make([]string, 0, len(models.CategoryOrder))
	for _, category := range models.CategoryOrder {
		if category == active {
			parts = append(parts, activeStyle.Render("["+category+"]"))
		} else {
			parts = append(parts, m.faintStyle().Render(" "+category+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) listHeight() int {
	rows := m.height - 8
	if rows < 5 {
		rows = fallbackRows
	}
	if rows > len(m.menu) {
		rows = len(m.menu)
	}
	return rows
}

// listOffset keeps the cursor visible, derived from cursor and height.
func listOffset(cursor, total, visible int) int {
	if total <= visible {
		return 0
	}
	offset := cursor - visible/2
	if offset < 0 {
		offset = 0
	}
	if offset > total-visible {
		offset = total - visible
	}
	return offset
}

func (m Model) viewMenuList() string {
	if len(m.menu) == 0 {
		return m.faintStyle().Render("The menu is empty.")
	}
	visible := m.listHeight()
	offset := listOffset(m.cursor, len(m.menu), visible)

	selected := lipgloss.NewStyle().
		Background(m.theme.SelectedBackground).
		Foreground(m.theme.SelectedForeground)
	normal := lipgloss.NewStyle().Foreground(m.theme.NormalText)

	var rows []string
	lastCategory := ""
	for i := offset; i < offset+visible && i < len(m.menu); i++ {
		item := m.menu[i]
		if item.Category != lastCategory {
			rows = append(rows, m.faintStyle().Render("── "+item.Category+" ──"))
			lastCategory = item.Category
		}

		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		badge := "    "
		if qty := m.order.Quantity(item.ID); qty > 0 {
			badge = fmt.Sprintf(" x%-2d", qty)
		}
		label := fmt.Sprintf("%s%-34s%s %8s", marker, truncate(item.Name, 34), badge, "$"+item.Price.StringFixed(2))
		if i == m.cursor {
			rows = append(rows, selected.Render(label))
			rows = append(rows, m.faintStyle().Render("    "+truncate(item.Description, menuPaneWidth-6)))
		} else {
			rows = append(rows, normal.Render(label))
		}
	}
	return lipgloss.NewStyle().Width(menuPaneWidth).Render(strings.Join(rows, "\n"))
}

func (m Model) viewSummary() string {
	title := m.titleStyle().Render("Your Order")
	var rows []string
	rows = append(rows, title, "")

	if m.order.IsEmpty() {
		rows = append(rows, m.faintStyle().Render("Add items to get started"))
	} else {
		for _, line := range m.order.Lines() {
			rows = append(rows, fmt.Sprintf("%d × %-20s %8s",
				line.Qty, truncate(line.Item.Name, 20), "$"+line.Total().StringFixed(2)))
		}
	}

	total := m.order.Total()
	remaining := m.order.Remaining(m.cfg.Budget)
	remainingStyle := lipgloss.NewStyle().Foreground(m.theme.Success)
	if remaining.IsNegative() {
		remainingStyle = lipgloss.NewStyle().Foreground(m.theme.Error)
	}
	rows = append(rows, "",
		fmt.Sprintf("Total:     %10s", "$"+total.StringFixed(2)),
		m.faintStyle().Render(fmt.Sprintf("Budget:    %10s", "$"+m.cfg.Budget.StringFixed(2))),
		remainingStyle.Render(fmt.Sprintf("Remaining: %10s", "$"+remaining.StringFixed(2))),
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderColor).
		Padding(0, 1).
		Width(summaryPaneWidth)
	return box.Render(strings.Join(rows, "\n"))
}

func (m Model) viewFooter() string {
	if m.toast != "" {
		return lipgloss.NewStyle().Foreground(m.theme.Success).Render(m.toast)
	}
	if m.notice != "" {
		return lipgloss.NewStyle().Foreground(m.theme.Notice).Render(m.notice)
	}
	return m.faintStyle().Render(
		"j/k move · tab category · enter add · - less · x remove · c confirm · q quit")
}

func (m Model) viewConfirm() string {
	if m.pending == nil {
		return ""
	}
	summary := services.SummaryText(m.cfg.Mail.EventLabel, m.pending)
	content := strings.Join([]string{
		m.titleStyle().Render("Review Your Order"),
		"",
		summary,
		m.faintStyle().Render("enter confirm · y copy · esc back"),
	}, "\n")
	footer := ""
	if m.notice != "" {
		footer = "\n" + lipgloss.NewStyle().Foreground(m.theme.Notice).Render(m.notice)
	}
	return m.center(m.boxStyle().Render(content)) + footer
}

func (m Model) center(content string) string {
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
