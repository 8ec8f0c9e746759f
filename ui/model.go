package ui

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tobybase/Meal-order-app/config"
	"github.com/tobybase/Meal-order-app/models"
	"github.com/tobybase/Meal-order-app/services"
)

// screen identifies the active view of the interaction flow:
// name entry → budget announcement → catalog loading → browsing ⇄ order
// review → back to browsing with a transient completion toast.
type screen int

const (
	screenNameEntry screen = iota
	screenBudget
	screenLoading
	screenLoadError
	screenBrowsing
	screenConfirm
)

const (
	// noticeDuration is how long a rejection notice stays visible.
	noticeDuration = 3 * time.Second
	// toastDuration is how long the completion acknowledgment stays
	// visible before the view settles back into plain browsing.
	toastDuration = 6 * time.Second

	catalogLoadTimeout = 20 * time.Second
)

// catalogLoadedMsg delivers the catalog provider result into the event loop.
type catalogLoadedMsg struct {
	items []models.MenuItem
	err   error
}

// exportDoneMsg delivers the completion/export result.
type exportDoneMsg struct {
	order   *models.CompletedOrder
	path    string
	mailURL string
	err     error
}

// noticeExpiredMsg and toastExpiredMsg clear transient messages. The gen
// counter guards against a superseded timer clearing state set by a later
// action.
type noticeExpiredMsg struct{ gen int }
type toastExpiredMsg struct{ gen int }

// Model is the top-level bubbletea model. It exclusively owns the order
// state; every mutation intent passes through the services policy first.
type Model struct {
	cfg     *config.Config
	catalog services.CatalogProvider
	log     *logrus.Logger
	session uuid.UUID

	keys  KeyMap
	theme Theme

	screen    screen
	nameInput textinput.Model
	spin      spinner.Model

	// Participant name, entered once per session, immutable thereafter.
	name string

	// menu holds the loaded catalog flattened into category display order.
	menu    []models.MenuItem
	cursor  int
	loadErr string

	order   *services.Order
	pending *models.CompletedOrder // snapshot under review in screenConfirm

	notice    string
	noticeGen int
	toast     string
	toastGen  int

	width  int
	height int
}

func NewModel(cfg *config.Config, catalog services.CatalogProvider, log *logrus.Logger) Model {
	input := textinput.New()
	input.Placeholder = "Your Name"
	input.CharLimit = 64
	input.Width = 28
	input.Focus()

	theme := DefaultTheme()
	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		cfg:       cfg,
		catalog:   catalog,
		log:       log,
		session:   uuid.New(),
		keys:      DefaultKeyMap,
		theme:     theme,
		screen:    screenNameEntry,
		nameInput: input,
		spin:      spin,
		order:     services.NewOrder(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Name returns the participant name, empty before submission.
func (m Model) Name() string { return m.name }

// Order exposes the live order state, mainly for tests.
func (m Model) Order() *services.Order { return m.order }

// ActiveCategory is a pure projection of the cursor position; it is never
// stored as independent state.
func (m Model) ActiveCategory() string {
	if len(m.menu) == 0 {
		return ""
	}
	return m.menu[m.cursor].Category
}

func (m Model) loadCatalogCmd() tea.Cmd {
	provider := m.catalog
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), catalogLoadTimeout)
		defer cancel()
		items, err := provider.Load(ctx)
		return catalogLoadedMsg{items: items, err: err}
	}
}

func (m Model) exportCmd(order *models.CompletedOrder) tea.Cmd {
	dir := m.cfg.ExportDir
	mail := m.cfg.Mail
	return func() tea.Msg {
		path, err := services.WriteCSV(dir, order)
		if err != nil {
			return exportDoneMsg{order: order, err: err}
		}
		return exportDoneMsg{
			order:   order,
			path:    path,
			mailURL: services.MailComposeURL(mail.Recipient, mail.EventLabel, order),
		}
	}
}

// copyToClipboard writes text to the system clipboard via the OSC 52
// escape sequence, straight to the tty so it bypasses the managed output.
func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
		if err != nil {
			return nil
		}
		defer tty.Close()
		fmt.Fprintf(tty, "\x1b]52;c;%s\x07", base64.StdEncoding.EncodeToString([]byte(text)))
		return nil
	}
}

func (m *Model) setNotice(text string) tea.Cmd {
	m.notice = text
	m.noticeGen++
	gen := m.noticeGen
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{gen: gen}
	})
}

func (m *Model) clearNotice() {
	m.notice = ""
	m.noticeGen++
}

func (m *Model) setToast(text string) tea.Cmd {
	m.toast = text
	m.toastGen++
	gen := m.toastGen
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{gen: gen}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.screen == screenLoading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case catalogLoadedMsg:
		if m.screen != screenLoading {
			return m, nil
		}
		if msg.err != nil {
			m.screen = screenLoadError
			m.loadErr = msg.err.Error()
			m.log.WithFields(logrus.Fields{"session": m.session, "error": msg.err.Error()}).Warn("catalog load failed")
			return m, nil
		}
		m.menu = flattenMenu(msg.items)
		m.cursor = 0
		m.screen = screenBrowsing
		m.log.WithFields(logrus.Fields{"session": m.session, "items": len(m.menu)}).Info("catalog loaded")
		return m, nil

	case exportDoneMsg:
		return m.updateExportDone(msg)

	case noticeExpiredMsg:
		if msg.gen == m.noticeGen {
			m.notice = ""
		}
		return m, nil

	case toastExpiredMsg:
		if msg.gen == m.toastGen {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenNameEntry:
		return m.updateNameEntry(msg)
	case screenBudget:
		return m.updateBudget(msg)
	case screenLoading:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	case screenLoadError:
		return m.updateLoadError(msg)
	case screenBrowsing:
		return m.updateBrowsing(msg)
	case screenConfirm:
		return m.updateConfirm(msg)
	}
	return m, nil
}

func (m Model) updateNameEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			return m, nil
		}
		m.name = name
		m.screen = screenBudget
		m.log.WithFields(logrus.Fields{"session": m.session, "participant": name}).Info("participant named")
		return m, nil
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) updateBudget(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	// Any confirm-ish key dismisses the budget announcement and starts
	// the catalog load.
	switch msg.Type {
	case tea.KeyEnter, tea.KeySpace:
		m.screen = screenLoading
		return m, tea.Batch(m.loadCatalogCmd(), m.spin.Tick)
	}
	return m, nil
}

func (m Model) updateLoadError(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Retry):
		m.screen = screenLoading
		m.loadErr = ""
		return m, tea.Batch(m.loadCatalogCmd(), m.spin.Tick)
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.menu)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.NextCategory):
		m.cursor = m.categoryJump(+1)
		return m, nil

	case key.Matches(msg, m.keys.PrevCategory):
		m.cursor = m.categoryJump(-1)
		return m, nil

	case key.Matches(msg, m.keys.Add):
		return m.addUnderCursor()

	case key.Matches(msg, m.keys.Decrease):
		return m.decreaseUnderCursor()

	case key.Matches(msg, m.keys.Remove):
		if len(m.menu) > 0 {
			item := m.menu[m.cursor]
			m.order.Remove(item.ID)
			m.clearNotice()
			m.log.WithFields(logrus.Fields{"session": m.session, "item": item.ID}).Info("item removed")
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		pending, err := services.NewCompletedOrder(m.name, m.order)
		if err != nil {
			return m, m.setNotice("Your order is empty.")
		}
		m.pending = pending
		m.screen = screenConfirm
		m.clearNotice()
		return m, nil
	}
	return m, nil
}

func (m Model) addUnderCursor() (tea.Model, tea.Cmd) {
	if len(m.menu) == 0 {
		return m, nil
	}
	item := m.menu[m.cursor]
	if err := m.order.Add(item, m.cfg.Budget); err != nil {
		m.log.WithFields(logrus.Fields{"session": m.session, "item": item.ID, "reason": err.Error()}).Info("add rejected")
		return m, m.setNotice(rejectionText(err))
	}
	m.clearNotice()
	m.log.WithFields(logrus.Fields{
		"session": m.session,
		"item":    item.ID,
		"qty":     m.order.Quantity(item.ID),
		"total":   m.order.Total().StringFixed(2),
	}).Info("item added")
	return m, nil
}

func (m Model) decreaseUnderCursor() (tea.Model, tea.Cmd) {
	if len(m.menu) == 0 {
		return m, nil
	}
	item := m.menu[m.cursor]
	qty := m.order.Quantity(item.ID)
	if qty == 0 {
		return m, nil
	}
	if err := m.order.SetQuantity(item.ID, qty-1, m.cfg.Budget); err != nil {
		return m, m.setNotice(rejectionText(err))
	}
	m.clearNotice()
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.pending = nil
		m.screen = screenBrowsing
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if m.pending != nil {
			summary := services.SummaryText(m.cfg.Mail.EventLabel, m.pending)
			cmd := m.setNotice("Copied order summary to clipboard.")
			return m, tea.Batch(copyToClipboard(summary), cmd)
		}
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	if msg.Type == tea.KeyEnter && m.pending != nil {
		return m, m.exportCmd(m.pending)
	}
	return m, nil
}

func (m Model) updateExportDone(msg exportDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.WithFields(logrus.Fields{"session": m.session, "error": msg.err.Error()}).Error("export failed")
		return m, m.setNotice("Export failed: " + msg.err.Error())
	}
	m.log.WithFields(logrus.Fields{
		"session": m.session,
		"ref":     msg.order.Ref,
		"total":   msg.order.Total.StringFixed(2),
		"file":    msg.path,
	}).Info("order completed")

	m.order.Clear()
	m.pending = nil
	m.screen = screenBrowsing
	toast := fmt.Sprintf("Success! Your order was saved to %s.\nMail draft: %s", msg.path, msg.mailURL)
	return m, m.setToast(toast)
}

// categoryJump returns the index of the first item of the neighboring
// category, wrapping around the fixed category sequence.
func (m Model) categoryJump(direction int) int {
	if len(m.menu) == 0 {
		return 0
	}
	current := m.menu[m.cursor].Category
	position := 0
	for i, c := range models.CategoryOrder {
		if c == current {
			position = i
			break
		}
	}
	count := len(models.CategoryOrder)
	for step := 1; step <= count; step++ {
		next := models.CategoryOrder[((position+direction*step)%count+count)%count]
		for i, item := range m.menu {
			if item.Category == next {
				return i
			}
		}
	}
	return m.cursor
}

// flattenMenu orders the catalog by the fixed category sequence, keeping
// catalog order within each category.
func flattenMenu(items []models.MenuItem) []models.MenuItem {
	out := make([]models.MenuItem, 0, len(items))
	for _, category := range models.CategoryOrder {
		for _, item := range items {
			if item.Category == category {
				out = append(out, item)
			}
		}
	}
	return out
}

func rejectionText(err error) string {
	switch {
	case errors.Is(err, services.ErrDrinkLimit):
		return "You can only order one drink."
	case errors.Is(err, services.ErrBudgetExceeded):
		return "Adding this would exceed your budget."
	}
	return err.Error()
}
