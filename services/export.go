package services

import (
	"encoding/csv"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tobybase/Meal-order-app/models"
)

// csvHeader is the fixed column set of the export artifact.
var csvHeader = []string{"Participant Name", "Item Name", "Category", "Quantity", "Unit Price", "Total Price"}

// NewCompletedOrder snapshots a finalized order for export and logging.
// Refuses an empty order: completion never fails silently.
func NewCompletedOrder(participant string, order *Order) (*models.CompletedOrder, error) {
	if order.IsEmpty() {
		return nil, ErrEmptyOrder
	}
	lines := make([]models.CompletedLine, 0, order.Len())
	for _, line := range order.Lines() {
		lines = append(lines, models.CompletedLine{
			Item:      line.Item,
			Quantity:  line.Qty,
			LineTotal: line.Total(),
		})
	}
	return &models.CompletedOrder{
		Ref:         uuid.New(),
		Participant: participant,
		Lines:       lines,
		Total:       order.Total(),
		CreatedAt:   time.Now(),
	}, nil
}

// ExportFilename embeds the participant name (whitespace runs become
// underscores) and the export date.
func ExportFilename(participant string, day time.Time) string {
	name := strings.Join(strings.Fields(participant), "_")
	return fmt.Sprintf("order-%s-%s.csv", name, day.Format("2006-01-02"))
}

// BuildCSV renders the tabular export: header, one row per order line, and
// a trailing grand-total row. All money has exactly two fraction digits;
// encoding/csv handles quoting of delimiter-significant text.
func BuildCSV(o *models.CompletedOrder) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for _, line := range o.Lines {
		row := []string{
			o.Participant,
			line.Item.Name,
			line.Item.Category,
			strconv.Itoa(line.Quantity),
			line.Item.Price.StringFixed(2),
			line.LineTotal.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write row: %w", err)
		}
	}
	summary := []string{"", "", "", "", "Grand Total", o.Total.StringFixed(2)}
	if err := w.Write(summary); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return b.String(), nil
}

// WriteCSV builds the export and writes it into dir. Returns the full path.
func WriteCSV(dir string, o *models.CompletedOrder) (string, error) {
	content, err := BuildCSV(o)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, ExportFilename(o.Participant, o.CreatedAt))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

// SummaryText renders the plain-text order summary shown for review and
// suitable for copying.
func SummaryText(eventLabel string, o *models.CompletedOrder) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Order\n", eventLabel)
	fmt.Fprintf(&b, "Participant: %s\n", o.Participant)
	b.WriteString("--- ORDER SUMMARY ---\n")
	b.WriteString(lineItems(o))
	b.WriteString("\n---------------------\n")
	fmt.Fprintf(&b, "Total Cost: $%s\n", o.Total.StringFixed(2))
	b.WriteString("---------------------\n")
	return b.String()
}

// MailComposeURL builds a Gmail compose deep link with the recipient,
// subject, and an order body including a note about the exported file.
func MailComposeURL(recipient, eventLabel string, o *models.CompletedOrder) string {
	subject := fmt.Sprintf("Order for %s - %s", o.Participant, eventLabel)
	fileName := ExportFilename(o.Participant, o.CreatedAt)
	body := fmt.Sprintf(`Hello,

Here is my order for the %s:

Participant: %s

Order Details:
%s

--------------------
Total Cost: $%s
--------------------

A CSV file of this order (%s) has also been saved for record-keeping.

Thank you,
%s
`, eventLabel, o.Participant, lineItems(o), o.Total.StringFixed(2), fileName, o.Participant)

	return "https://mail.google.com/mail/?view=cm&fs=1&to=" + url.QueryEscape(recipient) +
		"&su=" + url.QueryEscape(subject) +
		"&body=" + url.QueryEscape(body)
}

func lineItems(o *models.CompletedOrder) string {
	items := make([]string, 0, len(o.Lines))
	for _, line := range o.Lines {
		items = append(items, fmt.Sprintf("- %s x %d = $%s", line.Item.Name, line.Quantity, line.LineTotal.StringFixed(2)))
	}
	return strings.Join(items, "\n")
}
