package services

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/tobybase/Meal-order-app/models"
)

func completedOrder(t *testing.T, participant string) *models.CompletedOrder {
	t.Helper()
	o := NewOrder()
	if err := o.Add(item(1, "SALMON FILET W HASSELBACK", models.CategoryMainCourse, 300), dec(1194)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := o.SetQuantity(1, 2, dec(1194)); err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if err := o.Add(item(2, "ZUCCHINI W APPLE & MULLET ROE", models.CategoryAppetizer, 220), dec(1194)); err != nil {
		t.Fatalf("add: %v", err)
	}
	done, err := NewCompletedOrder(participant, o)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	return done
}

func TestNewCompletedOrderRefusesEmpty(t *testing.T) {
	_, err := NewCompletedOrder("Alice", NewOrder())
	if !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("err = %v, want ErrEmptyOrder", err)
	}
}

func TestBuildCSVShape(t *testing.T) {
	done := completedOrder(t, "Alice")
	content, err := BuildCSV(done)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	rows := strings.Split(strings.TrimRight(content, "\n"), "\n")
	// Header + one row per line + grand-total row.
	if want := 2 + 2; len(rows) != want {
		t.Fatalf("row count = %d, want %d\n%s", len(rows), want, content)
	}
	if rows[0] != "Participant Name,Item Name,Category,Quantity,Unit Price,Total Price" {
		t.Errorf("unexpected header: %s", rows[0])
	}
	if rows[1] != "Alice,SALMON FILET W HASSELBACK,Main Course,2,300.00,600.00" {
		t.Errorf("unexpected first row: %s", rows[1])
	}
	if !strings.HasSuffix(rows[len(rows)-1], "Grand Total,820.00") {
		t.Errorf("grand total row = %s, want suffix Grand Total,820.00", rows[len(rows)-1])
	}
}

func TestBuildCSVEscapesQuotesAndCommas(t *testing.T) {
	done := completedOrder(t, `Bob "Builder", Jr.`)
	content, err := BuildCSV(done)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(content, `"Bob ""Builder"", Jr."`) {
		t.Errorf("participant name not CSV-escaped:\n%s", content)
	}
}

func TestExportFilename(t *testing.T) {
	day := time.Date(2026, 8, 29, 18, 30, 0, 0, time.UTC)
	tests := []struct {
		participant string
		want        string
	}{
		{"Alice", "order-Alice-2026-08-29.csv"},
		{"Mary Jane Doe", "order-Mary_Jane_Doe-2026-08-29.csv"},
		{"  spaced   out  ", "order-spaced_out-2026-08-29.csv"},
	}
	for _, tt := range tests {
		if got := ExportFilename(tt.participant, day); got != tt.want {
			t.Errorf("ExportFilename(%q) = %q, want %q", tt.participant, got, tt.want)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	done := completedOrder(t, "Alice")
	dir := t.TempDir()

	path, err := WriteCSV(dir, done)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want, _ := BuildCSV(done)
	if string(data) != want {
		t.Error("file content differs from BuildCSV output")
	}
}

func TestSummaryText(t *testing.T) {
	done := completedOrder(t, "Alice")
	text := SummaryText("KCIS DAA Gathering Dinner", done)

	for _, fragment := range []string{
		"KCIS DAA Gathering Dinner Order",
		"Participant: Alice",
		"- SALMON FILET W HASSELBACK x 2 = $600.00",
		"- ZUCCHINI W APPLE & MULLET ROE x 1 = $220.00",
		"Total Cost: $820.00",
	} {
		if !strings.Contains(text, fragment) {
			t.Errorf("summary missing %q:\n%s", fragment, text)
		}
	}
}

func TestMailComposeURL(t *testing.T) {
	done := completedOrder(t, "Alice")
	link := MailComposeURL("toby@example.com", "KCIS DAA Gathering Dinner", done)

	if !strings.HasPrefix(link, "https://mail.google.com/mail/?view=cm&fs=1&to=") {
		t.Errorf("unexpected prefix: %s", link)
	}
	if !strings.Contains(link, "to=toby%40example.com") {
		t.Errorf("recipient not encoded: %s", link)
	}
	if !strings.Contains(link, "su=Order+for+Alice+-+KCIS+DAA+Gathering+Dinner") {
		t.Errorf("subject not encoded: %s", link)
	}
	if !strings.Contains(link, "body=") {
		t.Errorf("body missing: %s", link)
	}
}
