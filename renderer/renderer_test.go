package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/mfreitas/clinicbook"
)

func testBook(t *testing.T) *clinicbook.Book {
	t.Helper()
	b := clinicbook.NewBook(clinicbook.NewSnapshot(), &clinicbook.MemoryStore{})
	day := clinicbook.NewDate(2024, 5, 1)

	ana, err := b.AddProfessional("Dra. Ana", "Dermatology", "", 30)
	if err != nil {
		t.Fatal(err)
	}
	when := time.Date(day.Year(), day.Month(), day.Day(), 14, 30, 0, 0, time.UTC)
	if _, err := b.AddReceipt(clinicbook.M(200), ana.ID, "consultation", clinicbook.Pix, when); err != nil {
		t.Fatal(err)
	}
	if _, err := b.AddExpense(clinicbook.M(35.50), "supplies", "gauze", "cash", when); err != nil {
		t.Fatal(err)
	}
	if err := b.SetDailyCash(day, clinicbook.M(150)); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestDailyMarkdown(t *testing.T) {
	b := testBook(t)
	day := clinicbook.NewDate(2024, 5, 1)

	got := DailyMarkdown(clinicbook.NewDailyReport(b, day))

	for _, want := range []string{
		"# Daily Report 2024-05-01",
		"## By Payment Method",
		"## Cash Drawer",
		"## Receipts",
		"## Expenses",
		"Dra. Ana",
		"consultation",
		"14:30",
		"gauze",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DailyMarkdown() misses %q in:\n%s", want, got)
		}
	}
}

func TestDailyMarkdownNoCashDrawer(t *testing.T) {
	b := clinicbook.NewBook(clinicbook.NewSnapshot(), &clinicbook.MemoryStore{})
	got := DailyMarkdown(clinicbook.NewDailyReport(b, clinicbook.NewDate(2024, 5, 2)))

	if strings.Contains(got, "Cash Drawer") {
		t.Errorf("day without opening cash must not render the drawer section:\n%s", got)
	}
	if strings.Contains(got, "## Receipts") {
		t.Errorf("empty day must not render a receipts section:\n%s", got)
	}
}

func TestMonthlyMarkdown(t *testing.T) {
	b := testBook(t)
	got := MonthlyMarkdown(clinicbook.NewMonthlyReport(b, clinicbook.NewDate(2024, 5, 15)))

	for _, want := range []string{
		"# Monthly Report May 2024",
		"## By Payment Method",
		"## By Service Type",
		"Consultation",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("MonthlyMarkdown() misses %q in:\n%s", want, got)
		}
	}
}

func TestBreakdownMarkdown(t *testing.T) {
	b := testBook(t)
	day := clinicbook.NewDate(2024, 5, 1)
	receipts := clinicbook.DailyReceipts(b.Receipts(), day)
	bd := clinicbook.NewProfessionalBreakdown(receipts, receipts[0].ProfessionalID)

	got := BreakdownMarkdown(&bd)
	if !strings.Contains(got, "# Breakdown for Dra. Ana") {
		t.Errorf("BreakdownMarkdown() misses the title:\n%s", got)
	}
	if !strings.Contains(got, "Professional share") {
		t.Errorf("BreakdownMarkdown() misses the split table:\n%s", got)
	}

	// an id with no receipts falls back to displaying the id itself
	empty := clinicbook.NewProfessionalBreakdown(nil, "ghost")
	if !strings.Contains(BreakdownMarkdown(&empty), "ghost") {
		t.Errorf("empty breakdown must title with the raw id")
	}
}
