package renderer

import (
	"bytes"

	"github.com/mfreitas/clinicbook"
	md "github.com/nao1215/markdown"
)

// DailyMarkdown renders the daily summary report.
func DailyMarkdown(r *clinicbook.DailyReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Daily Report " + r.Date.String())

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Gross"), md.Bold(r.Totals.Gross.String())},
		Rows: [][]string{
			{"Expenses", r.Totals.Expense.String()},
			{"Net to clinic", r.Totals.Net.String()},
		},
	})

	doc.H2("By Payment Method")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Method", "Gross"},
		Rows:      methodRows(r.ByMethod),
	})

	if r.HasOpeningCash {
		doc.H2("Cash Drawer")
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Opening", r.OpeningCash.String()},
			Rows: [][]string{
				{"Expected closing", r.ClosingCash.String()},
			},
		})
	}

	if len(r.Receipts) > 0 {
		doc.H2("Receipts")
		var lines []string
		for _, rc := range r.Receipts {
			lines = append(lines, receiptLine(rc))
		}
		doc.OrderedList(lines...)
	}

	if len(r.Expenses) > 0 {
		doc.H2("Expenses")
		var lines []string
		for _, e := range r.Expenses {
			lines = append(lines, expenseLine(e))
		}
		doc.OrderedList(lines...)
	}

	return doc.String()
}
