package renderer

import (
	"bytes"

	"github.com/mfreitas/clinicbook"
	md "github.com/nao1215/markdown"
)

// MonthlyMarkdown renders the monthly summary report.
func MonthlyMarkdown(r *clinicbook.MonthlyReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monthly Report " + r.Reference.Format("January 2006"))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Gross"), md.Bold(r.Gross.String())},
		Rows: [][]string{
			{"Expenses", r.ExpenseTotal.String()},
			{"Net to clinic", r.Net.String()},
		},
	})

	doc.H2("By Payment Method")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Method", "Gross"},
		Rows:      methodRows(r.ByMethod),
	})

	if len(r.ByServiceType) > 0 {
		doc.H2("By Service Type")
		var rows [][]string
		for _, label := range sortedKeys(r.ByServiceType) {
			rows = append(rows, []string{label, r.ByServiceType[label].String()})
		}
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Service", "Gross"},
			Rows:      rows,
		})
	}

	return doc.String()
}
