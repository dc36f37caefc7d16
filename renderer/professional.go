package renderer

import (
	"bytes"

	"github.com/mfreitas/clinicbook"
	md "github.com/nao1215/markdown"
)

// BreakdownMarkdown renders a per-professional breakdown.
func BreakdownMarkdown(bd *clinicbook.ProfessionalBreakdown) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	name := bd.ProfessionalName
	if name == "" {
		name = bd.ProfessionalID
	}
	doc.H1("Breakdown for " + name)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Gross"), md.Bold(bd.Gross.String())},
		Rows: [][]string{
			{"Professional share", bd.Professional.String()},
			{"Clinic share", bd.Clinic.String()},
		},
	})

	doc.H2("By Payment Method")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Method", "Gross"},
		Rows:      methodRows(bd.ByMethod),
	})

	if len(bd.Receipts) > 0 {
		doc.H2("Receipts")
		var lines []string
		for _, r := range bd.Receipts {
			lines = append(lines, receiptLine(r))
		}
		doc.OrderedList(lines...)
	}

	return doc.String()
}
