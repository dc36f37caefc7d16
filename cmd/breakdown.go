package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/mfreitas/clinicbook"
	"github.com/mfreitas/clinicbook/renderer"
)

type breakdownCmd struct {
	date         string
	professional string
}

func (*breakdownCmd) Name() string     { return "breakdown" }
func (*breakdownCmd) Synopsis() string { return "display a professional's share of a day" }
func (*breakdownCmd) Usage() string {
	return `clb breakdown -professional <id> [-d <date>]

  Displays a professional's receipts for a day with their commission total
  and the clinic's share. An id with no receipts shows zero totals.
`
}

func (c *breakdownCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date for the report (defaults to today)")
	f.StringVar(&c.professional, "professional", "", "professional id")
}

func (c *breakdownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.professional == "" {
		return fail(fmt.Errorf("missing -professional"))
	}
	day, err := clinicbook.ParseDate(c.date)
	if err != nil {
		return fail(err)
	}
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	daily := clinicbook.DailyReceipts(book.Receipts(), day)
	bd := clinicbook.NewProfessionalBreakdown(daily, c.professional)
	printMarkdown(renderer.BreakdownMarkdown(&bd))
	return subcommands.ExitSuccess
}
