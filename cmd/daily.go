package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/mfreitas/clinicbook"
	"github.com/mfreitas/clinicbook/renderer"
)

// dailyCmd holds the flags for the 'daily' subcommand.
type dailyCmd struct {
	date string
}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display the daily financial summary" }
func (*dailyCmd) Usage() string {
	return `clb daily [-d <date>]

  Displays the day's receipts, expenses, totals, per-method breakdown and the
  expected cash drawer.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date for the report (defaults to today)")
}

func (c *dailyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := clinicbook.ParseDate(c.date)
	if err != nil {
		return fail(err)
	}
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	report := clinicbook.NewDailyReport(book, day)
	printMarkdown(renderer.DailyMarkdown(report))
	return subcommands.ExitSuccess
}
