package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/mfreitas/clinicbook"
	"github.com/mfreitas/clinicbook/renderer"
)

type monthlyCmd struct {
	date string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display the monthly financial summary" }
func (*monthlyCmd) Usage() string {
	return `clb monthly [-d <date>]

  Displays the month's totals with per-method and per-service-type breakdowns.
  Any date inside the month selects it.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference date inside the month (defaults to today)")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ref, err := clinicbook.ParseDate(c.date)
	if err != nil {
		return fail(err)
	}
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	report := clinicbook.NewMonthlyReport(book, ref)
	printMarkdown(renderer.MonthlyMarkdown(report))
	return subcommands.ExitSuccess
}
