package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/mfreitas/clinicbook"
)

type setCashCmd struct {
	date  string
	value string
}

func (*setCashCmd) Name() string     { return "set-cash" }
func (*setCashCmd) Synopsis() string { return "set the opening cash for a day" }
func (*setCashCmd) Usage() string {
	return `clb set-cash [-d <date>] -value <amount>

  Sets the cash drawer's opening value for a date. Setting it again for the
  same date replaces the previous value.
`
}

func (c *setCashCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "date (defaults to today)")
	f.StringVar(&c.value, "value", "", "opening cash value")
}

func (c *setCashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := clinicbook.ParseDate(c.date)
	if err != nil {
		return fail(err)
	}
	value, err := clinicbook.ParseMoney(c.value)
	if err != nil {
		return fail(err)
	}
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	if err := book.SetDailyCash(day, value); err != nil {
		return fail(err)
	}
	fmt.Printf("Opening cash for %s set to %s\n", day, value)
	return subcommands.ExitSuccess
}
