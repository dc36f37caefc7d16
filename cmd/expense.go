package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"
	"github.com/mfreitas/clinicbook"
)

type addExpenseCmd struct {
	value       string
	category    string
	description string
	method      string
	when        string
}

func (*addExpenseCmd) Name() string     { return "expense" }
func (*addExpenseCmd) Synopsis() string { return "record an expense" }
func (*addExpenseCmd) Usage() string {
	return `clb expense -value <amount> -category <category> [-desc <description>] [-method <method>] [-t <RFC3339 time>]

  Records money leaving the clinic. Category and payment method are free text.
`
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.value, "value", "", "expense value")
	f.StringVar(&c.category, "category", "", "category")
	f.StringVar(&c.description, "desc", "", "description")
	f.StringVar(&c.method, "method", "", "payment method (free text)")
	f.StringVar(&c.when, "t", "", "timestamp (RFC3339), defaults to now")
}

func (c *addExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	value, err := clinicbook.ParseMoney(c.value)
	if err != nil {
		return fail(err)
	}
	var when time.Time
	if c.when != "" {
		when, err = time.Parse(time.RFC3339, c.when)
		if err != nil {
			return fail(fmt.Errorf("invalid timestamp %q: %w", c.when, err))
		}
	}
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	e, err := book.AddExpense(value, c.category, c.description, c.method, when)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Expense %s: %s on %s\n", e.ID, e.Value, e.Category)
	return subcommands.ExitSuccess
}

type removeExpenseCmd struct {
	id string
}

func (*removeExpenseCmd) Name() string     { return "remove-expense" }
func (*removeExpenseCmd) Synopsis() string { return "delete an expense" }
func (*removeExpenseCmd) Usage() string {
	return `clb remove-expense -id <id>
`
}

func (c *removeExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "expense id")
}

func (c *removeExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	if err := book.RemoveExpense(c.id); err != nil {
		return fail(err)
	}
	fmt.Println("Removed.")
	return subcommands.ExitSuccess
}
