package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type addServiceTypeCmd struct {
	label string
	key   string
}

func (*addServiceTypeCmd) Name() string     { return "add-service-type" }
func (*addServiceTypeCmd) Synopsis() string { return "add a service type to the catalog" }
func (*addServiceTypeCmd) Usage() string {
	return `clb add-service-type -label <label> -key <key>

  Adds a category to the open service type catalog. Receipts reference the
  key, reports display the label.
`
}

func (c *addServiceTypeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.label, "label", "", "display label")
	f.StringVar(&c.key, "key", "", "machine-readable key")
}

func (c *addServiceTypeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	if err := book.AddServiceType(c.label, c.key); err != nil {
		return fail(err)
	}
	fmt.Println("Added.")
	return subcommands.ExitSuccess
}

type removeServiceTypeCmd struct {
	key string
}

func (*removeServiceTypeCmd) Name() string     { return "remove-service-type" }
func (*removeServiceTypeCmd) Synopsis() string { return "remove a service type from the catalog" }
func (*removeServiceTypeCmd) Usage() string {
	return `clb remove-service-type -key <key>

  Removes a category. Receipts keep the key; reports fall back to showing it raw.
`
}

func (c *removeServiceTypeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.key, "key", "", "machine-readable key")
}

func (c *removeServiceTypeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	if err := book.RemoveServiceType(c.key); err != nil {
		return fail(err)
	}
	fmt.Println("Removed.")
	return subcommands.ExitSuccess
}
