package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mfreitas/clinicbook"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a human-readable backup of the book" }
func (*exportCmd) Usage() string {
	return `clb export [-o <file>]

  Writes the whole book as indented JSON. The default file name embeds
  today's date, e.g. clinicbook-2024-05-01.json.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "output file (defaults to clinicbook-<today>.json)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	name := c.output
	if name == "" {
		name = clinicbook.ExportFileName(clinicbook.Today())
	}
	file, err := os.Create(name)
	if err != nil {
		return fail(fmt.Errorf("cannot create export file %q: %w", name, err))
	}
	defer file.Close()

	if err := clinicbook.ExportSnapshot(file, book.Snapshot()); err != nil {
		return fail(err)
	}
	fmt.Printf("Exported to %s\n", name)
	return subcommands.ExitSuccess
}
