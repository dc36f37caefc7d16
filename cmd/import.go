package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/mfreitas/clinicbook"
)

type importCmd struct {
	yes bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the book with a backup file" }
func (*importCmd) Usage() string {
	return `clb import [-y] <file>

  Parses a backup file and wholesale-replaces the current book with it, after
  confirmation. On a malformed file nothing is changed.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "skip the confirmation prompt")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("want exactly one backup file argument"))
	}
	name := f.Arg(0)

	file, err := os.Open(name)
	if err != nil {
		return fail(fmt.Errorf("cannot open import file %q: %w", name, err))
	}
	defer file.Close()

	// Parse before touching anything: a malformed file must leave the
	// current state untouched.
	snapshot, err := clinicbook.ImportSnapshot(file)
	if err != nil {
		return fail(err)
	}

	book, err := openBook()
	if err != nil {
		return fail(err)
	}

	if !c.yes {
		fmt.Printf("This replaces ALL current data with %q. Continue? [y/N] ", name)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted, nothing changed.")
			return subcommands.ExitSuccess
		}
	}

	if err := book.ReplaceAll(snapshot); err != nil {
		return fail(err)
	}
	fmt.Println("Imported.")
	return subcommands.ExitSuccess
}
