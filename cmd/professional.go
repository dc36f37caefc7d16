package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/mfreitas/clinicbook"
	md "github.com/nao1215/markdown"
)

type addProfessionalCmd struct {
	name      string
	specialty string
	phone     string
	percent   string
}

func (*addProfessionalCmd) Name() string     { return "add-professional" }
func (*addProfessionalCmd) Synopsis() string { return "register a professional on the roster" }
func (*addProfessionalCmd) Usage() string {
	return `clb add-professional -name <name> -specialty <specialty> [-phone <phone>] -percent <0..100>

  Registers a professional. The percentage is their commission share of each
  receipt's gross value; 100 is the "paid outside the split" sentinel.
`
}

func (c *addProfessionalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "display name")
	f.StringVar(&c.specialty, "specialty", "", "specialty")
	f.StringVar(&c.phone, "phone", "", "phone number")
	f.StringVar(&c.percent, "percent", "0", "commission percentage (0..100)")
}

func (c *addProfessionalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail(fmt.Errorf("missing -name"))
	}
	pct, err := clinicbook.ParsePercent(c.percent)
	if err != nil {
		return fail(err)
	}
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	p, err := book.AddProfessional(c.name, c.specialty, c.phone, pct)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added professional %s (%s)\n", p.Name, p.ID)
	return subcommands.ExitSuccess
}

type updateProfessionalCmd struct {
	id        string
	name      string
	specialty string
	phone     string
	percent   string
}

func (*updateProfessionalCmd) Name() string     { return "update-professional" }
func (*updateProfessionalCmd) Synopsis() string { return "edit a professional's mutable fields" }
func (*updateProfessionalCmd) Usage() string {
	return `clb update-professional -id <id> -name <name> -specialty <specialty> [-phone <phone>] -percent <0..100>

  Replaces the mutable fields of a professional. Identity never changes, and
  past receipts keep the name they were created with.
`
}

func (c *updateProfessionalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "professional id")
	f.StringVar(&c.name, "name", "", "display name")
	f.StringVar(&c.specialty, "specialty", "", "specialty")
	f.StringVar(&c.phone, "phone", "", "phone number")
	f.StringVar(&c.percent, "percent", "0", "commission percentage (0..100)")
}

func (c *updateProfessionalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return fail(fmt.Errorf("missing -id"))
	}
	pct, err := clinicbook.ParsePercent(c.percent)
	if err != nil {
		return fail(err)
	}
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	if err := book.UpdateProfessional(c.id, c.name, c.specialty, c.phone, pct); err != nil {
		return fail(err)
	}
	fmt.Println("Updated.")
	return subcommands.ExitSuccess
}

type removeProfessionalCmd struct {
	id string
}

func (*removeProfessionalCmd) Name() string     { return "remove-professional" }
func (*removeProfessionalCmd) Synopsis() string { return "take a professional off the roster" }
func (*removeProfessionalCmd) Usage() string {
	return `clb remove-professional -id <id>

  Removes a professional. Their historical receipts are kept untouched.
`
}

func (c *removeProfessionalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "professional id")
}

func (c *removeProfessionalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	if err := book.RemoveProfessional(c.id); err != nil {
		return fail(err)
	}
	fmt.Println("Removed.")
	return subcommands.ExitSuccess
}

type professionalsCmd struct{}

func (*professionalsCmd) Name() string     { return "professionals" }
func (*professionalsCmd) Synopsis() string { return "list the roster" }
func (*professionalsCmd) Usage() string {
	return `clb professionals

  Lists the professionals with their ids and commission percentages.
`
}
func (*professionalsCmd) SetFlags(*flag.FlagSet) {}

func (*professionalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Professionals")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Id", "Name", "Specialty", "Commission"},
	}
	for _, p := range book.Professionals() {
		table.Rows = append(table.Rows, []string{p.ID, p.Name, p.Specialty, p.Commission.String()})
	}
	doc.Table(table)
	printMarkdown(doc.String())
	return subcommands.ExitSuccess
}
