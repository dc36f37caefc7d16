package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
)

type addPatientCmd struct {
	name  string
	phone string
}

func (*addPatientCmd) Name() string     { return "add-patient" }
func (*addPatientCmd) Synopsis() string { return "register a patient record" }
func (*addPatientCmd) Usage() string {
	return `clb add-patient -name <name> [-phone <phone>]
`
}

func (c *addPatientCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "patient name")
	f.StringVar(&c.phone, "phone", "", "phone number")
}

func (c *addPatientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail(fmt.Errorf("missing -name"))
	}
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	p, err := book.AddPatient(c.name, c.phone)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added patient %s (%s)\n", p.Name, p.ID)
	return subcommands.ExitSuccess
}

type removePatientCmd struct {
	id string
}

func (*removePatientCmd) Name() string     { return "remove-patient" }
func (*removePatientCmd) Synopsis() string { return "delete a patient record" }
func (*removePatientCmd) Usage() string {
	return `clb remove-patient -id <id>
`
}

func (c *removePatientCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "patient id")
}

func (c *removePatientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	if err := book.RemovePatient(c.id); err != nil {
		return fail(err)
	}
	fmt.Println("Removed.")
	return subcommands.ExitSuccess
}

type patientsCmd struct{}

func (*patientsCmd) Name() string     { return "patients" }
func (*patientsCmd) Synopsis() string { return "list patient records" }
func (*patientsCmd) Usage() string {
	return `clb patients
`
}
func (*patientsCmd) SetFlags(*flag.FlagSet) {}

func (*patientsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Patients")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"Id", "Name", "Phone"},
	}
	for _, p := range book.Patients() {
		table.Rows = append(table.Rows, []string{p.ID, p.Name, p.Phone})
	}
	doc.Table(table)
	printMarkdown(doc.String())
	return subcommands.ExitSuccess
}
