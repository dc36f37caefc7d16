package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
)

type addProductCmd struct {
	name string
	qty  int
	min  int
}

func (*addProductCmd) Name() string     { return "add-product" }
func (*addProductCmd) Synopsis() string { return "register a stock item" }
func (*addProductCmd) Usage() string {
	return `clb add-product -name <name> [-qty <n>] [-min <n>]

  Registers a stock item with its current quantity and minimum threshold.
`
}

func (c *addProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "product name")
	f.IntVar(&c.qty, "qty", 0, "current quantity")
	f.IntVar(&c.min, "min", 0, "minimum quantity threshold")
}

func (c *addProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail(fmt.Errorf("missing -name"))
	}
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	p, err := book.AddProduct(c.name, c.qty, c.min)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added product %s (%s)\n", p.Name, p.ID)
	return subcommands.ExitSuccess
}

type adjustStockCmd struct {
	id    string
	delta int
}

func (*adjustStockCmd) Name() string     { return "stock" }
func (*adjustStockCmd) Synopsis() string { return "adjust a product's stock level" }
func (*adjustStockCmd) Usage() string {
	return `clb stock -id <id> -delta <n>

  Adds delta (positive or negative) to a product's quantity. Stock never goes
  below zero: decrementing an empty stock is a no-op.
`
}

func (c *adjustStockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "product id")
	f.IntVar(&c.delta, "delta", 0, "quantity change")
}

func (c *adjustStockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	if err := book.AdjustProductQuantity(c.id, c.delta); err != nil {
		return fail(err)
	}
	fmt.Println("Adjusted.")
	return subcommands.ExitSuccess
}

type removeProductCmd struct {
	id string
}

func (*removeProductCmd) Name() string     { return "remove-product" }
func (*removeProductCmd) Synopsis() string { return "delete a stock item" }
func (*removeProductCmd) Usage() string {
	return `clb remove-product -id <id>
`
}

func (c *removeProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "product id")
}

func (c *removeProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	if err := book.RemoveProduct(c.id); err != nil {
		return fail(err)
	}
	fmt.Println("Removed.")
	return subcommands.ExitSuccess
}

type productsCmd struct{}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list stock items" }
func (*productsCmd) Usage() string {
	return `clb products

  Lists stock items; items at or below their minimum threshold are flagged.
`
}
func (*productsCmd) SetFlags(*flag.FlagSet) {}

func (*productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Stock")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{"Id", "Name", "Qty", "Min", ""},
	}
	for _, p := range book.Products() {
		low := ""
		if p.Low() {
			low = "LOW"
		}
		table.Rows = append(table.Rows, []string{p.ID, p.Name, fmt.Sprint(p.Quantity), fmt.Sprint(p.MinQuantity), low})
	}
	doc.Table(table)
	printMarkdown(doc.String())
	return subcommands.ExitSuccess
}
