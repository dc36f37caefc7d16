package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"
	"github.com/mfreitas/clinicbook"
)

type addReceiptCmd struct {
	value        string
	professional string
	service      string
	method       string
	when         string
}

func (*addReceiptCmd) Name() string     { return "receipt" }
func (*addReceiptCmd) Synopsis() string { return "record a paid service" }
func (*addReceiptCmd) Usage() string {
	return `clb receipt -value <amount> -professional <id> -service <key> -method <pix|cash|card|insurance-partner> [-t <RFC3339 time>]

  Records a receipt. The commission split is computed from the professional's
  current percentage and stored on the receipt, together with a snapshot of
  their name.
`
}

func (c *addReceiptCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.value, "value", "", "gross value")
	f.StringVar(&c.professional, "professional", "", "professional id")
	f.StringVar(&c.service, "service", "", "service type key")
	f.StringVar(&c.method, "method", "", "payment method")
	f.StringVar(&c.when, "t", "", "timestamp (RFC3339), defaults to now")
}

func (c *addReceiptCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	gross, err := clinicbook.ParseMoney(c.value)
	if err != nil {
		return fail(err)
	}
	method, err := clinicbook.ParsePaymentMethod(c.method)
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
	r, err := book.AddReceipt(gross, c.professional, c.service, method, when)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Receipt %s: %s gross, %s to %s, %s to the clinic\n",
		r.ID, r.Gross, r.ProfessionalValue, r.ProfessionalName, r.NetClinic)
	return subcommands.ExitSuccess
}

type removeReceiptCmd struct {
	id string
}

func (*removeReceiptCmd) Name() string     { return "remove-receipt" }
func (*removeReceiptCmd) Synopsis() string { return "delete a receipt" }
func (*removeReceiptCmd) Usage() string {
	return `clb remove-receipt -id <id>

  Deletes a receipt. Receipts are never edited in place, delete and re-enter.
`
}

func (c *removeReceiptCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "receipt id")
}

func (c *removeReceiptCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	if err := book.RemoveReceipt(c.id); err != nil {
		return fail(err)
	}
	fmt.Println("Removed.")
	return subcommands.ExitSuccess
}
