package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type inspectCmd struct {
	query string
}

func (*inspectCmd) Name() string     { return "inspect" }
func (*inspectCmd) Synopsis() string { return "query the raw data file with a jsonpath" }
func (*inspectCmd) Usage() string {
	return `clb inspect -q <jsonpath>

  Runs a jsonpath query against the raw data file and prints the result as
  JSON. Handy to debug the stored state, e.g.:

      clb inspect -q '$.receipts[?(@.paymentMethod=="cash")].grossValue'
`
}

func (c *inspectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "$", "jsonpath query")
}

func (c *inspectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := session().Require(); err != nil {
		return fail(err)
	}
	raw, err := os.ReadFile(*dataFile)
	if err != nil {
		return fail(fmt.Errorf("cannot read data file %q: %w", *dataFile, err))
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return fail(fmt.Errorf("data file %q is not valid JSON: %w", *dataFile, err))
	}
	jval, err := jsonpath.Get(c.query, jobj)
	if err != nil {
		return fail(fmt.Errorf("error evaluating %q: %w", c.query, err))
	}
	out, err := json.MarshalIndent(jval, "", "  ")
	if err != nil {
		return fail(err)
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
