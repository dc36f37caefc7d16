// Package cmd implements the CLI application that keeps the clinic's books.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/mfreitas/clinicbook"
)

// Environment variables mirroring the global flags, so wrappers and scripts
// can configure clb without repeating flags.
const (
	EnvDataFile    = "CLB_DATA_FILE"
	EnvSessionFile = "CLB_SESSION_FILE"
	EnvCurrency    = "CLB_CURRENCY"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var dataFile = flag.String("data-file", envOr(EnvDataFile, "clinicbook.json"), "Path to the clinic data file (single JSON slot)")
var sessionFile = flag.String("session-file", envOr(EnvSessionFile, ".clb-session"), "Path to the session flag file")
var currency = flag.String("currency", envOr(EnvCurrency, "BRL"), "ISO currency code used to display amounts")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Commands returns all clb subcommands. A main package registers them on a
// commander and executes the user-selected one.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&loginCmd{},
		&logoutCmd{},

		&addProfessionalCmd{},
		&updateProfessionalCmd{},
		&removeProfessionalCmd{},
		&professionalsCmd{},

		&addReceiptCmd{},
		&removeReceiptCmd{},
		&addExpenseCmd{},
		&removeExpenseCmd{},

		&addPatientCmd{},
		&removePatientCmd{},
		&patientsCmd{},

		&addProductCmd{},
		&adjustStockCmd{},
		&removeProductCmd{},
		&productsCmd{},

		&setCashCmd{},
		&addServiceTypeCmd{},
		&removeServiceTypeCmd{},

		&dailyCmd{},
		&monthlyCmd{},
		&breakdownCmd{},

		&exportCmd{},
		&importCmd{},
		&inspectCmd{},
		&topicCmd{},
	}
}

// session returns the authentication gate over its flag file.
func session() *clinicbook.Session {
	return clinicbook.NewSession(*sessionFile)
}

// openBook checks the session and loads the book from the data file. All data
// commands go through here: the core is only reachable once the gate signals
// authenticated.
func openBook() (*clinicbook.Book, error) {
	if err := session().Require(); err != nil {
		return nil, err
	}
	clinicbook.SetCurrency(*currency)
	return clinicbook.LoadBook(clinicbook.NewFileStore(*dataFile))
}

// fail prints the error and returns the failure status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the terminal renderer is unavailable.
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
