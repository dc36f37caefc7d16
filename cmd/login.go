package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type loginCmd struct {
	user string
	pass string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "open a session to unlock the data commands" }
func (*loginCmd) Usage() string {
	return `clb login -u <user> -p <password>

  Checks the credentials and sets the session flag. The flag lives in its own
  file, separate from the ledger data.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "u", "", "username")
	f.StringVar(&c.pass, "p", "", "password")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := session().Login(c.user, c.pass); err != nil {
		return fail(err)
	}
	fmt.Println("Logged in.")
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "clear the session flag" }
func (*logoutCmd) Usage() string {
	return `clb logout

  Clears the session flag. Ledger data is untouched.
`
}
func (*logoutCmd) SetFlags(*flag.FlagSet) {}

func (*logoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := session().Logout(); err != nil {
		return fail(err)
	}
	fmt.Println("Logged out.")
	return subcommands.ExitSuccess
}
