package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/mfreitas/clinicbook/cmd"
	"github.com/posener/complete/v2"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	subs := make(map[string]*complete.Command)
	for _, c := range cmd.Commands() {
		commander.Register(c, "")
		subs[c.Name()] = &complete.Command{}
	}

	// Shell completion: a no-op unless invoked by the shell's completion hook.
	completion := &complete.Command{Sub: subs}
	completion.Complete(name)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
