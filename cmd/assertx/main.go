// Command assertx checks the type of YAML or JSON values from the command line.
package main

import (
	"errors"
	"os"

	"github.com/saylorsolutions/assertx/cli"
)

func main() {
	set := newCommandSet(input{reader: os.Stdin, isTerminal: isTerminal(os.Stdin)})
	if set.RespondUsage(os.Args[1:], `Checks the type of YAML or JSON values with the same rules as the assert package.
Use 'assertx COMMAND --help' for details on a command.`) {
		return
	}
	if err := set.Exec(os.Args[1:]); err != nil {
		if !cli.IsUsageError(err) && !errors.Is(err, errChecksFailed) {
			set.Printer().Failuref("Error: %v", err)
		}
		os.Exit(1)
	}
}

func newCommandSet(in input) *cli.CommandSet {
	set := cli.NewCommandSet("assertx")
	checkCommand(set, in)
	typeOfCommand(set, in)
	levelsCommand(set)
	return set
}
