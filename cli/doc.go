/*
Package cli provides the small command structure used by the assertx tool.

There are a few policies for how this operates.

  - User-visible output should go to STDERR by default. This is supported with a configurable [Printer].
  - This package uses [pflag] for posix style flags.
  - Flags should NOT be interspersed. This makes flag and argument parsing much more consistent and predictable.
  - Sub-command aliases are supported as additional, optional parameters to [CommandSet.AddCommand].

# Invocation

Invoking a CLI with sub-commands follows this form:

	CLI_NAME SUB-COMMAND [FLAGS...] [ARGS...]

Just calling CLI_NAME will print usage information for the tool with [CommandSet.RespondUsage].
The '-h' and '--help' flags are set up for every [Command], and print usage information built from [Command.Usage] and the flag set.

Returning a [UsageError] from a [CommandFunc] prints the error along with usage information.

[pflag]: https://github.com/spf13/pflag
*/
package cli
