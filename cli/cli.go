package cli

import (
	"errors"
	"fmt"
	flag "github.com/spf13/pflag"
	"regexp"
	"slices"
	"strings"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	HelpPatterns      = []string{"--help", "-h"} // HelpPatterns is a slice of flags that should trigger the output of usage information with the top-level [CommandSet].

	keyCleansePattern = regexp.MustCompile(`\s`)
)

// CommandFunc is a function that may be executed within a [Command].
type CommandFunc = func(flags *flag.FlagSet, printer *Printer) error

// Command is an executable function in a CLI.
// It's created with [CommandSet.AddCommand].
type Command struct {
	flags      *flag.FlagSet
	exec       CommandFunc
	key        string
	parent     string
	shortUsage string
	usage      string
	printer    *Printer
	aliases    []string
}

func cleanseKey(key string) string {
	return keyCleansePattern.ReplaceAllString(strings.ToLower(key), "")
}

func newCommand(key, parent, shortUsage string, printer *Printer) *Command {
	key = cleanseKey(key)
	cmd := &Command{key: key, parent: parent, shortUsage: shortUsage, printer: printer}
	fs := flag.NewFlagSet(key, flag.ContinueOnError)
	fs.BoolP("help", "h", false, "Prints this usage information")
	fs.SetInterspersed(false)
	fs.SetOutput(printer)
	fs.Usage = cmd.PrintUsage
	cmd.flags = fs
	cmd.exec = func(_ *flag.FlagSet, _ *Printer) error {
		cmd.PrintUsage()
		return nil
	}
	return cmd
}

// Does specifies the [CommandFunc] that should be executed by this [Command].
func (c *Command) Does(commandFunc CommandFunc) *Command {
	if commandFunc == nil {
		return c
	}
	c.exec = commandFunc
	return c
}

// CommandPath returns the reference chain for this [Command].
func (c *Command) CommandPath() string {
	if len(c.parent) == 0 {
		return c.key
	}
	return c.parent + " " + c.key
}

// Flags returns the [flag.FlagSet] for this [Command].
func (c *Command) Flags() *flag.FlagSet {
	return c.flags
}

// Printer returns the [Printer] shared with the parent [CommandSet].
func (c *Command) Printer() *Printer {
	return c.printer
}

// Usage allows specifying the argument pattern of the [Command], which is output when a [HelpPatterns] flag is passed.
// The [Command.CommandPath] is prepended to this text.
func (c *Command) Usage(format string, args ...any) *Command {
	c.usage = fmt.Sprintf(format, args...)
	return c
}

// PrintUsage prints the short description, usage pattern, and flag usages with the [Printer].
func (c *Command) PrintUsage() {
	var buf strings.Builder
	buf.WriteString(c.shortUsage)
	buf.WriteString("\n\nUSAGE:\n")
	buf.WriteString(c.CommandPath())
	if len(c.usage) > 0 {
		buf.WriteString(" " + c.usage)
	}
	buf.WriteString("\n\nFLAGS\n")
	buf.WriteString(c.flags.FlagUsages())
	c.printer.Print(buf.String())
}

// Exec executes the command with given arguments, parsing flags.
// If the [CommandFunc] returns a [UsageError], then the error and usage information are printed before returning it.
func (c *Command) Exec(args []string) error {
	if err := c.flags.Parse(args); err != nil {
		return err
	}
	if val, _ := c.flags.GetBool("help"); val {
		c.PrintUsage()
		return nil
	}
	err := c.exec(c.flags, c.printer)
	if IsUsageError(err) {
		c.printer.Println(err.Error())
		c.printer.Println()
		c.PrintUsage()
	}
	return err
}

// CommandSet is a group of [Command].
type CommandSet struct {
	commands map[string]*Command
	aliases  map[string]*Command
	printer  *Printer
	parent   string
}

// NewCommandSet is used to set up a top level [CommandSet] as the root of a CLI's command structure.
//
// Note: the parent(s) passed to this function will be used to populate sub-command usage information.
// So they should only contain the commands used to invoke this [CommandSet].
func NewCommandSet(parent ...string) *CommandSet {
	return &CommandSet{printer: NewPrinter(), parent: strings.Join(parent, " ")}
}

// AddCommand adds a sub-command to this [CommandSet].
// The key parameter will be cleansed to remove spaces, and normalize to lower-case.
// Aliases may be added as a way to support shorter variants of the same [Command].
func (s *CommandSet) AddCommand(key, shortUsage string, aliases ...string) *Command {
	cmd := newCommand(key, s.parent, shortUsage, s.Printer())
	if s.commands == nil {
		s.commands = map[string]*Command{}
	}
	s.commands[cmd.key] = cmd
	for _, alias := range aliases {
		alias = cleanseKey(alias)
		if len(alias) == 0 {
			continue
		}
		if s.aliases == nil {
			s.aliases = map[string]*Command{}
		}
		s.aliases[alias] = cmd
		cmd.aliases = append(cmd.aliases, alias)
	}
	slices.Sort(cmd.aliases)
	return cmd
}

// Printer returns the cached [Printer] for this [CommandSet].
func (s *CommandSet) Printer() *Printer {
	if s.printer == nil {
		s.printer = NewPrinter()
	}
	return s.printer
}

// Exec executes this [CommandSet].
// It's expected that the first argument is the key/alias for a sub-command.
func (s *CommandSet) Exec(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no arguments", ErrUnknownCommand)
	}
	key := strings.ToLower(args[0])
	cmd, ok := s.commands[key]
	if !ok {
		cmd, ok = s.aliases[key]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
		}
	}
	return cmd.Exec(args[1:])
}

// RespondUsage will print usage information with the [Printer] if args is empty or starts with one of [HelpPatterns].
// If usage information was printed, then true will be returned.
func (s *CommandSet) RespondUsage(args []string, format string, vals ...any) bool {
	if len(args) > 0 && !slices.Contains(HelpPatterns, args[0]) {
		return false
	}
	text := fmt.Sprintf(format, vals...)
	if len(text) > 0 {
		text = strings.TrimSuffix("\n\n"+text, "\n")
	}
	s.Printer().Printf("%s%s\n\nCOMMANDS:\n%s", s.parent, text, s.CommandUsages())
	return true
}

// CommandUsages returns a string including the usage information for sub-commands in this [CommandSet].
//
// The sub-command keys will be sorted alphabetically before output.
func (s *CommandSet) CommandUsages() string {
	keys := make([]string, 0, len(s.commands))
	for key := range s.commands {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var (
		buf    strings.Builder
		labels = make([]string, len(keys))
		maxLen int
	)
	for i, key := range keys {
		labels[i] = strings.Join(append([]string{key}, s.commands[key].aliases...), ", ")
		maxLen = max(maxLen, len(labels[i]))
	}
	fmtStr := fmt.Sprintf("  %%-%ds\t%%s\n", maxLen)
	for i, key := range keys {
		buf.WriteString(fmt.Sprintf(fmtStr, labels[i], s.commands[key].shortUsage))
	}
	return buf.String()
}
