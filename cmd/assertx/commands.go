package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/saylorsolutions/assertx/assert"
	"github.com/saylorsolutions/assertx/cli"
	"github.com/saylorsolutions/assertx/env"
	"github.com/saylorsolutions/assertx/slogx"
)

var errChecksFailed = errors.New("checks failed")

type checkFunc = func(v any, name string)

func levelNames() []string {
	names := make([]string, len(assert.Levels))
	for i, level := range assert.Levels {
		names[i] = level.String()
	}
	return names
}

func checkCommand(set *cli.CommandSet, in input) {
	cmd := set.AddCommand("check", "Checks that values are of a type", "c")
	cmd.Usage("--type TYPE [FLAGS] [VALUE...]")
	flags := cmd.Flags()
	flags.StringP("type", "t", "", "The type to check for: boolean, function, number, object, string, or typeof")
	flags.String("of", "", "The type name to match with --type typeof")
	flags.BoolP("array", "a", false, "Checks that the value is an array where each element is of the type")
	flags.BoolP("optional", "o", false, "Allows null values")
	flags.StringP("name", "n", "value", "The name used to describe the value in diagnostics")
	flags.StringP("level", "l", env.OneOf(assert.EnvKey, assert.LevelAssert.String(), levelNames()...), "The assertion level: assert, warn, or none")
	flags.String("log-file", "", "Also write warnings to this file as JSON")

	cmd.Does(func(flags *flag.FlagSet, p *cli.Printer) error {
		var (
			typ      = cli.MustGet(flags.GetString("type"))
			of       = cli.MustGet(flags.GetString("of"))
			array    = cli.MustGet(flags.GetBool("array"))
			optional = cli.MustGet(flags.GetBool("optional"))
			name     = cli.MustGet(flags.GetString("name"))
			levelStr = cli.MustGet(flags.GetString("level"))
			logFile  = cli.MustGet(flags.GetString("log-file"))
		)
		if !slices.Contains(levelNames(), strings.ToLower(levelStr)) {
			return cli.NewUsageError("unknown level '%s'", levelStr)
		}
		values, err := in.readValues(flags.Args())
		if err != nil {
			if errors.Is(err, errNoValues) {
				return cli.NewUsageError("%w", err)
			}
			return err
		}

		handler := slog.Handler(slog.NewTextHandler(p, &slog.HandlerOptions{Level: slog.LevelWarn}))
		if len(logFile) > 0 {
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			defer func() {
				_ = f.Close()
			}()
			handler = slogx.MergeHandlers(handler, slog.NewJSONHandler(f, nil))
		}
		counter := slogx.NewCountingHandler(handler, slog.LevelWarn)
		asserter := assert.New(assert.Config{
			Level:  assert.ParseLevel(levelStr),
			Logger: slog.New(counter),
		})
		check, err := selectCheck(asserter, typ, of, array, optional)
		if err != nil {
			return err
		}
		return runChecks(p, asserter, check, values, name, counter)
	})
}

// selectCheck picks one of the four variants of the check for typ.
func selectCheck(a *assert.Asserter, typ, of string, array, optional bool) (checkFunc, error) {
	var variants [4]checkFunc
	switch strings.ToLower(typ) {
	case assert.TypeBoolean:
		variants = [4]checkFunc{a.IsBoolean, a.IsOptionalBoolean, a.IsArrayOfBoolean, a.IsOptionalArrayOfBoolean}
	case assert.TypeFunction:
		variants = [4]checkFunc{a.IsFunction, a.IsOptionalFunction, a.IsArrayOfFunction, a.IsOptionalArrayOfFunction}
	case assert.TypeNumber:
		variants = [4]checkFunc{a.IsNumber, a.IsOptionalNumber, a.IsArrayOfNumber, a.IsOptionalArrayOfNumber}
	case assert.TypeObject:
		variants = [4]checkFunc{a.IsObject, a.IsOptionalObject, a.IsArrayOfObject, a.IsOptionalArrayOfObject}
	case assert.TypeString:
		variants = [4]checkFunc{a.IsString, a.IsOptionalString, a.IsArrayOfString, a.IsOptionalArrayOfString}
	case "typeof":
		if len(of) == 0 {
			return nil, cli.NewUsageError("--of is required with --type typeof")
		}
		variants = [4]checkFunc{
			func(v any, name string) { a.IsTypeOf(v, of, name) },
			func(v any, name string) { a.IsOptionalTypeOf(v, of, name) },
			func(v any, name string) { a.IsArrayOfTypeOf(v, of, name) },
			func(v any, name string) { a.IsOptionalArrayOfTypeOf(v, of, name) },
		}
	case "":
		return nil, cli.NewUsageError("--type is required")
	default:
		return nil, cli.NewUsageError("unknown type '%s'", typ)
	}
	idx := 0
	if optional {
		idx |= 1
	}
	if array {
		idx |= 2
	}
	return variants[idx], nil
}

func runChecks(p *cli.Printer, a *assert.Asserter, check checkFunc, values []any, name string, counter *slogx.CountingHandler) error {
	if !a.Enabled() {
		p.Println("Assertions are disabled, nothing was checked")
		return nil
	}
	errs := assert.CollectErrors()
	for i, v := range values {
		errs.AddCaught(func() {
			check(v, valueName(name, i, len(values)))
		})
	}
	if a.Level() == assert.LevelWarn {
		p.Printf("%d value(s) checked, %d warning(s)\n", len(values), counter.Count())
		return nil
	}
	for _, err := range errs.Unwrap() {
		var aerr *assert.AssertionError
		if errors.As(err, &aerr) {
			p.Failuref("FAIL: %s", aerr.Message)
		}
	}
	if errs.Len() > 0 {
		p.Printf("%d of %d value(s) failed\n", errs.Len(), len(values))
		return fmt.Errorf("%w: %d of %d", errChecksFailed, errs.Len(), len(values))
	}
	p.Printf("%d value(s) passed\n", len(values))
	return nil
}

func typeOfCommand(set *cli.CommandSet, in input) {
	cmd := set.AddCommand("typeof", "Prints the type name of values", "t")
	cmd.Usage("[VALUE...]")
	cmd.Does(func(flags *flag.FlagSet, p *cli.Printer) error {
		values, err := in.readValues(flags.Args())
		if err != nil {
			if errors.Is(err, errNoValues) {
				return cli.NewUsageError("%w", err)
			}
			return err
		}
		for i, v := range values {
			p.Printf("%s: %s\n", valueName("value", i, len(values)), assert.TypeName(v))
		}
		return nil
	})
}

func levelsCommand(set *cli.CommandSet) {
	cmd := set.AddCommand("levels", "Lists the assertion levels, marking the one configured with "+assert.EnvKey)
	cmd.Does(func(_ *flag.FlagSet, p *cli.Printer) error {
		current := assert.LevelFromEnv()
		for _, level := range assert.Levels {
			marker := " "
			if level == current {
				marker = "*"
			}
			p.Printf("%s %s\n", marker, level)
		}
		return nil
	})
}
