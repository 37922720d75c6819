package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

var errNoValues = errors.New("no values given")

// input is where values are read from when none are passed as arguments.
type input struct {
	reader     io.Reader
	isTerminal bool
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// readValues decodes each argument as a YAML document.
// With no arguments, every document on a non-terminal input is decoded instead.
func (in input) readValues(args []string) ([]any, error) {
	if len(args) > 0 {
		values := make([]any, len(args))
		for i, arg := range args {
			if err := yaml.Unmarshal([]byte(arg), &values[i]); err != nil {
				return nil, fmt.Errorf("failed to decode argument %d: %w", i, err)
			}
		}
		return values, nil
	}
	if in.reader == nil || in.isTerminal {
		return nil, errNoValues
	}
	var values []any
	dec := yaml.NewDecoder(in.reader)
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode input document %d: %w", len(values), err)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, errNoValues
	}
	return values, nil
}

func valueName(base string, i, total int) string {
	if total == 1 {
		return base
	}
	return fmt.Sprintf("%s[%d]", base, i)
}
