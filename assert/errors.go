package assert

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAssertionFailed is matched by every [*AssertionError] with [errors.Is].
var ErrAssertionFailed = errors.New("assertion failed")

// Operators used in a [Diagnostic] for type checks.
const (
	OperatorTypeOf = "typeof"
)

// Diagnostic describes a single failed check.
type Diagnostic struct {
	Message  string // Message is the human-readable description of the failure.
	Expected string // Expected is the expected type or value.
	Actual   string // Actual is the type or value that was found instead.
	Operator string // Operator is the comparison that failed, like "typeof" or "==".
	Origin   string // Origin is the name of the check function that failed, like "IsArrayOfNumber".
}

// AssertionError is raised with panic when an [Asserter] at [LevelAssert] sees a failed check.
type AssertionError struct {
	Diagnostic
	Caller string // Caller is the file and line of the first frame outside of this package.
}

func (e *AssertionError) Error() string {
	if e == nil {
		return ErrAssertionFailed.Error()
	}
	return fmt.Sprintf("assertion '%s' failed at %s: %s", e.Origin, e.Caller, e.Message)
}

// Unwrap allows matching [ErrAssertionFailed] with [errors.Is].
func (e *AssertionError) Unwrap() error {
	return ErrAssertionFailed
}

// Catch calls fn and returns the [*AssertionError] it panicked with, if any.
// Panics with any other value are propagated.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var aerr *AssertionError
		if rerr, ok := r.(error); ok && errors.As(rerr, &aerr) {
			err = aerr
			return
		}
		panic(r)
	}()
	fn()
	return nil
}

// Collector collects errors and can join them with the specified join string.
// This is a little bit more convenient than maintaining a slice and using [errors.Join].
//
// A Collector is itself an error, so it can be returned directly and compared with [errors.Is] or [errors.As].
//
// Note that a Collector is not concurrency safe.
type Collector struct {
	errs    []error
	joinStr string
}

// CollectErrors creates a new Collector, optionally with a join string that differs from the default of "\n".
func CollectErrors(joinString ...string) *Collector {
	joinStr := "\n"
	if len(joinString) > 0 {
		joinStr = joinString[0]
	}
	return &Collector{
		joinStr: joinStr,
	}
}

// Add adds a new, potentially nil error to the Collector.
// Nil errors will not be included.
func (c *Collector) Add(err error) *Collector {
	if err != nil {
		c.errs = append(c.errs, err)
	}
	return c
}

// AddCaught runs fn with [Catch] and adds the resulting error, if any.
func (c *Collector) AddCaught(fn func()) *Collector {
	return c.Add(Catch(fn))
}

// AddString allows creating an error string using [fmt.Errorf], which means that the "%w" format string may be used.
func (c *Collector) AddString(msg string, args ...any) *Collector {
	return c.Add(fmt.Errorf(msg, args...))
}

// Len returns the number of errors collected so far.
func (c *Collector) Len() int {
	return len(c.errs)
}

// Result will return nil if no errors have been added to the Collector.
// Otherwise, it will return itself.
//
// This is provided because returning an empty Collector is still returning a non-nil error.
func (c *Collector) Result() error {
	if len(c.errs) > 0 {
		return c
	}
	return nil
}

// Error satisfies the error interface.
func (c *Collector) Error() string {
	var buf strings.Builder
	for i, err := range c.errs {
		if i > 0 {
			buf.WriteString(c.joinStr)
		}
		buf.WriteString(err.Error())
	}
	return buf.String()
}

// Unwrap allows using [errors.Is] and [errors.As] to identify any error in the Collector.
func (c *Collector) Unwrap() []error {
	return c.errs
}
