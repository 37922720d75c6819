package assert

import (
	"fmt"
	"reflect"
	"strings"

	tassert "github.com/stretchr/testify/assert"
)

// Operators used in a [Diagnostic] for comparisons.
const (
	OperatorEqual          = "=="
	OperatorNotEqual       = "!="
	OperatorStrictEqual    = "==="
	OperatorNotStrictEqual = "!=="
	OperatorDeepEqual      = "deepEqual"
	OperatorNotDeepEqual   = "notDeepEqual"
	OperatorThrows         = "throws"
	OperatorDoesNotThrow   = "doesNotThrow"
	OperatorIfError        = "ifError"
	OperatorFail           = "fail"
)

var _ tassert.TestingT = (*failureRecorder)(nil)

// failureRecorder captures the failure text that testify would report to a *testing.T.
type failureRecorder struct {
	failure string
}

func (r *failureRecorder) Errorf(format string, args ...any) {
	r.failure = failureMessage(fmt.Sprintf(format, args...))
}

// failureMessage keeps the Error and Messages sections of testify's labeled output.
// The Error Trace section and any panic stack are dropped.
func failureMessage(out string) string {
	var (
		keep  bool
		lines []string
	)
	for _, line := range strings.Split(out, "\n") {
		label, content, found := strings.Cut(strings.TrimPrefix(line, "\t"), "\t")
		if !found {
			continue
		}
		if name := strings.TrimSuffix(strings.TrimSpace(label), ":"); name != "" {
			keep = name == "Error" || name == "Messages"
		}
		content = strings.TrimRight(content, " \t")
		if strings.HasPrefix(strings.TrimSpace(content), "Panic stack:") {
			keep = false
		}
		if keep && strings.TrimSpace(content) != "" {
			lines = append(lines, content)
		}
	}
	if len(lines) == 0 {
		return strings.TrimSpace(out)
	}
	return strings.Join(lines, "\n")
}

// compare raises whenever the comparison fails and checks are enabled.
// Unlike the type checks, comparison failures are never downgraded to a warning.
func (a *Asserter) compare(origin, operator string, expected, actual any, check func(t tassert.TestingT) bool) {
	if !a.enabled {
		return
	}
	rec := new(failureRecorder)
	if check(rec) {
		return
	}
	raise(Diagnostic{
		Message:  rec.failure,
		Expected: fmt.Sprintf("%#v", expected),
		Actual:   fmt.Sprintf("%#v", actual),
		Operator: operator,
		Origin:   origin,
	})
}

// looselyComparable reports whether actual may be converted to the type of expected before comparing.
// Conversion is only allowed between values of the same kind, or between two numbers.
// This keeps an int from being read as a rune when compared to a string.
func looselyComparable(expected, actual any) bool {
	if expected == nil || actual == nil {
		return true
	}
	ek, ak := reflect.TypeOf(expected).Kind(), reflect.TypeOf(actual).Kind()
	return ek == ak || (isNumericKind(ek) && isNumericKind(ak))
}

func isNumericKind(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Complex128
}

// Equal checks that expected and actual are equal after converting actual to the type of expected.
// Numbers convert between each other, but never to or from strings.
func (a *Asserter) Equal(expected, actual any, msgAndArgs ...any) {
	a.compare("Equal", OperatorEqual, expected, actual, func(t tassert.TestingT) bool {
		if !looselyComparable(expected, actual) {
			return tassert.Equal(t, expected, actual, msgAndArgs...)
		}
		return tassert.EqualValues(t, expected, actual, msgAndArgs...)
	})
}

// NotEqual checks that expected and actual differ after converting actual to the type of expected.
func (a *Asserter) NotEqual(expected, actual any, msgAndArgs ...any) {
	a.compare("NotEqual", OperatorNotEqual, expected, actual, func(t tassert.TestingT) bool {
		if !looselyComparable(expected, actual) {
			return tassert.NotEqual(t, expected, actual, msgAndArgs...)
		}
		return tassert.NotEqualValues(t, expected, actual, msgAndArgs...)
	})
}

// StrictEqual checks that expected and actual have the same type and are equal.
func (a *Asserter) StrictEqual(expected, actual any, msgAndArgs ...any) {
	a.compare("StrictEqual", OperatorStrictEqual, expected, actual, func(t tassert.TestingT) bool {
		return tassert.Exactly(t, expected, actual, msgAndArgs...)
	})
}

// NotStrictEqual checks that expected and actual differ in type or value.
func (a *Asserter) NotStrictEqual(expected, actual any, msgAndArgs ...any) {
	a.compare("NotStrictEqual", OperatorNotStrictEqual, expected, actual, func(t tassert.TestingT) bool {
		return tassert.NotEqual(t, expected, actual, msgAndArgs...)
	})
}

// DeepEqual checks that expected and actual are deeply equal, following pointers and comparing []byte by content.
func (a *Asserter) DeepEqual(expected, actual any, msgAndArgs ...any) {
	a.compare("DeepEqual", OperatorDeepEqual, expected, actual, func(t tassert.TestingT) bool {
		return tassert.Equal(t, expected, actual, msgAndArgs...)
	})
}

// NotDeepEqual checks that expected and actual are not deeply equal.
func (a *Asserter) NotDeepEqual(expected, actual any, msgAndArgs ...any) {
	a.compare("NotDeepEqual", OperatorNotDeepEqual, expected, actual, func(t tassert.TestingT) bool {
		return tassert.NotEqual(t, expected, actual, msgAndArgs...)
	})
}

// Throws checks that fn panics.
func (a *Asserter) Throws(fn func(), msgAndArgs ...any) {
	a.compare("Throws", OperatorThrows, "panic", "return", func(t tassert.TestingT) bool {
		return tassert.Panics(t, fn, msgAndArgs...)
	})
}

// DoesNotThrow checks that fn returns without panicking.
func (a *Asserter) DoesNotThrow(fn func(), msgAndArgs ...any) {
	a.compare("DoesNotThrow", OperatorDoesNotThrow, "return", "panic", func(t tassert.TestingT) bool {
		return tassert.NotPanics(t, fn, msgAndArgs...)
	})
}

// Ok checks that value is true.
func (a *Asserter) Ok(value bool, msgAndArgs ...any) {
	a.compare("Ok", OperatorEqual, true, value, func(t tassert.TestingT) bool {
		return tassert.True(t, value, msgAndArgs...)
	})
}

// IfError fails if err is not nil.
func (a *Asserter) IfError(err error, msgAndArgs ...any) {
	a.compare("IfError", OperatorIfError, nil, err, func(t tassert.TestingT) bool {
		return tassert.NoError(t, err, msgAndArgs...)
	})
}

// Fail always fails with the given message.
func (a *Asserter) Fail(message string, msgAndArgs ...any) {
	a.compare("Fail", OperatorFail, nil, nil, func(t tassert.TestingT) bool {
		return tassert.Fail(t, message, msgAndArgs...)
	})
}

// Equal checks loose equality with the [Default] [Asserter]. See [Asserter.Equal].
func Equal(expected, actual any, msgAndArgs ...any) {
	std.Equal(expected, actual, msgAndArgs...)
}

// NotEqual runs [Asserter.NotEqual] with the [Default] [Asserter].
func NotEqual(expected, actual any, msgAndArgs ...any) {
	std.NotEqual(expected, actual, msgAndArgs...)
}

// StrictEqual runs [Asserter.StrictEqual] with the [Default] [Asserter].
func StrictEqual(expected, actual any, msgAndArgs ...any) {
	std.StrictEqual(expected, actual, msgAndArgs...)
}

// NotStrictEqual runs [Asserter.NotStrictEqual] with the [Default] [Asserter].
func NotStrictEqual(expected, actual any, msgAndArgs ...any) {
	std.NotStrictEqual(expected, actual, msgAndArgs...)
}

// DeepEqual runs [Asserter.DeepEqual] with the [Default] [Asserter].
func DeepEqual(expected, actual any, msgAndArgs ...any) {
	std.DeepEqual(expected, actual, msgAndArgs...)
}

// NotDeepEqual runs [Asserter.NotDeepEqual] with the [Default] [Asserter].
func NotDeepEqual(expected, actual any, msgAndArgs ...any) {
	std.NotDeepEqual(expected, actual, msgAndArgs...)
}

// Throws runs [Asserter.Throws] with the [Default] [Asserter].
func Throws(fn func(), msgAndArgs ...any) {
	std.Throws(fn, msgAndArgs...)
}

// DoesNotThrow runs [Asserter.DoesNotThrow] with the [Default] [Asserter].
func DoesNotThrow(fn func(), msgAndArgs ...any) {
	std.DoesNotThrow(fn, msgAndArgs...)
}

// Ok runs [Asserter.Ok] with the [Default] [Asserter].
func Ok(value bool, msgAndArgs ...any) {
	std.Ok(value, msgAndArgs...)
}

// IfError runs [Asserter.IfError] with the [Default] [Asserter].
func IfError(err error, msgAndArgs ...any) {
	std.IfError(err, msgAndArgs...)
}

// Fail runs [Asserter.Fail] with the [Default] [Asserter].
func Fail(message string, msgAndArgs ...any) {
	std.Fail(message, msgAndArgs...)
}
