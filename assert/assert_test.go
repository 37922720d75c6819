//go:build !noassert

package assert_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"os"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/saylorsolutions/assertx/assert"
)

type celsius float64

type row struct {
	name   string
	value  any
	passes string // passes is the basic type this value satisfies, if any.
}

var rows = []row{
	{name: "nil", value: nil},
	{name: "nil pointer", value: (*int)(nil)},
	{name: "true", value: true, passes: assert.TypeBoolean},
	{name: "false", value: false, passes: assert.TypeBoolean},
	{name: "int", value: 42, passes: assert.TypeNumber},
	{name: "zero", value: 0, passes: assert.TypeNumber},
	{name: "uint8", value: uint8(3), passes: assert.TypeNumber},
	{name: "negative float", value: -1.5, passes: assert.TypeNumber},
	{name: "named float", value: celsius(21.5), passes: assert.TypeNumber},
	{name: "NaN", value: math.NaN()},
	{name: "+Inf", value: math.Inf(1)},
	{name: "-Inf", value: math.Inf(-1)},
	{name: "empty string", value: "", passes: assert.TypeString},
	{name: "string", value: "string", passes: assert.TypeString},
	{name: "func", value: func() {}, passes: assert.TypeFunction},
	{name: "nil func", value: (func())(nil)},
	{name: "struct", value: struct{}{}, passes: assert.TypeObject},
	{name: "map", value: map[string]int{}, passes: assert.TypeObject},
	{name: "nil map", value: map[string]int(nil)},
	{name: "slice", value: []int{1}, passes: assert.TypeObject},
	{name: "array", value: [2]int{}, passes: assert.TypeObject},
	{name: "pointer", value: &struct{}{}, passes: assert.TypeObject},
	{name: "chan", value: make(chan int), passes: assert.TypeObject},
	{name: "complex", value: complex(1, 2), passes: assert.TypeObject},
}

var basicChecks = map[string]func(a *assert.Asserter, v any, name string){
	assert.TypeBoolean:  (*assert.Asserter).IsBoolean,
	assert.TypeFunction: (*assert.Asserter).IsFunction,
	assert.TypeNumber:   (*assert.Asserter).IsNumber,
	assert.TypeObject:   (*assert.Asserter).IsObject,
	assert.TypeString:   (*assert.Asserter).IsString,
}

func newAsserter(level assert.Level) (*assert.Asserter, *bytes.Buffer) {
	var buf bytes.Buffer
	return assert.New(assert.Config{
		Level:  level,
		Logger: slog.New(slog.NewJSONHandler(&buf, nil)),
	}), &buf
}

func failure(t *testing.T, fn func()) *assert.AssertionError {
	t.Helper()
	err := assert.Catch(fn)
	require.Error(t, err, "Should have failed")
	require.ErrorIs(t, err, assert.ErrAssertionFailed)
	var aerr *assert.AssertionError
	require.ErrorAs(t, err, &aerr)
	return aerr
}

func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var result []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if len(line) == 0 {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		result = append(result, rec)
	}
	return result
}

func TestBasicChecks_Assert(t *testing.T) {
	a, _ := newAsserter(assert.LevelAssert)
	for typ, check := range basicChecks {
		for _, r := range rows {
			t.Run(typ+"/"+r.name, func(t *testing.T) {
				err := assert.Catch(func() {
					check(a, r.value, "arg")
				})
				if r.passes == typ {
					require.NoError(t, err)
					return
				}
				aerr := failure(t, func() {
					check(a, r.value, "arg")
				})
				require.Equal(t, typ, aerr.Expected)
				require.Equal(t, assert.TypeName(r.value), aerr.Actual)
				require.Equal(t, assert.OperatorTypeOf, aerr.Operator)
			})
		}
	}
}

func TestBasicChecks_Warn(t *testing.T) {
	for typ, check := range basicChecks {
		t.Run(typ, func(t *testing.T) {
			a, buf := newAsserter(assert.LevelWarn)
			expected := 0
			for _, r := range rows {
				if r.passes != typ {
					expected++
				}
				require.NotPanics(t, func() {
					check(a, r.value, "arg")
				})
			}
			recs := records(t, buf)
			require.Len(t, recs, expected, "Should log exactly once per failing value")
			for _, rec := range recs {
				require.Equal(t, "WARN", rec["level"])
				require.Equal(t, "assertionError", rec["op"])
				require.Equal(t, typ, rec["expected"])
				require.Equal(t, "typeof", rec["operator"])
				require.True(t, strings.HasPrefix(rec["stack"].(string), "Is"))
			}
		})
	}
}

func TestNone_NoOp(t *testing.T) {
	a, buf := newAsserter(assert.LevelNone)
	require.False(t, a.Enabled())
	require.NotPanics(t, func() {
		for _, check := range basicChecks {
			for _, r := range rows {
				check(a, r.value, "arg")
			}
		}
		a.IsArrayOfNumber("not an array", "arg")
		a.IsOptionalArrayOfString(42, "arg")
		a.IsTypeOf(1, "string", "arg")
		a.IsArrayOfInstanceOf(1, nil, "arg")
		a.Equal(1, 2)
		a.StrictEqual(1, "1")
		a.Throws(func() {})
		a.Fail("always")
	})
	require.Empty(t, buf.String())
}

func TestScenarios(t *testing.T) {
	a, _ := newAsserter(assert.LevelAssert)

	require.NoError(t, assert.Catch(func() { a.IsBoolean(true, "flag") }))

	aerr := failure(t, func() { a.IsBoolean(42, "flag") })
	require.Equal(t, "boolean", aerr.Expected)
	require.Equal(t, "number", aerr.Actual)
	require.Equal(t, "IsBoolean", aerr.Origin)
	require.Equal(t, "flag should be of type boolean but is of type number (42)", aerr.Message)

	require.NoError(t, assert.Catch(func() { a.IsString("", "name") }))

	aerr = failure(t, func() { a.IsArrayOfNumber([]any{1, 2, "x"}, "nums") })
	require.Equal(t, "number", aerr.Expected)
	require.Equal(t, "string", aerr.Actual)
	require.Equal(t, "IsArrayOfNumber", aerr.Origin)
	require.Contains(t, aerr.Message, "index 2 in array nums")

	require.NoError(t, assert.Catch(func() { a.IsOptionalNumber(nil, "age") }))
	require.NoError(t, assert.Catch(func() { a.IsTypeOf((*struct{})(nil), "object", "val") }))
	require.NoError(t, assert.Catch(func() { a.IsTypeOf(nil, "undefined", "val") }))
}

func TestOptional(t *testing.T) {
	a, _ := newAsserter(assert.LevelAssert)
	for typ, check := range map[string]func(a *assert.Asserter, v any, name string){
		assert.TypeBoolean:  (*assert.Asserter).IsOptionalBoolean,
		assert.TypeFunction: (*assert.Asserter).IsOptionalFunction,
		assert.TypeNumber:   (*assert.Asserter).IsOptionalNumber,
		assert.TypeObject:   (*assert.Asserter).IsOptionalObject,
		assert.TypeString:   (*assert.Asserter).IsOptionalString,
	} {
		t.Run(typ, func(t *testing.T) {
			require.NoError(t, assert.Catch(func() { check(a, nil, "arg") }))
			aerr := failure(t, func() { check(a, (*int)(nil), "arg") })
			require.Equal(t, "Is"+strings.ToUpper(typ[:1])+typ[1:], aerr.Origin, "Optional variants delegate to the base check")
		})
	}
}

func TestArrayOf(t *testing.T) {
	a, _ := newAsserter(assert.LevelAssert)

	require.NoError(t, assert.Catch(func() { a.IsArrayOfNumber([]int{1, 2, 3}, "ints") }))
	require.NoError(t, assert.Catch(func() { a.IsArrayOfString([3]string{"a", "b", ""}, "strs") }))
	require.NoError(t, assert.Catch(func() { a.IsArrayOfBoolean([]bool(nil), "nil slice") }))
	require.NoError(t, assert.Catch(func() { a.IsArrayOfObject([]any{}, "empty") }))
	require.NoError(t, assert.Catch(func() { a.IsOptionalArrayOfString(nil, "absent") }))

	for name, v := range map[string]any{
		"string": "abc",
		"nil":    nil,
		"map":    map[int]int{0: 1},
	} {
		t.Run("Not a sequence/"+name, func(t *testing.T) {
			aerr := failure(t, func() { a.IsArrayOfNumber(v, "arg") })
			require.Equal(t, "array", aerr.Expected)
			require.Equal(t, assert.TypeName(v), aerr.Actual)
			require.Equal(t, "IsArrayOfNumber", aerr.Origin)
		})
	}

	aerr := failure(t, func() { a.IsOptionalArrayOfFunction([]any{func() {}, nil}, "handlers") })
	require.Equal(t, "function", aerr.Expected)
	require.Equal(t, "undefined", aerr.Actual)
	require.Contains(t, aerr.Message, "index 1 in array handlers")
}

// Each failing element is reported on its own, rather than stopping at the first.
// At LevelAssert the first panic ends the scan, so this is only visible at LevelWarn.
func TestArrayOf_WarnReportsEveryElement(t *testing.T) {
	a, buf := newAsserter(assert.LevelWarn)
	a.IsArrayOfNumber([]any{"a", 1, "b", 2.5, true}, "mixed")
	recs := records(t, buf)
	require.Len(t, recs, 3)
	require.Contains(t, recs[0]["msg"], "index 0 in array mixed")
	require.Contains(t, recs[1]["msg"], "index 2 in array mixed")
	require.Contains(t, recs[2]["msg"], "index 4 in array mixed")
	require.Equal(t, "boolean", recs[2]["actual"])
	for _, rec := range recs {
		require.Equal(t, "IsArrayOfNumber", rec["stack"])
	}
}

func TestArrayOf_WarnNotASequence(t *testing.T) {
	a, buf := newAsserter(assert.LevelWarn)
	a.IsArrayOfString("abc", "letters")
	recs := records(t, buf)
	require.Len(t, recs, 1, "A non-sequence is reported once without scanning")
	require.Equal(t, "array", recs[0]["expected"])
}

func TestTypeOf(t *testing.T) {
	a, _ := newAsserter(assert.LevelAssert)
	for _, r := range rows {
		t.Run(r.name, func(t *testing.T) {
			require.NoError(t, assert.Catch(func() { a.IsTypeOf(r.value, assert.TypeName(r.value), "arg") }))
		})
	}
	aerr := failure(t, func() { a.IsTypeOf(1, "string", "arg") })
	require.Equal(t, "string", aerr.Expected)
	require.Equal(t, "number", aerr.Actual)
	require.Equal(t, "IsTypeOf", aerr.Origin)

	require.NoError(t, assert.Catch(func() { a.IsArrayOfTypeOf([]any{"a", "b"}, "string", "arg") }))
	require.NoError(t, assert.Catch(func() { a.IsOptionalTypeOf(nil, "string", "arg") }))
	require.NoError(t, assert.Catch(func() { a.IsOptionalArrayOfTypeOf(nil, "string", "arg") }))
	aerr = failure(t, func() { a.IsArrayOfTypeOf([]any{"a", 1}, "string", "arg") })
	require.Equal(t, "IsArrayOfTypeOf", aerr.Origin)
}

func TestInstanceOf(t *testing.T) {
	a, _ := newAsserter(assert.LevelAssert)
	errType := reflect.TypeOf((*error)(nil)).Elem()
	pathErrType := reflect.TypeOf((**os.PathError)(nil)).Elem()

	require.NoError(t, assert.Catch(func() { a.IsInstanceOf(errors.New("x"), errType, "err") }))
	require.NoError(t, assert.Catch(func() { a.IsInstanceOf(&os.PathError{}, pathErrType, "err") }))
	require.NoError(t, assert.Catch(func() { a.IsInstanceOf(&os.PathError{}, errType, "err") }))
	require.NoError(t, assert.Catch(func() { a.IsOptionalInstanceOf(nil, pathErrType, "err") }))
	require.NoError(t, assert.Catch(func() {
		a.IsArrayOfInstanceOf([]error{errors.New("a"), &os.PathError{}}, errType, "errs")
	}))
	require.NoError(t, assert.Catch(func() { a.IsOptionalArrayOfInstanceOf(nil, errType, "errs") }))

	aerr := failure(t, func() { a.IsInstanceOf(errors.New("x"), pathErrType, "err") })
	require.Equal(t, "*fs.PathError", aerr.Expected)
	require.Equal(t, "IsInstanceOf", aerr.Origin)

	aerr = failure(t, func() { a.IsInstanceOf("x", nil, "arg") })
	require.Equal(t, "<nil>", aerr.Expected)

	aerr = failure(t, func() { a.IsInstanceOf(nil, errType, "err") })
	require.Equal(t, "undefined", aerr.Actual)

	aerr = failure(t, func() { a.IsArrayOfInstanceOf([]any{errors.New("a"), 1}, errType, "errs") })
	require.Contains(t, aerr.Message, "index 1 in array errs")

	var nilPathErr *os.PathError
	aerr = failure(t, func() { a.IsInstanceOf(nilPathErr, pathErrType, "err") })
	require.Equal(t, "object", aerr.Actual)
	require.Equal(t, "IsInstanceOf", aerr.Origin)
	failure(t, func() { a.IsInstanceOf(nilPathErr, errType, "err") })
	failure(t, func() { a.IsObject(nilPathErr, "err") })
	aerr = failure(t, func() { a.IsArrayOfInstanceOf([]*os.PathError{{}, nil}, pathErrType, "errs") })
	require.Contains(t, aerr.Message, "index 1 in array errs")
}

func TestAssertionError_Caller(t *testing.T) {
	a, _ := newAsserter(assert.LevelAssert)
	aerr := failure(t, func() { a.IsString(1, "arg") })
	require.Contains(t, aerr.Caller, "assert_test.go")
	require.Contains(t, aerr.Error(), "assertion 'IsString' failed at")
}

func TestCatch_OtherPanics(t *testing.T) {
	require.PanicsWithValue(t, "not an assertion", func() {
		_ = assert.Catch(func() {
			panic("not an assertion")
		})
	})
	require.NoError(t, assert.Catch(func() {}))
}

func TestMessageTruncation(t *testing.T) {
	a, _ := newAsserter(assert.LevelAssert)
	aerr := failure(t, func() { a.IsNumber(strings.Repeat("x", 500), "long") })
	require.Contains(t, aerr.Message, "(truncated 300 chars)")
	require.Less(t, len(aerr.Message), 300)

	// Each é is two bytes, so the cut has to back up one byte to stay on a rune boundary.
	aerr = failure(t, func() { a.IsNumber("x"+strings.Repeat("é", 150), "accented") })
	require.True(t, utf8.ValidString(aerr.Message))
	require.Contains(t, aerr.Message, "(truncated 102 chars)")
}

func TestDefault(t *testing.T) {
	require.Equal(t, assert.LevelFromEnv(), assert.Default().Level())
	require.Equal(t, assert.Default().Enabled(), assert.Enabled())
	if assert.Enabled() {
		t.Skip("Package level no-op behavior needs " + assert.EnvKey + " to be unset")
	}
	require.NotPanics(t, func() {
		assert.IsBoolean(1, "arg")
		assert.IsArrayOfString("x", "arg")
		assert.IsOptionalObject(1, "arg")
		assert.IsTypeOf(1, "string", "arg")
		assert.IsInstanceOf(1, reflect.TypeOf((*error)(nil)).Elem(), "arg")
		assert.Equal(1, 2)
		assert.Fail("nope")
	})
}
