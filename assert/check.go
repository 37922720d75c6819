package assert

import (
	"fmt"
	"reflect"
	"strings"
)

type noSpec struct{}

// typeCheck builds the four variants of a check from one predicate.
// S is the extra type parameter that advanced checks accept.
type typeCheck[S any] struct {
	suffix   string
	test     func(v any, spec S) bool
	expected func(spec S) string
}

func basicCheck(suffix string, pred func(any) bool) typeCheck[noSpec] {
	label := strings.ToLower(suffix)
	return typeCheck[noSpec]{
		suffix: suffix,
		test: func(v any, _ noSpec) bool {
			return pred(v)
		},
		expected: func(noSpec) string {
			return label
		},
	}
}

var (
	booleanCheck  = basicCheck("Boolean", isBoolean)
	functionCheck = basicCheck("Function", isFunction)
	numberCheck   = basicCheck("Number", isNumber)
	objectCheck   = basicCheck("Object", isObject)
	stringCheck   = basicCheck("String", isString)

	typeOfCheck = typeCheck[string]{
		suffix: "TypeOf",
		test:   isTypeOf,
		expected: func(typ string) string {
			return typ
		},
	}
	instanceOfCheck = typeCheck[reflect.Type]{
		suffix: "InstanceOf",
		test:   isInstanceOf,
		expected: func(typ reflect.Type) string {
			if typ == nil {
				return "<nil>"
			}
			return typ.String()
		},
	}
)

func (c typeCheck[S]) is(a *Asserter, v any, spec S, name string) {
	if !a.enabled {
		return
	}
	if c.test(v, spec) {
		return
	}
	expected, actual := c.expected(spec), TypeName(v)
	a.report(Diagnostic{
		Message:  fmt.Sprintf("%s should be of type %s but is of type %s (%s)", name, expected, actual, describe(v)),
		Expected: expected,
		Actual:   actual,
		Operator: OperatorTypeOf,
		Origin:   "Is" + c.suffix,
	})
}

func (c typeCheck[S]) isOptional(a *Asserter, v any, spec S, name string) {
	if !a.enabled || v == nil {
		return
	}
	c.is(a, v, spec, name)
}

// isArrayOf reports every failing element rather than stopping at the first.
func (c typeCheck[S]) isArrayOf(a *Asserter, v any, spec S, name string) {
	if !a.enabled {
		return
	}
	origin := "IsArrayOf" + c.suffix
	if !isSequence(v) {
		actual := TypeName(v)
		a.report(Diagnostic{
			Message:  fmt.Sprintf("%s should be an array but is of type %s (%s)", name, actual, describe(v)),
			Expected: "array",
			Actual:   actual,
			Operator: OperatorTypeOf,
			Origin:   origin,
		})
		return
	}
	rv := reflect.ValueOf(v)
	expected := c.expected(spec)
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		if c.test(elem, spec) {
			continue
		}
		actual := TypeName(elem)
		a.report(Diagnostic{
			Message:  fmt.Sprintf("index %d in array %s should be of type %s but is of type %s (%s)", i, name, expected, actual, describe(elem)),
			Expected: expected,
			Actual:   actual,
			Operator: OperatorTypeOf,
			Origin:   origin,
		})
	}
}

func (c typeCheck[S]) isOptionalArrayOf(a *Asserter, v any, spec S, name string) {
	if !a.enabled || v == nil {
		return
	}
	c.isArrayOf(a, v, spec, name)
}
