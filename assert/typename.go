package assert

import (
	"math"
	"reflect"
)

// Type names reported by [TypeName].
const (
	TypeUndefined = "undefined"
	TypeBoolean   = "boolean"
	TypeFunction  = "function"
	TypeNumber    = "number"
	TypeObject    = "object"
	TypeString    = "string"
)

// TypeName classifies a value into one of the Type* names.
//
// A nil interface value is "undefined".
// Typed nil values, such as a nil pointer, map, or func, are "object" since they represent an absent object rather than an absent value.
// Integers, unsigned integers, and floats are all "number".
func TypeName(v any) string {
	if v == nil {
		return TypeUndefined
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return TypeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return TypeNumber
	case reflect.String:
		return TypeString
	case reflect.Func:
		if rv.IsNil() {
			return TypeObject
		}
		return TypeFunction
	default:
		return TypeObject
	}
}

func isNull(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

func isSequence(v any) bool {
	if v == nil {
		return false
	}
	kind := reflect.TypeOf(v).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

func isBoolean(v any) bool {
	return TypeName(v) == TypeBoolean
}

func isFunction(v any) bool {
	return TypeName(v) == TypeFunction
}

func isNumber(v any) bool {
	if TypeName(v) != TypeNumber {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return true
	}
}

func isObject(v any) bool {
	return TypeName(v) == TypeObject && !isNull(v)
}

func isString(v any) bool {
	return TypeName(v) == TypeString
}

func isTypeOf(v any, typ string) bool {
	return TypeName(v) == typ
}

// isInstanceOf matches the dynamic type of v exactly, or checks that it implements typ when typ is an interface.
// A typed nil is never an instance of anything.
func isInstanceOf(v any, typ reflect.Type) bool {
	if v == nil || typ == nil || isNull(v) {
		return false
	}
	vt := reflect.TypeOf(v)
	if vt == typ {
		return true
	}
	return typ.Kind() == reflect.Interface && vt.Implements(typ)
}
