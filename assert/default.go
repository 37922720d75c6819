package assert

import "reflect"

// IsBoolean checks that v is true or false, using the [Default] [Asserter].
func IsBoolean(v any, name string) {
	std.IsBoolean(v, name)
}

// IsOptionalBoolean runs [Asserter.IsOptionalBoolean] with the [Default] [Asserter].
func IsOptionalBoolean(v any, name string) {
	std.IsOptionalBoolean(v, name)
}

// IsArrayOfBoolean runs [Asserter.IsArrayOfBoolean] with the [Default] [Asserter].
func IsArrayOfBoolean(v any, name string) {
	std.IsArrayOfBoolean(v, name)
}

// IsOptionalArrayOfBoolean runs [Asserter.IsOptionalArrayOfBoolean] with the [Default] [Asserter].
func IsOptionalArrayOfBoolean(v any, name string) {
	std.IsOptionalArrayOfBoolean(v, name)
}

// IsFunction checks that v is a non-nil func, using the [Default] [Asserter].
func IsFunction(v any, name string) {
	std.IsFunction(v, name)
}

// IsOptionalFunction runs [Asserter.IsOptionalFunction] with the [Default] [Asserter].
func IsOptionalFunction(v any, name string) {
	std.IsOptionalFunction(v, name)
}

// IsArrayOfFunction runs [Asserter.IsArrayOfFunction] with the [Default] [Asserter].
func IsArrayOfFunction(v any, name string) {
	std.IsArrayOfFunction(v, name)
}

// IsOptionalArrayOfFunction runs [Asserter.IsOptionalArrayOfFunction] with the [Default] [Asserter].
func IsOptionalArrayOfFunction(v any, name string) {
	std.IsOptionalArrayOfFunction(v, name)
}

// IsNumber checks that v is an integer or a float that is neither NaN nor infinite, using the [Default] [Asserter].
func IsNumber(v any, name string) {
	std.IsNumber(v, name)
}

// IsOptionalNumber runs [Asserter.IsOptionalNumber] with the [Default] [Asserter].
func IsOptionalNumber(v any, name string) {
	std.IsOptionalNumber(v, name)
}

// IsArrayOfNumber runs [Asserter.IsArrayOfNumber] with the [Default] [Asserter].
func IsArrayOfNumber(v any, name string) {
	std.IsArrayOfNumber(v, name)
}

// IsOptionalArrayOfNumber runs [Asserter.IsOptionalArrayOfNumber] with the [Default] [Asserter].
func IsOptionalArrayOfNumber(v any, name string) {
	std.IsOptionalArrayOfNumber(v, name)
}

// IsObject checks that v is a non-nil object, using the [Default] [Asserter].
func IsObject(v any, name string) {
	std.IsObject(v, name)
}

// IsOptionalObject runs [Asserter.IsOptionalObject] with the [Default] [Asserter].
func IsOptionalObject(v any, name string) {
	std.IsOptionalObject(v, name)
}

// IsArrayOfObject runs [Asserter.IsArrayOfObject] with the [Default] [Asserter].
func IsArrayOfObject(v any, name string) {
	std.IsArrayOfObject(v, name)
}

// IsOptionalArrayOfObject runs [Asserter.IsOptionalArrayOfObject] with the [Default] [Asserter].
func IsOptionalArrayOfObject(v any, name string) {
	std.IsOptionalArrayOfObject(v, name)
}

// IsString checks that v is a string, including the empty string, using the [Default] [Asserter].
func IsString(v any, name string) {
	std.IsString(v, name)
}

// IsOptionalString runs [Asserter.IsOptionalString] with the [Default] [Asserter].
func IsOptionalString(v any, name string) {
	std.IsOptionalString(v, name)
}

// IsArrayOfString runs [Asserter.IsArrayOfString] with the [Default] [Asserter].
func IsArrayOfString(v any, name string) {
	std.IsArrayOfString(v, name)
}

// IsOptionalArrayOfString runs [Asserter.IsOptionalArrayOfString] with the [Default] [Asserter].
func IsOptionalArrayOfString(v any, name string) {
	std.IsOptionalArrayOfString(v, name)
}

// IsTypeOf checks that v has the [TypeName] typ. A typed nil is of type "object".
func IsTypeOf(v any, typ, name string) {
	std.IsTypeOf(v, typ, name)
}

// IsOptionalTypeOf runs [Asserter.IsOptionalTypeOf] with the [Default] [Asserter].
func IsOptionalTypeOf(v any, typ, name string) {
	std.IsOptionalTypeOf(v, typ, name)
}

// IsArrayOfTypeOf runs [Asserter.IsArrayOfTypeOf] with the [Default] [Asserter].
func IsArrayOfTypeOf(v any, typ, name string) {
	std.IsArrayOfTypeOf(v, typ, name)
}

// IsOptionalArrayOfTypeOf runs [Asserter.IsOptionalArrayOfTypeOf] with the [Default] [Asserter].
func IsOptionalArrayOfTypeOf(v any, typ, name string) {
	std.IsOptionalArrayOfTypeOf(v, typ, name)
}

// IsInstanceOf checks that v has the dynamic type typ, or implements typ if it's an interface type.
// Use [reflect.TypeFor] to get typ.
func IsInstanceOf(v any, typ reflect.Type, name string) {
	std.IsInstanceOf(v, typ, name)
}

// IsOptionalInstanceOf runs [Asserter.IsOptionalInstanceOf] with the [Default] [Asserter].
func IsOptionalInstanceOf(v any, typ reflect.Type, name string) {
	std.IsOptionalInstanceOf(v, typ, name)
}

// IsArrayOfInstanceOf runs [Asserter.IsArrayOfInstanceOf] with the [Default] [Asserter].
func IsArrayOfInstanceOf(v any, typ reflect.Type, name string) {
	std.IsArrayOfInstanceOf(v, typ, name)
}

// IsOptionalArrayOfInstanceOf runs [Asserter.IsOptionalArrayOfInstanceOf] with the [Default] [Asserter].
func IsOptionalArrayOfInstanceOf(v any, typ reflect.Type, name string) {
	std.IsOptionalArrayOfInstanceOf(v, typ, name)
}
