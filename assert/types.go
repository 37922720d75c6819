package assert

import "reflect"

// IsBoolean checks that v is true or false.
func (a *Asserter) IsBoolean(v any, name string) {
	booleanCheck.is(a, v, noSpec{}, name)
}

// IsOptionalBoolean is like [Asserter.IsBoolean], but nil is accepted.
func (a *Asserter) IsOptionalBoolean(v any, name string) {
	booleanCheck.isOptional(a, v, noSpec{}, name)
}

// IsArrayOfBoolean checks that v is a slice or array where every element passes [Asserter.IsBoolean].
func (a *Asserter) IsArrayOfBoolean(v any, name string) {
	booleanCheck.isArrayOf(a, v, noSpec{}, name)
}

// IsOptionalArrayOfBoolean is like [Asserter.IsArrayOfBoolean], but nil is accepted in place of the slice.
func (a *Asserter) IsOptionalArrayOfBoolean(v any, name string) {
	booleanCheck.isOptionalArrayOf(a, v, noSpec{}, name)
}

// IsFunction checks that v is a non-nil func.
func (a *Asserter) IsFunction(v any, name string) {
	functionCheck.is(a, v, noSpec{}, name)
}

// IsOptionalFunction is like [Asserter.IsFunction], but nil is accepted.
func (a *Asserter) IsOptionalFunction(v any, name string) {
	functionCheck.isOptional(a, v, noSpec{}, name)
}

// IsArrayOfFunction checks that v is a slice or array where every element passes [Asserter.IsFunction].
func (a *Asserter) IsArrayOfFunction(v any, name string) {
	functionCheck.isArrayOf(a, v, noSpec{}, name)
}

// IsOptionalArrayOfFunction is like [Asserter.IsArrayOfFunction], but nil is accepted in place of the slice.
func (a *Asserter) IsOptionalArrayOfFunction(v any, name string) {
	functionCheck.isOptionalArrayOf(a, v, noSpec{}, name)
}

// IsNumber checks that v is an integer or a float that is neither NaN nor infinite.
func (a *Asserter) IsNumber(v any, name string) {
	numberCheck.is(a, v, noSpec{}, name)
}

// IsOptionalNumber is like [Asserter.IsNumber], but nil is accepted.
func (a *Asserter) IsOptionalNumber(v any, name string) {
	numberCheck.isOptional(a, v, noSpec{}, name)
}

// IsArrayOfNumber checks that v is a slice or array where every element passes [Asserter.IsNumber].
func (a *Asserter) IsArrayOfNumber(v any, name string) {
	numberCheck.isArrayOf(a, v, noSpec{}, name)
}

// IsOptionalArrayOfNumber is like [Asserter.IsArrayOfNumber], but nil is accepted in place of the slice.
func (a *Asserter) IsOptionalArrayOfNumber(v any, name string) {
	numberCheck.isOptionalArrayOf(a, v, noSpec{}, name)
}

// IsObject checks that v is a non-nil value that isn't a boolean, number, string, or function.
// Slices, maps, structs, and non-nil pointers all qualify.
func (a *Asserter) IsObject(v any, name string) {
	objectCheck.is(a, v, noSpec{}, name)
}

// IsOptionalObject is like [Asserter.IsObject], but nil is accepted.
func (a *Asserter) IsOptionalObject(v any, name string) {
	objectCheck.isOptional(a, v, noSpec{}, name)
}

// IsArrayOfObject checks that v is a slice or array where every element passes [Asserter.IsObject].
func (a *Asserter) IsArrayOfObject(v any, name string) {
	objectCheck.isArrayOf(a, v, noSpec{}, name)
}

// IsOptionalArrayOfObject is like [Asserter.IsArrayOfObject], but nil is accepted in place of the slice.
func (a *Asserter) IsOptionalArrayOfObject(v any, name string) {
	objectCheck.isOptionalArrayOf(a, v, noSpec{}, name)
}

// IsString checks that v is a string, including the empty string.
func (a *Asserter) IsString(v any, name string) {
	stringCheck.is(a, v, noSpec{}, name)
}

// IsOptionalString is like [Asserter.IsString], but nil is accepted.
func (a *Asserter) IsOptionalString(v any, name string) {
	stringCheck.isOptional(a, v, noSpec{}, name)
}

// IsArrayOfString checks that v is a slice or array where every element passes [Asserter.IsString].
func (a *Asserter) IsArrayOfString(v any, name string) {
	stringCheck.isArrayOf(a, v, noSpec{}, name)
}

// IsOptionalArrayOfString is like [Asserter.IsArrayOfString], but nil is accepted in place of the slice.
func (a *Asserter) IsOptionalArrayOfString(v any, name string) {
	stringCheck.isOptionalArrayOf(a, v, noSpec{}, name)
}

// IsTypeOf checks that v has the [TypeName] typ. A typed nil is of type "object".
func (a *Asserter) IsTypeOf(v any, typ, name string) {
	typeOfCheck.is(a, v, typ, name)
}

// IsOptionalTypeOf is like [Asserter.IsTypeOf], but nil is accepted.
func (a *Asserter) IsOptionalTypeOf(v any, typ, name string) {
	typeOfCheck.isOptional(a, v, typ, name)
}

// IsArrayOfTypeOf checks that v is a slice or array where every element passes [Asserter.IsTypeOf].
func (a *Asserter) IsArrayOfTypeOf(v any, typ, name string) {
	typeOfCheck.isArrayOf(a, v, typ, name)
}

// IsOptionalArrayOfTypeOf is like [Asserter.IsArrayOfTypeOf], but nil is accepted in place of the slice.
func (a *Asserter) IsOptionalArrayOfTypeOf(v any, typ, name string) {
	typeOfCheck.isOptionalArrayOf(a, v, typ, name)
}

// IsInstanceOf checks that v has the dynamic type typ, or implements typ if it's an interface type.
// Use [reflect.TypeFor] to get typ.
func (a *Asserter) IsInstanceOf(v any, typ reflect.Type, name string) {
	instanceOfCheck.is(a, v, typ, name)
}

// IsOptionalInstanceOf is like [Asserter.IsInstanceOf], but nil is accepted.
func (a *Asserter) IsOptionalInstanceOf(v any, typ reflect.Type, name string) {
	instanceOfCheck.isOptional(a, v, typ, name)
}

// IsArrayOfInstanceOf checks that v is a slice or array where every element passes [Asserter.IsInstanceOf].
func (a *Asserter) IsArrayOfInstanceOf(v any, typ reflect.Type, name string) {
	instanceOfCheck.isArrayOf(a, v, typ, name)
}

// IsOptionalArrayOfInstanceOf is like [Asserter.IsArrayOfInstanceOf], but nil is accepted in place of the slice.
func (a *Asserter) IsOptionalArrayOfInstanceOf(v any, typ reflect.Type, name string) {
	instanceOfCheck.isOptionalArrayOf(a, v, typ, name)
}
