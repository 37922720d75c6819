/*
Package assert provides runtime type assertions that can be switched between raising, warning, or doing nothing at all.

Every check comes in four variants: the base check, an optional variant that skips absent (nil) values, an array variant that checks each element of a slice or array, and an optional array variant.
The basic checks are [IsBoolean], [IsFunction], [IsNumber], [IsObject], and [IsString].
The advanced checks [IsTypeOf] and [IsInstanceOf] take an extra type parameter before the name.

	assert.IsString(cfg.Name, "cfg.Name")
	assert.IsOptionalArrayOfNumber(cfg.Ports, "cfg.Ports")
	assert.IsInstanceOf(err, reflect.TypeFor[*os.PathError](), "err")

# Levels

The package level functions use the [Default] [Asserter], which is configured once from the [EnvKey] environment variable when the package is initialized.

  - "assert" will panic with an [*AssertionError] on failure. Use [Catch] to turn that panic into an error.
  - "warn" will log a structured warning with [log/slog] and continue.
  - Anything else disables assertions, and no predicate is evaluated.

An [Asserter] with a specific [Level] may be created with [New], which is the easiest way to test code that relies on assertions.

# Comparisons

A fixed set of comparison assertions from [testify] is exposed through the same gate, for example [Equal], [DeepEqual], and [Throws].
They run whenever assertions are enabled, and a failure always panics with an [*AssertionError], even at the "warn" level.

To remove assertions entirely, build with the 'noassert' tag.

[testify]: https://github.com/stretchr/testify
*/
package assert
