package assert

import (
	"strings"

	"github.com/saylorsolutions/assertx/env"
)

// EnvKey is the environment variable read to configure the [Default] [Asserter].
const EnvKey = "ASSERT_LEVEL"

// Level determines what happens when an assertion fails.
type Level int

const (
	LevelNone   Level = iota // LevelNone disables assertions.
	LevelWarn                // LevelWarn logs a warning for each failure and continues.
	LevelAssert              // LevelAssert panics with an [*AssertionError] on failure.
)

// Levels lists every supported Level, from least to most severe.
var Levels = []Level{LevelNone, LevelWarn, LevelAssert}

func (l Level) String() string {
	switch l {
	case LevelAssert:
		return "assert"
	case LevelWarn:
		return "warn"
	default:
		return "none"
	}
}

// Enabled reports whether checks are evaluated at this Level.
func (l Level) Enabled() bool {
	return l == LevelAssert || l == LevelWarn
}

// ParseLevel translates a configuration string to a Level.
// Unrecognized values, including the empty string, resolve to [LevelNone].
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "assert":
		return LevelAssert
	case "warn":
		return LevelWarn
	default:
		return LevelNone
	}
}

// LevelFromEnv resolves a Level from the [EnvKey] environment variable.
func LevelFromEnv() Level {
	return ParseLevel(env.OneOf(EnvKey, "none", "assert", "warn"))
}
