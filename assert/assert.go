package assert

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"unicode/utf8"
)

const (
	pkgPrefix      = "github.com/saylorsolutions/assertx/assert."
	testifyPrefix  = "github.com/stretchr/testify/"
	warnOp         = "assertionError"
	maxValueLength = 200
)

// Config is used to construct an [Asserter] with [New].
type Config struct {
	Level  Level
	Logger *slog.Logger // Logger receives diagnostics at [LevelWarn]. Defaults to JSON on stderr.
}

// Asserter evaluates type checks and reports failures according to its [Level].
// The configuration is fixed once created, so an Asserter is safe to share between goroutines.
type Asserter struct {
	level   Level
	enabled bool
	report  func(Diagnostic)
}

var std = New(Config{Level: LevelFromEnv()})

// Default returns the process-wide Asserter used by the package level functions.
// It's configured from [EnvKey] when the package is initialized.
func Default() *Asserter {
	return std
}

// New creates an Asserter from the given [Config].
func New(cfg Config) *Asserter {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	a := &Asserter{
		level:   cfg.Level,
		enabled: compiledIn && cfg.Level.Enabled(),
	}
	switch {
	case !a.enabled:
		a.report = func(Diagnostic) {}
	case cfg.Level == LevelAssert:
		a.report = raise
	default:
		a.report = func(d Diagnostic) {
			warn(logger, d)
		}
	}
	return a
}

// Level returns the configured [Level].
func (a *Asserter) Level() Level {
	return a.level
}

// Enabled reports whether checks are evaluated.
func (a *Asserter) Enabled() bool {
	return a.enabled
}

// Enabled reports whether the [Default] Asserter evaluates checks.
func Enabled() bool {
	return std.enabled
}

func raise(d Diagnostic) {
	panic(&AssertionError{Diagnostic: d, Caller: getCallerDetails()})
}

func warn(logger *slog.Logger, d Diagnostic) {
	logger.LogAttrs(context.Background(), slog.LevelWarn, d.Message,
		slog.String("op", warnOp),
		slog.String("stack", d.Origin),
		slog.String("expected", d.Expected),
		slog.String("actual", d.Actual),
		slog.String("operator", d.Operator),
		slog.String("caller", getCallerDetails()),
	)
}

// getCallerDetails finds the first frame that isn't part of this package or testify.
func getCallerDetails() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, pkgPrefix) && !strings.HasPrefix(frame.Function, testifyPrefix) {
			return fmt.Sprintf("'%s#%d'", frame.File, frame.Line)
		}
		if !more {
			return "unknown"
		}
	}
}

// describe renders a value for a failure message, truncating long output.
func describe(v any) string {
	s := fmt.Sprintf("%v", v)
	if len(s) <= maxValueLength {
		return s
	}
	cut := maxValueLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return fmt.Sprintf("%s... (truncated %d chars)", s[:cut], len(s)-cut)
}
