// Package env reads configuration from environment variables, comparing keys case-insensitively.
package env

import (
	"os"
	"slices"
	"strings"
)

func getEnv() map[string]string {
	envMap := map[string]string{}
	environ := os.Environ()
	for i := 0; i < len(environ); i++ {
		key, val, found := strings.Cut(environ[i], "=")
		if !found {
			continue
		}
		envMap[strings.ToLower(key)] = val
	}
	return envMap
}

// Val will attempt to get an environment variable value using the given key.
// If the variable isn't set, or is empty, then the defaultVal will be returned.
// Note that keys are compared case-insensitive.
func Val(key string, defaultVal string) string {
	envMap := getEnv()
	key = strings.ToLower(key)

	if val, ok := envMap[key]; ok {
		trimmed := strings.TrimSpace(val)
		if len(trimmed) == 0 {
			return defaultVal
		}
		return trimmed
	}
	return defaultVal
}

// OneOf restricts an environment variable to a set of allowed values.
// The value is lower-cased before it's compared, so allowed values should be given in lower-case.
//
// The defaultVal will be returned if the variable isn't set, is empty, or isn't one of allowed.
func OneOf(key string, defaultVal string, allowed ...string) string {
	sval := strings.ToLower(Val(key, ""))
	if len(sval) == 0 {
		return defaultVal
	}
	if slices.Contains(allowed, sval) {
		return sval
	}
	return defaultVal
}
