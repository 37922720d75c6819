//go:build !noassert

package assert

const compiledIn = true
