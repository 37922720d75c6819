/*
Package assertx is a runtime type assertion library, with the command line tool assertx to try the checks on YAML or JSON values.

The checks themselves are in the assert package.
Assertions are configured once per process with the ASSERT_LEVEL environment variable, which may be "assert", "warn", or anything else to disable them.
*/
package assertx
