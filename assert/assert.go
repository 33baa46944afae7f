// Package assert provides panic-on-failure checks for caller preconditions,
// such as an out-of-range split index. Building with the assertions_disabled
// tag compiles the checks out.
package assert

import "fmt"

// message renders the optional panic arguments:
// if the first arg is a string, it's used as a format string with the remaining args,
// otherwise all args are included in the message.
func message(args []any) string {
	if len(args) == 0 {
		return "assertion failed"
	}

	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}

	return fmt.Sprintf("assertion failed: %v", args)
}
