//go:build !assertions_disabled

package assert

// True panics unless value is true.
// The optional args can be used to provide a formatted panic message.
func True(value bool, args ...any) {
	if value {
		return
	}

	panic(message(args))
}

// False panics unless value is false.
func False(value bool, args ...any) {
	True(!value, args...)
}
