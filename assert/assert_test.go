//go:build !assertions_disabled

package assert_test

import (
	"testing"

	"github.com/amp-labs/amp-collections/assert"
	testify "github.com/stretchr/testify/assert"
)

func TestTrue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []any
		expected string
	}{
		{name: "no args", expected: "assertion failed"},
		{name: "format string", args: []any{"index %d out of range [0, %d]", 5, 3}, expected: "index 5 out of range [0, 3]"},
		{name: "plain string", args: []any{"boom"}, expected: "boom"},
		{name: "non-string args", args: []any{1, 2}, expected: "assertion failed: [1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			testify.PanicsWithValue(t, tt.expected, func() {
				assert.True(false, tt.args...)
			})
		})
	}

	t.Run("true does not panic", func(t *testing.T) {
		t.Parallel()

		testify.NotPanics(t, func() {
			assert.True(true, "unused")
		})
	})
}

func TestFalse(t *testing.T) {
	t.Parallel()

	testify.NotPanics(t, func() {
		assert.False(false)
	})

	testify.PanicsWithValue(t, "was true", func() {
		assert.False(true, "was true")
	})
}
