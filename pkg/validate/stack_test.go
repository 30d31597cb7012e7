package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krytenuk/doctrine1/pkg/validate"
)

func TestErrorStack(t *testing.T) {
	t.Parallel()

	t.Run("starts empty", func(t *testing.T) {
		t.Parallel()

		stack := validate.NewErrorStack()
		assert.True(t, stack.IsEmpty())
		assert.Zero(t, stack.Count())
		assert.Empty(t, stack.Fields())
		assert.False(t, stack.Has("name"))
	})

	t.Run("keeps codes in recording order", func(t *testing.T) {
		t.Parallel()

		stack := validate.NewErrorStack()
		stack.Add("name", validate.CodeType)
		stack.Add("name", validate.CodeLength)
		stack.Add("email", validate.CodeUnique)

		require.True(t, stack.Has("name"))
		assert.Equal(t, []validate.Code{validate.CodeType, validate.CodeLength}, stack.Get("name"))
		assert.Equal(t, []validate.Code{validate.CodeUnique}, stack.Get("email"))
		assert.Equal(t, []string{"name", "email"}, stack.Fields())
		assert.Equal(t, 3, stack.Count())
	})

	t.Run("reset discards everything", func(t *testing.T) {
		t.Parallel()

		stack := validate.NewErrorStack()
		stack.Add("name", validate.CodeNotNull)
		stack.Reset()

		assert.True(t, stack.IsEmpty())
		assert.Empty(t, stack.Get("name"))
		assert.Empty(t, stack.Fields())
	})

	t.Run("implements error", func(t *testing.T) {
		t.Parallel()

		stack := validate.NewErrorStack()
		stack.Add("name", validate.CodeLength)
		stack.Add("email", validate.CodeType)
		stack.Add("email", validate.CodeUnique)

		var err error = stack
		assert.Equal(t, "validation failed: name: length; email: type, unique", err.Error())
	})
}
