package guard_test

import (
	"errors"
	"testing"

	"foodorders/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		wantErr := errors.New("command not constructed")

		err := g.Validate(wantErr)

		require.Error(t, err)
		assert.Equal(t, wantErr, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type quantity struct {
		value int
		guard guard.ConstructorGuard
	}

	errNotConstructed := errors.New("quantity must be created via newQuantity")

	newQuantity := func(v int) (quantity, error) {
		if v <= 0 {
			return quantity{}, errors.New("quantity must be positive")
		}
		return quantity{value: v, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_validates", func(t *testing.T) {
		q, err := newQuantity(3)

		require.NoError(t, err)
		require.NoError(t, q.guard.Validate(errNotConstructed))
		assert.Equal(t, 3, q.value)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var q quantity

		err := q.guard.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})
}
