package feature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/togglekit/pkg/feature"
)

func TestResetOn(t *testing.T) {
	t.Parallel()

	t.Run("invalidation re-runs the test once", func(t *testing.T) {
		t.Parallel()
		var reset func()
		c := &counter{value: true}
		toggles, err := feature.New([]feature.Feature{{
			Name:    "r",
			Test:    c.test,
			ResetOn: func(invalidate func()) { reset = invalidate },
		}})
		require.NoError(t, err)
		require.NotNil(t, reset)

		_, err = toggles.Get("r")
		require.NoError(t, err)
		_, err = toggles.Get("r")
		require.NoError(t, err)
		assert.EqualValues(t, 1, c.calls.Load())

		reset()
		_, err = toggles.Get("r")
		require.NoError(t, err)
		_, err = toggles.Get("r")
		require.NoError(t, err)
		assert.EqualValues(t, 2, c.calls.Load())
	})

	t.Run("invalidation is idempotent", func(t *testing.T) {
		t.Parallel()
		var reset func()
		c := &counter{value: true}
		toggles, err := feature.New([]feature.Feature{{
			Name:    "r",
			Test:    c.test,
			ResetOn: func(invalidate func()) { reset = invalidate },
		}})
		require.NoError(t, err)

		// nothing cached yet
		reset()
		_, err = toggles.Get("r")
		require.NoError(t, err)
		reset()
		reset()
		_, err = toggles.Get("r")
		require.NoError(t, err)
		assert.EqualValues(t, 2, c.calls.Load())
	})

	t.Run("only the owning feature is invalidated", func(t *testing.T) {
		t.Parallel()
		var reset func()
		a := &counter{value: true}
		b := &counter{value: true}
		toggles, err := feature.New([]feature.Feature{
			{Name: "a", Test: a.test, ResetOn: func(invalidate func()) { reset = invalidate }},
			{Name: "b", Test: b.test},
		})
		require.NoError(t, err)

		_, err = toggles.ToJSON(nil)
		require.NoError(t, err)
		reset()
		_, err = toggles.ToJSON(nil)
		require.NoError(t, err)

		assert.EqualValues(t, 2, a.calls.Load())
		assert.EqualValues(t, 1, b.calls.Load())
	})

	t.Run("hook is called at construction", func(t *testing.T) {
		t.Parallel()
		var wired int
		_, err := feature.New([]feature.Feature{{
			Name:    "r",
			Test:    feature.AlwaysOn(),
			ResetOn: func(func()) { wired++ },
		}})
		require.NoError(t, err)
		assert.Equal(t, 1, wired)
	})
}
