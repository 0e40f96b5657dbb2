package flexvec_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/flexvec"
)

// TestEdgeCases covers boundary conditions through the public API.
func TestEdgeCases(t *testing.T) {
	t.Run("ZeroSizedElements", func(t *testing.T) {
		v, err := flexvec.New[struct{}](flexvec.DefaultConfig())
		require.NoError(t, err)
		for range 100 {
			require.NoError(t, v.PushBack(struct{}{}))
		}
		assert.Equal(t, 100, v.Len())
		assert.Greater(t, v.MaxSize(), 1<<40)
	})

	t.Run("LargeElements", func(t *testing.T) {
		type page [4096]byte
		v, err := flexvec.New[page](flexvec.DefaultConfig())
		require.NoError(t, err)
		assert.True(t, errors.Is(v.Reserve(v.MaxSize()+1), flexvec.ErrLengthExceeded))
		require.NoError(t, v.PushBack(page{1}))
		got, err := v.Front()
		require.NoError(t, err)
		assert.Equal(t, byte(1), got[0])
	})

	t.Run("NarrowSizeWidth", func(t *testing.T) {
		cfg, err := flexvec.NewConfig(flexvec.WithStorage(flexvec.Fixed), flexvec.WithSizeWidth(8), flexvec.WithBaseline(255))
		require.NoError(t, err)
		v, err := flexvec.New[byte](cfg)
		require.NoError(t, err)
		require.NoError(t, v.Resize(255, 7))
		assert.True(t, errors.Is(v.PushBack(1), flexvec.ErrLengthExceeded))

		_, err = flexvec.NewConfig(flexvec.WithStorage(flexvec.Embedded), flexvec.WithSizeWidth(8), flexvec.WithBaseline(256))
		assert.True(t, errors.Is(err, flexvec.ErrInvalidConfig))
	})

	t.Run("HugeRequests", func(t *testing.T) {
		v, err := flexvec.New[int](flexvec.DefaultConfig())
		require.NoError(t, err)
		assert.True(t, errors.Is(v.Reserve(math.MaxInt), flexvec.ErrLengthExceeded))
		assert.True(t, errors.Is(v.Resize(math.MaxInt, 0), flexvec.ErrLengthExceeded))
		assert.Equal(t, 0, v.Len())
	})

	t.Run("LinearGrowthOfOne", func(t *testing.T) {
		cfg, err := flexvec.NewConfig(flexvec.WithLinearGrowth(1), flexvec.WithBaseline(1))
		require.NoError(t, err)
		v, err := flexvec.New[int](cfg)
		require.NoError(t, err)
		for i := range 10 {
			require.NoError(t, v.PushBack(i))
			assert.Equal(t, i+1, v.Cap())
		}
	})

	t.Run("RepeatedFreeAndReuse", func(t *testing.T) {
		cfg, err := flexvec.NewConfig(flexvec.WithStorage(flexvec.Buffered), flexvec.WithBaseline(2), flexvec.WithPlacement(flexvec.Back))
		require.NoError(t, err)
		v, err := flexvec.New[int](cfg)
		require.NoError(t, err)
		for round := range 3 {
			require.NoError(t, v.Append(1, 2, 3, 4, 5))
			assert.True(t, v.IsDynamic(), "round %d", round)
			v.Free()
			assert.False(t, v.IsDynamic())
			assert.Equal(t, 2, v.BackGap()+v.FrontGap())
		}
	})

	t.Run("PointerElementsAreCleared", func(t *testing.T) {
		v, err := flexvec.New[*int](flexvec.DefaultConfig())
		require.NoError(t, err)
		x := 1
		require.NoError(t, v.PushBack(&x))
		require.NoError(t, v.PopBack())
		assert.Empty(t, v.Data())
		assert.Nil(t, *v.Ref(0), "popped slot must not keep the pointer alive")
	})
}
