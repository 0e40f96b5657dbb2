package flexvec

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, Variable, cfg.Storage)
	assert.Equal(t, Front, cfg.Placement)
	assert.Equal(t, DefaultGrowth, cfg.Growth)
	assert.Equal(t, DefaultBaseline, cfg.Baseline)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"zero baseline", []Option{WithBaseline(0)}},
		{"negative baseline", []Option{WithBaseline(-3)}},
		{"zero increment", []Option{WithLinearGrowth(0)}},
		{"factor of one", []Option{WithExponentialGrowth(1.0, 1)}},
		{"factor below one", []Option{WithExponentialGrowth(0.5, 1)}},
		{"odd width", []Option{WithSizeWidth(12)}},
		{"embedded too wide", []Option{WithStorage(Embedded), WithSizeWidth(8), WithBaseline(300)}},
		{"fixed too wide", []Option{WithStorage(Fixed), WithSizeWidth(16), WithBaseline(math.MaxUint16 + 1)}},
		{"unknown storage", []Option{WithStorage(StorageMode(9))}},
		{"unknown placement", []Option{WithPlacement(PlacementMode(9))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.opts...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}

	t.Run("variable ignores width for baseline", func(t *testing.T) {
		_, err := NewConfig(WithSizeWidth(8), WithBaseline(1000))
		assert.NoError(t, err)
	})

	t.Run("new rejects invalid config", func(t *testing.T) {
		_, err := New[int](Config{})
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})
}

func TestMaxSize(t *testing.T) {
	narrow := mustConfig(t, WithStorage(Fixed), WithSizeWidth(8), WithBaseline(200))
	v, err := New[int64](narrow)
	require.NoError(t, err)
	assert.Equal(t, math.MaxUint8, v.MaxSize())

	wide, err := New[int64](mustConfig(t, WithSizeWidth(8)))
	require.NoError(t, err)
	assert.Equal(t, maxAllocBytes/8, wide.MaxSize(), "variable storage is bounded by address space only")
}

func TestModeStrings(t *testing.T) {
	assert.Equal(t, "buffered", Buffered.String())
	assert.Equal(t, "middle", Middle.String())
	assert.Equal(t, "exponential", ExponentialGrowth.String())
	assert.Equal(t, "StorageMode(7)", StorageMode(7).String())
	assert.Contains(t, DefaultConfig().String(), "storage: variable")
}
