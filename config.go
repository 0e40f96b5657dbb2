package flexvec

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/cockroachdb/errors"

	"github.com/pavanmanishd/flexvec/internal/conv"
)

// StorageMode selects where a container's capacity lives.
type StorageMode uint8

const (
	// Variable storage owns a growable dynamic block, allocated lazily.
	Variable StorageMode = iota
	// Embedded storage lives with the container and never grows.
	Embedded
	// Fixed storage owns a single dynamic block of Baseline slots,
	// allocated on first use.
	Fixed
	// Buffered storage starts in an embedded buffer of Baseline slots and
	// overflows into a growable dynamic block.
	Buffered
)

var storageModeNames = map[StorageMode]string{
	Variable: "variable",
	Embedded: "embedded",
	Fixed:    "fixed",
	Buffered: "buffered",
}

func (m StorageMode) String() string {
	if s, ok := storageModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("StorageMode(%d)", uint8(m))
}

// PlacementMode selects where the live elements sit inside the capacity.
type PlacementMode uint8

const (
	// Front packs elements at the start of the block.
	Front PlacementMode = iota
	// Back packs elements at the end of the block.
	Back
	// Middle lets the run float with a gap on each side.
	Middle
)

var placementModeNames = map[PlacementMode]string{
	Front:  "front",
	Back:   "back",
	Middle: "middle",
}

func (m PlacementMode) String() string {
	if s, ok := placementModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("PlacementMode(%d)", uint8(m))
}

// GrowthMode selects how capacity grows once exhausted.
type GrowthMode uint8

const (
	// DefaultGrowth grows by roughly half the current capacity.
	DefaultGrowth GrowthMode = iota
	// LinearGrowth grows by a fixed Increment.
	LinearGrowth
	// ExponentialGrowth grows by Factor, but never by less than Increment.
	ExponentialGrowth
)

var growthModeNames = map[GrowthMode]string{
	DefaultGrowth:     "default",
	LinearGrowth:      "linear",
	ExponentialGrowth: "exponential",
}

func (m GrowthMode) String() string {
	if s, ok := growthModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("GrowthMode(%d)", uint8(m))
}

const (
	// DefaultBaseline is the default baseline capacity.
	DefaultBaseline = 16
	// DefaultFactor is the default exponential growth factor.
	DefaultFactor = 2.0
	// DefaultSizeWidth is the default counter width in bits.
	DefaultSizeWidth = 64

	// maxAllocBytes bounds a single block at 128 TiB on 64-bit platforms.
	maxAllocBytes = math.MaxInt >> 16
)

// Config is the immutable layout of a container. Build one with
// NewConfig or start from DefaultConfig.
type Config struct {
	SizeWidth uint8
	Storage   StorageMode
	Placement PlacementMode
	Growth    GrowthMode
	Baseline  int
	Increment int
	Factor    float64
	Logger    *Logger
}

// Option is a configuration option for Config.
type Option func(*Config)

// WithStorage sets the storage mode.
func WithStorage(m StorageMode) Option {
	return func(c *Config) { c.Storage = m }
}

// WithPlacement sets the placement mode.
func WithPlacement(m PlacementMode) Option {
	return func(c *Config) { c.Placement = m }
}

// WithBaseline sets the baseline capacity. For Embedded, Fixed and
// Buffered storage this is also the fixed (or buffer) size.
func WithBaseline(n int) Option {
	return func(c *Config) { c.Baseline = n }
}

// WithLinearGrowth grows capacity by increment slots at a time.
func WithLinearGrowth(increment int) Option {
	return func(c *Config) {
		c.Growth = LinearGrowth
		c.Increment = increment
	}
}

// WithExponentialGrowth multiplies capacity by factor, adding at least
// increment slots.
func WithExponentialGrowth(factor float64, increment int) Option {
	return func(c *Config) {
		c.Growth = ExponentialGrowth
		c.Factor = factor
		c.Increment = increment
	}
}

// WithDefaultGrowth restores the default ~1.5x growth.
func WithDefaultGrowth() Option {
	return func(c *Config) { c.Growth = DefaultGrowth }
}

// WithSizeWidth sets the bit width of size and gap counters.
func WithSizeWidth(bits uint8) Option {
	return func(c *Config) { c.SizeWidth = bits }
}

// WithLogger attaches a logger for structural events.
func WithLogger(l *Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// DefaultConfig returns a growable, front-packed configuration.
func DefaultConfig() Config {
	return Config{
		SizeWidth: DefaultSizeWidth,
		Storage:   Variable,
		Placement: Front,
		Growth:    DefaultGrowth,
		Baseline:  DefaultBaseline,
		Increment: 1,
		Factor:    DefaultFactor,
	}
}

// NewConfig applies opts to DefaultConfig and validates the result.
func NewConfig(opts ...Option) (Config, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that c describes a usable container.
func (c Config) Validate() error {
	if _, ok := storageModeNames[c.Storage]; !ok {
		return errors.Wrapf(ErrInvalidConfig, "unknown storage mode %d", c.Storage)
	}
	if _, ok := placementModeNames[c.Placement]; !ok {
		return errors.Wrapf(ErrInvalidConfig, "unknown placement mode %d", c.Placement)
	}
	if _, ok := growthModeNames[c.Growth]; !ok {
		return errors.Wrapf(ErrInvalidConfig, "unknown growth mode %d", c.Growth)
	}
	switch c.SizeWidth {
	case 8, 16, 32, 64:
	default:
		return errors.Wrapf(ErrInvalidConfig, "size width %d not in {8,16,32,64}", c.SizeWidth)
	}
	if c.Baseline <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "baseline %d must be positive", c.Baseline)
	}
	if c.Increment <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "increment %d must be positive", c.Increment)
	}
	if c.Growth == ExponentialGrowth && !(c.Factor > 1.0) {
		return errors.Wrapf(ErrInvalidConfig, "factor %v must be greater than 1", c.Factor)
	}
	if c.Storage != Variable && !conv.FitsWidth(c.Baseline, c.SizeWidth) {
		return errors.Wrapf(ErrInvalidConfig, "baseline %d does not fit %d-bit sizes", c.Baseline, c.SizeWidth)
	}
	return nil
}

// fixedCapacity reports whether the mode has a hard upper bound.
func (c Config) fixedCapacity() bool {
	return c.Storage == Embedded || c.Storage == Fixed
}

// embeds reports whether the container carries in-object slots.
func (c Config) embeds() bool {
	return c.Storage == Embedded || c.Storage == Buffered
}

// maxSizeFor returns the largest element count a container of c can hold
// for elements of elemSize bytes.
func (c Config) maxSizeFor(elemSize uintptr) int {
	limit := maxAllocBytes
	if elemSize > 0 {
		limit = maxAllocBytes / int(elemSize)
	}
	if c.fixedCapacity() {
		limit = min(limit, conv.MaxForWidth(c.SizeWidth))
	}
	return limit
}

func (c Config) String() string {
	return fmt.Sprintf("Config{storage: %s, placement: %s, growth: %s, baseline: %d, increment: %d, factor: %g, width: %d}",
		c.Storage, c.Placement, c.Growth, c.Baseline, c.Increment, c.Factor, c.SizeWidth)
}

func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// sameLayout reports whether two configurations describe the same
// container type, ignoring the logger.
func (c Config) sameLayout(o Config) bool {
	c.Logger, o.Logger = nil, nil
	return c == o
}
