package hashset

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultLoadFactor is the element-to-bucket ratio above which the
	// bucket array grows.
	DefaultLoadFactor = 0.75

	// DefaultCapacity is the initial number of buckets.
	DefaultCapacity = 8

	// MaxCapacity is the largest initial bucket count a Config may ask for.
	MaxCapacity = 1 << 30
)

var (
	ErrInvalidLoadFactor = errors.New("load factor must be a finite number of at least 1/MaxCapacity")
	ErrInvalidCapacity   = errors.New("initial capacity must be a power of two no larger than MaxCapacity")
)

// Config controls how a HashSet is built. Zero fields take their defaults,
// so a LoadFactor or InitialCapacity of 0 means DefaultLoadFactor or
// DefaultCapacity.
type Config struct {
	LoadFactor      float64 `yaml:"load_factor"`
	InitialCapacity int     `yaml:"initial_capacity"`

	// Logger receives growth events at debug level.
	Logger logrus.FieldLogger `yaml:"-"`
}

// DefaultConfig returns the configuration used by New.
func DefaultConfig() Config {
	return Config{
		LoadFactor:      DefaultLoadFactor,
		InitialCapacity: DefaultCapacity,
		Logger:          discardLogger,
	}
}

var discardLogger = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func (c Config) withDefaults() Config {
	if c.LoadFactor == 0 {
		c.LoadFactor = DefaultLoadFactor
	}
	if c.InitialCapacity == 0 {
		c.InitialCapacity = DefaultCapacity
	}
	if c.Logger == nil {
		c.Logger = discardLogger
	}
	return c
}

// Validate checks c after defaults have been applied.
func (c Config) Validate() error {
	c = c.withDefaults()
	// Below 1/MaxCapacity a single element would grow the array past
	// MaxCapacity.
	if c.LoadFactor < 1.0/MaxCapacity || math.IsNaN(c.LoadFactor) || math.IsInf(c.LoadFactor, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidLoadFactor, c.LoadFactor)
	}
	if c.InitialCapacity < 0 || c.InitialCapacity > MaxCapacity || c.InitialCapacity&(c.InitialCapacity-1) != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, c.InitialCapacity)
	}
	return nil
}
