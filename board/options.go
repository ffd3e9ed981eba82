package board

import (
	"fmt"

	"github.com/katalvlaran/hexflower/hex"
)

// Option configures a Board at construction time.
type Option func(*config)

type config struct {
	orientation hex.Orientation
	parity      hex.Parity
	err         error
}

func defaultConfig() config {
	return config{orientation: hex.Pointy, parity: hex.Odd}
}

// fail keeps the first option error; later ones are dropped.
func (c *config) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// WithOrientation selects pointy-top or flat-top hexes. Default: hex.Pointy.
// An invalid orientation makes New fail with hex.ErrOrientation.
func WithOrientation(o hex.Orientation) Option {
	return func(c *config) {
		if !o.Valid() {
			c.fail(fmt.Errorf("%w: %v", hex.ErrOrientation, o))
			return
		}
		c.orientation = o
	}
}

// WithParity selects which rows (pointy) or columns (flat) are shoved.
// Default: hex.Odd. An invalid parity makes New fail with hex.ErrParity.
func WithParity(p hex.Parity) Option {
	return func(c *config) {
		if !p.Valid() {
			c.fail(fmt.Errorf("%w: %v", hex.ErrParity, p))
			return
		}
		c.parity = p
	}
}

// RayOption tunes CastRay.
type RayOption func(*rayConfig)

type rayConfig struct {
	ignoreVoids bool
}

// IgnoreVoids makes CastRay step over holes instead of stopping at the
// first one.
func IgnoreVoids() RayOption {
	return func(c *rayConfig) { c.ignoreVoids = true }
}
