package core

import "time"

// Board and timing constants for the classic playfield.
const (
	BoardWidth  = 800
	BoardHeight = 800
	CellSize    = 20
	TickPeriod  = 100 * time.Millisecond
)

// RuntimeConfig contains configuration passed to games at initialization.
// It is built once and then only read.
type RuntimeConfig struct {
	Board      Board
	TickPeriod time.Duration // Delay between simulation ticks
	Seed       int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns the RuntimeConfig for the 800x800 board with
// 20-unit cells (40x40 grid) ticking every 100ms.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Board: Board{
			Width:    BoardWidth,
			Height:   BoardHeight,
			CellSize: CellSize,
		},
		TickPeriod: TickPeriod,
		Seed:       0, // 0 means use current time in platform layer
	}
}

// WithSeed returns a copy of the config using the given seed.
func (c RuntimeConfig) WithSeed(seed int64) RuntimeConfig {
	c.Seed = seed
	return c
}
