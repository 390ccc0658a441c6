// Package config provides YAML-based configuration loading for the snake
// game. Every value is fixed for the lifetime of the process: it is read
// once at startup and never reloaded.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors returned by SnakeConfig.Validate.
var (
	ErrInvalidGrid  = errors.New("config: grid dimensions must be positive")
	ErrInvalidCell  = errors.New("config: cell dimensions must be positive")
	ErrInvalidTicks = errors.New("config: ticks_per_second must be positive")
	ErrOutOfGrid    = errors.New("config: start position outside the grid")
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Cell   CellConfig   `yaml:"cell"`
	Timing TimingConfig `yaml:"timing"`
	Start  StartConfig  `yaml:"start"`
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CellConfig defines the on-screen size of one cell in pixels.
type CellConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the simulation rate.
type TimingConfig struct {
	TicksPerSecond int `yaml:"ticks_per_second"`
}

// StartConfig defines where the snake head and the first food appear.
type StartConfig struct {
	Head Position `yaml:"head"`
	Food Position `yaml:"food"`
}

// Position is a cell coordinate in the config file.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// TickInterval returns the minimum time between two simulation ticks.
func (c SnakeConfig) TickInterval() time.Duration {
	if c.Timing.TicksPerSecond <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.Timing.TicksPerSecond)
}

// ScreenSize returns the window size in pixels.
func (c SnakeConfig) ScreenSize() (int, int) {
	return c.Grid.Width * c.Cell.Width, c.Grid.Height * c.Cell.Height
}

// Validate checks that the configuration describes a playable board.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidGrid, c.Grid.Width, c.Grid.Height)
	}
	if c.Cell.Width <= 0 || c.Cell.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidCell, c.Cell.Width, c.Cell.Height)
	}
	if c.Timing.TicksPerSecond <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTicks, c.Timing.TicksPerSecond)
	}
	if !c.inGrid(c.Start.Head) {
		return fmt.Errorf("%w: head (%d, %d)", ErrOutOfGrid, c.Start.Head.X, c.Start.Head.Y)
	}
	if !c.inGrid(c.Start.Food) {
		return fmt.Errorf("%w: food (%d, %d)", ErrOutOfGrid, c.Start.Food.X, c.Start.Food.Y)
	}
	return nil
}

func (c SnakeConfig) inGrid(p Position) bool {
	return p.X >= 0 && p.X < c.Grid.Width && p.Y >= 0 && p.Y < c.Grid.Height
}
