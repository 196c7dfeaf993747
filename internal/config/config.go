// Package config provides YAML-based configuration loading for the jumper game.
package config

import "time"

// Clip names looked up by the movement controller.
const (
	ClipOneStep = "oneStep"
	ClipTwoStep = "twoStep"
)

// JumperConfig contains all designer-set configuration for the jumper game.
type JumperConfig struct {
	Road     RoadConfig     `yaml:"road"`
	Player   PlayerConfig   `yaml:"player"`
	Render   RenderConfig   `yaml:"render"`
	Messages MessagesConfig `yaml:"messages"`
}

// RoadConfig defines the generated road.
type RoadConfig struct {
	Length   int     `yaml:"length"`    // Number of tiles to cross to win
	TileSize float64 `yaml:"tile_size"` // World units per tile
}

// PlayerConfig defines jump timing.
type PlayerConfig struct {
	DefaultJumpDuration time.Duration            `yaml:"default_jump_duration"` // Used when no clip is available
	Clips               map[string]time.Duration `yaml:"clips"`                 // Clip name -> duration
	InputDelay          time.Duration            `yaml:"input_delay"`           // Delay before input is enabled in Playing
}

// RenderConfig defines how the world maps onto terminal cells.
type RenderConfig struct {
	CellsPerTile int `yaml:"cells_per_tile"`
	PlayerColumn int `yaml:"player_column"` // Screen column the camera keeps the player at
	JumpHeight   int `yaml:"jump_height"`   // Rows of arc for a one-step jump
}

// MessagesConfig holds the texts shown by the game.
type MessagesConfig struct {
	Start   string `yaml:"start"`
	Fail    string `yaml:"fail"`
	Success string `yaml:"success"`
}

// Normalize replaces missing or invalid values with defaults.
// Absent configuration never fails the game.
func (c *JumperConfig) Normalize() {
	def := DefaultJumperConfig()

	if c.Road.Length <= 0 {
		c.Road.Length = def.Road.Length
	}
	if c.Road.TileSize <= 0 {
		c.Road.TileSize = def.Road.TileSize
	}
	if c.Player.DefaultJumpDuration <= 0 {
		c.Player.DefaultJumpDuration = def.Player.DefaultJumpDuration
	}
	if c.Player.InputDelay < 0 {
		c.Player.InputDelay = def.Player.InputDelay
	}
	for name, d := range c.Player.Clips {
		if d <= 0 {
			delete(c.Player.Clips, name)
		}
	}
	if c.Render.CellsPerTile <= 0 {
		c.Render.CellsPerTile = def.Render.CellsPerTile
	}
	if c.Render.PlayerColumn < 0 {
		c.Render.PlayerColumn = def.Render.PlayerColumn
	}
	if c.Render.JumpHeight <= 0 {
		c.Render.JumpHeight = def.Render.JumpHeight
	}
	if c.Messages.Start == "" {
		c.Messages.Start = def.Messages.Start
	}
	if c.Messages.Fail == "" {
		c.Messages.Fail = def.Messages.Fail
	}
	if c.Messages.Success == "" {
		c.Messages.Success = def.Messages.Success
	}
}
