package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the default jumper configuration.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		Road: RoadConfig{
			Length:   50,
			TileSize: 40,
		},
		Player: PlayerConfig{
			DefaultJumpDuration: 100 * time.Millisecond,
			Clips: map[string]time.Duration{
				ClipOneStep: 300 * time.Millisecond,
				ClipTwoStep: 500 * time.Millisecond,
			},
			InputDelay: 100 * time.Millisecond,
		},
		Render: RenderConfig{
			CellsPerTile: 4,
			PlayerColumn: 10,
			JumpHeight:   2,
		},
		Messages: MessagesConfig{
			Start:   "Press ENTER to start",
			Fail:    "DEAD!!!",
			Success: "SUCCESS!!!",
		},
	}
}
