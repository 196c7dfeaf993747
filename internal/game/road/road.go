// Package road generates the tile road the player jumps along.
package road

import (
	"math/rand"
	"strings"
)

// TileKind is the content of one road cell.
type TileKind int

const (
	Empty TileKind = iota // gap; landing here ends the run
	Solid                 // safe tile
)

// String returns a human-readable name for the tile kind.
func (k TileKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Solid:
		return "Solid"
	default:
		return "Unknown"
	}
}

// Road is an ordered sequence of tiles. For a road of length L there are
// L+2 tiles: index 0 is the start tile, indices 1..L are generated, and
// index L+1 is the goal tile. Start and goal are always Solid.
type Road struct {
	tiles  []TileKind
	length int
}

// Generate builds a road of the given length. Interior tiles are Solid or
// Empty with equal probability, except that a tile following an Empty tile
// is always Solid. A non-positive length yields a road with only the start
// and goal tiles.
func Generate(rng *rand.Rand, length int) *Road {
	if length < 0 {
		length = 0
	}

	tiles := make([]TileKind, 0, length+2)
	tiles = append(tiles, Solid)
	for i := 1; i <= length; i++ {
		if tiles[i-1] == Empty {
			tiles = append(tiles, Solid)
			continue
		}
		tiles = append(tiles, TileKind(rng.Intn(2)))
	}
	tiles = append(tiles, Solid)

	return &Road{tiles: tiles, length: length}
}

// FromTiles builds a road from explicit tiles. The configured length is
// len(tiles)-2. Used to replay a known layout.
func FromTiles(tiles []TileKind) *Road {
	t := append([]TileKind(nil), tiles...)
	length := len(t) - 2
	if length < 0 {
		length = 0
	}
	return &Road{tiles: t, length: length}
}

// Length returns the configured road length (the win threshold).
func (r *Road) Length() int {
	return r.length
}

// Len returns the number of tiles, including start and goal.
func (r *Road) Len() int {
	return len(r.tiles)
}

// At returns the tile at index i. Out-of-range indices read as Empty.
func (r *Road) At(i int) TileKind {
	if i < 0 || i >= len(r.tiles) {
		return Empty
	}
	return r.tiles[i]
}

// Tiles returns a copy of the tile sequence.
func (r *Road) Tiles() []TileKind {
	return append([]TileKind(nil), r.tiles...)
}

// String renders the road as '#' for Solid and '_' for Empty.
func (r *Road) String() string {
	var sb strings.Builder
	sb.Grow(len(r.tiles))
	for _, t := range r.tiles {
		if t == Solid {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
