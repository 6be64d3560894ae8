package game

import (
	"github.com/zyedidia/generic/mapset"
)

// blastDirs is the order in which a blast walks away from its origin.
var blastDirs = [4]Direction{DirDown, DirUp, DirRight, DirLeft}

// BlastTiles returns the tiles a bomb at origin with the given radius affects.
//
// The origin is always first. Each direction walks outward up to radius steps,
// stops before a HardWall or the board edge, and includes the first SoftWall
// it meets as its last tile.
func BlastTiles(b *Board, origin Tile, radius int) []Tile {
	tiles := make([]Tile, 0, 1+4*max(radius, 0))
	tiles = append(tiles, origin)
	for _, d := range blastDirs {
		t := origin
		for i := 1; i <= radius; i++ {
			t = t.Step(d)
			if !b.InBounds(t.Col, t.Row) {
				break
			}
			kind := b.At(t.Col, t.Row)
			if kind == HardWall {
				break
			}
			tiles = append(tiles, t)
			if kind == SoftWall {
				break
			}
		}
	}
	return tiles
}

// TileSet is a membership set of tiles keyed by row*cols + col.
type TileSet struct {
	cols int
	set  mapset.Set[int]
}

// NewTileSet returns an empty set for a board cols tiles wide.
func NewTileSet(cols int) TileSet {
	return TileSet{cols: cols, set: mapset.New[int]()}
}

// Add inserts tiles into the set.
func (s TileSet) Add(tiles ...Tile) {
	for _, t := range tiles {
		s.set.Put(t.Row*s.cols + t.Col)
	}
}

// Has reports whether t is in the set.
func (s TileSet) Has(t Tile) bool {
	if t.Col < 0 || t.Col >= s.cols || t.Row < 0 {
		return false
	}
	return s.set.Has(t.Row*s.cols + t.Col)
}

// Len returns the number of tiles in the set.
func (s TileSet) Len() int {
	return s.set.Size()
}

// HazardSet returns the union of the blast footprints of all active bombs.
func HazardSet(b *Board, bombs []*Bomb) TileSet {
	hazard := NewTileSet(b.Cols)
	for _, bomb := range bombs {
		hazard.Add(BlastTiles(b, bomb.Tile, bomb.Range)...)
	}
	return hazard
}
