package game

import (
	"math/rand"
)

// Board is the tile map of one session.
type Board struct {
	Cols  int          `json:"cols"`
	Rows  int          `json:"rows"`
	Tiles [][]TileType `json:"tiles"` // Indexed [row][col]
}

// NewBoard generates a classic Bomberman grid layout.
//
// Layout rules:
//   - Border is all HardWall
//   - HardWall at every position where both column and row are even
//   - The four 3x3 corner regions are Ground so every spawn has room to move
//   - Remaining cells are SoftWall with probability config.SoftWallDensity
func NewBoard(config Config, rng *rand.Rand) *Board {
	b := &Board{
		Cols:  config.Cols,
		Rows:  config.Rows,
		Tiles: make([][]TileType, config.Rows),
	}
	for row := 0; row < config.Rows; row++ {
		b.Tiles[row] = make([]TileType, config.Cols)
		for col := 0; col < config.Cols; col++ {
			switch {
			case col == 0 || row == 0 || col == config.Cols-1 || row == config.Rows-1:
				// Border walls
				b.Tiles[row][col] = HardWall
			case col%2 == 0 && row%2 == 0:
				// Interior pillar pattern
				b.Tiles[row][col] = HardWall
			case b.inCorner(col, row):
				b.Tiles[row][col] = Ground
			case rng.Float64() < config.SoftWallDensity:
				b.Tiles[row][col] = SoftWall
			default:
				b.Tiles[row][col] = Ground
			}
		}
	}
	return b
}

// inCorner reports whether a cell lies in one of the 3x3 spawn corners.
func (b *Board) inCorner(col, row int) bool {
	top := row <= 2
	bottom := row >= b.Rows-3
	left := col <= 2
	right := col >= b.Cols-3
	return (top || bottom) && (left || right)
}

// At returns the tile kind. Callers bound-check first.
func (b *Board) At(col, row int) TileType {
	return b.Tiles[row][col]
}

// Set overwrites the tile kind at (col, row).
func (b *Board) Set(col, row int, t TileType) {
	b.Tiles[row][col] = t
}

// InBounds reports whether (col, row) lies on the board.
func (b *Board) InBounds(col, row int) bool {
	return col >= 0 && col < b.Cols && row >= 0 && row < b.Rows
}

// Interior reports whether (col, row) lies strictly inside the border.
func (b *Board) Interior(col, row int) bool {
	return col > 0 && col < b.Cols-1 && row > 0 && row < b.Rows-1
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	tiles := make([][]TileType, len(b.Tiles))
	for row := range tiles {
		tiles[row] = make([]TileType, len(b.Tiles[row]))
		copy(tiles[row], b.Tiles[row])
	}
	return &Board{Cols: b.Cols, Rows: b.Rows, Tiles: tiles}
}
