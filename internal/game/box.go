package game

// Box is an axis-aligned rectangle in pixel space.
type Box struct {
	X, Y, W, H float64
}

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func (a Box) Overlaps(b Box) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// TileBox returns the box covered by a tile at the given tile size.
func TileBox(t Tile, tileSize float64) Box {
	return Box{
		X: float64(t.Col) * tileSize,
		Y: float64(t.Row) * tileSize,
		W: tileSize,
		H: tileSize,
	}
}
