package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxOverlaps(t *testing.T) {
	a := Box{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		b    Box
		want bool
	}{
		{"identical", a, true},
		{"inside", Box{X: 2, Y: 2, W: 3, H: 3}, true},
		{"partial", Box{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching right edge", Box{X: 10, Y: 0, W: 10, H: 10}, false},
		{"touching bottom edge", Box{X: 0, Y: 10, W: 10, H: 10}, false},
		{"apart", Box{X: 20, Y: 20, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(a), "overlap should be symmetric")
		})
	}
}

func TestTileBox(t *testing.T) {
	assert.Equal(t, Box{X: 120, Y: 40, W: 40, H: 40}, TileBox(Tile{Col: 3, Row: 1}, 40))
}
