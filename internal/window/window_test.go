package window

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amalg/bomb-arena/internal/game"
)

func TestFitTileSize(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		cols, rows int
		want       float64
	}{
		{"exact fit", 600, 520, 15, 13, 40},
		{"width bound", 300, 1000, 15, 13, 20},
		{"height bound", 1000, 260, 15, 13, 20},
		{"rounds down", 620, 530, 15, 13, 40},
		{"tiny window", 5, 5, 15, 13, 1},
		{"empty board", 100, 100, 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FitTileSize(tt.w, tt.h, tt.cols, tt.rows))
		})
	}
}

func TestLayoutResizesEngine(t *testing.T) {
	e := game.NewEngine(game.DefaultConfig(), 1)
	g := New(e)

	w, h := g.Layout(300, 260+HUDHeight)

	assert.Equal(t, 300, w)
	assert.Equal(t, 260+HUDHeight, h)
	assert.Equal(t, 20.0, e.Snapshot().TileSize)
	assert.InDelta(t, 22, e.Snapshot().Player.X, 1e-9)
}
