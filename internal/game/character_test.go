package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCenterTile(t *testing.T) {
	c := &Character{X: 44, Y: 44, Width: 28, Height: 28}
	assert.Equal(t, Tile{Col: 1, Row: 1}, c.CenterTile(40))

	c.X = 67 // centre at x=81
	assert.Equal(t, Tile{Col: 2, Row: 1}, c.CenterTile(40))
}

func TestCanMoveWalls(t *testing.T) {
	e := newTestEngine(t, 0)
	p := e.State.Player

	assert.True(t, p.CanMove(e.State, p.X+2, p.Y), "open ground to the right")
	assert.True(t, p.CanMove(e.State, p.X, 40), "touching the border edge is not an overlap")
	assert.False(t, p.CanMove(e.State, p.X, 38), "border wall above")
	assert.False(t, p.CanMove(e.State, 38, p.Y), "border wall to the left")

	e.State.Board.Set(2, 1, SoftWall)
	assert.False(t, p.CanMove(e.State, 53, p.Y), "soft wall blocks")
}

func TestCanMoveBombs(t *testing.T) {
	e := newTestEngine(t, 0)
	p := e.State.Player
	e.State.Bombs = append(e.State.Bombs,
		&Bomb{Tile: Tile{Col: 1, Row: 1}, Range: 1, Fuse: time.Second},
		&Bomb{Tile: Tile{Col: 2, Row: 1}, Range: 1, Fuse: time.Second},
	)

	assert.True(t, p.CanMove(e.State, p.X+2, p.Y), "may walk off the bomb it stands on")

	p.X = 50 // box 50..78, clear of the second bomb
	assert.False(t, p.CanMove(e.State, 53, p.Y), "may not walk onto another bomb")
	assert.True(t, p.CanMove(e.State, 51, p.Y))
}

func TestDieIsIdempotent(t *testing.T) {
	c := &Character{}

	assert.True(t, c.Die())
	c.DeathElapsed = 300 * time.Millisecond
	assert.False(t, c.Die(), "second call is a no-op")
	assert.Equal(t, 300*time.Millisecond, c.DeathElapsed, "second call must not restart the animation")
}

func TestDeathProgress(t *testing.T) {
	c := &Character{}
	assert.Zero(t, c.DeathProgress(time.Second))

	c.Die()
	c.DeathElapsed = 250 * time.Millisecond
	assert.InDelta(t, 0.25, c.DeathProgress(time.Second), 1e-9)

	c.DeathElapsed = 2 * time.Second
	assert.Equal(t, 1.0, c.DeathProgress(time.Second))
}

func TestCloneIsDeep(t *testing.T) {
	e := newTestEngine(t, 1)
	p := e.State.Player.clone()
	b := e.State.Bots[0].clone()

	p.Player.Lives = 0
	b.Bot.CanPlaceBomb = false
	assert.Equal(t, 3, e.State.Player.Player.Lives)
	assert.True(t, e.State.Bots[0].Bot.CanPlaceBomb)
}
