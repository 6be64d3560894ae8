package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceBombGuards(t *testing.T) {
	e := newTestEngine(t, 1)
	p := e.State.Player

	require.True(t, e.placeBomb(p))
	assert.False(t, e.placeBomb(p), "over the player's bomb limit")

	p.Player.MaxBombs = 2
	assert.False(t, e.placeBomb(p), "tile already holds a bomb")

	placeAt(p, Tile{Col: 3, Row: 1}, e.State.TileSize)
	p.Die()
	assert.False(t, e.placeBomb(p), "dying characters cannot place bombs")
	assert.Len(t, e.State.Bombs, 1)

	bomb := e.State.Bombs[0]
	assert.Equal(t, Tile{Col: 1, Row: 1}, bomb.Tile)
	assert.Equal(t, 2, bomb.Range)
	assert.Equal(t, e.Config.BombFuse, bomb.Fuse)
}

func TestBotBombCooldown(t *testing.T) {
	e := newTestEngine(t, 1)
	bot := e.State.Bots[0]

	require.True(t, e.placeBomb(bot))
	assert.False(t, bot.Bot.CanPlaceBomb)
	assert.Equal(t, e.Config.BotBombRange, e.State.Bombs[0].Range)

	placeAt(bot, Tile{Col: 11, Row: 1}, e.State.TileSize)
	assert.False(t, e.placeBomb(bot), "cooling down")

	e.advanceTimers(e.Config.BotBombCooldown - time.Millisecond)
	assert.False(t, bot.Bot.CanPlaceBomb)
	e.advanceTimers(time.Millisecond)
	assert.True(t, bot.Bot.CanPlaceBomb)
}

func TestBombDetonatesOnce(t *testing.T) {
	e := newTestEngine(t, 0)
	require.True(t, e.placeBomb(e.State.Player))
	bomb := e.State.Bombs[0]

	e.tickBombs(e.Config.BombFuse)
	require.Empty(t, e.State.Bombs)
	require.Len(t, e.State.Explosions, 1)

	e.detonate(bomb)
	assert.Len(t, e.State.Explosions, 1, "a bomb explodes at most once")
}

func TestBombsDoNotChain(t *testing.T) {
	e := newTestEngine(t, 0)
	e.State.Bombs = append(e.State.Bombs,
		&Bomb{Tile: Tile{Col: 1, Row: 1}, Range: 2, Fuse: 10 * time.Millisecond},
		&Bomb{Tile: Tile{Col: 3, Row: 1}, Range: 2, Fuse: time.Second},
	)

	e.tickBombs(10 * time.Millisecond)

	require.Len(t, e.State.Bombs, 1, "a blast does not set off other bombs")
	assert.Equal(t, Tile{Col: 3, Row: 1}, e.State.Bombs[0].Tile)
}

func TestExplosionDecay(t *testing.T) {
	e := newTestEngine(t, 0)
	e.State.Explosions = append(e.State.Explosions, &Explosion{
		Tiles:     []Tile{{Col: 1, Row: 1}},
		Remaining: e.Config.ExplosionDuration,
		Duration:  e.Config.ExplosionDuration,
	})

	e.tickExplosions(e.Config.ExplosionDuration / 2)
	require.Len(t, e.State.Explosions, 1)
	assert.InDelta(t, 0.5, e.State.Explosions[0].Ratio(), 1e-9)

	e.tickExplosions(e.Config.ExplosionDuration / 2)
	assert.Empty(t, e.State.Explosions)
}

func TestExplosionSkipsDyingCharacters(t *testing.T) {
	e := newTestEngine(t, 0)
	p := e.State.Player
	x := &Explosion{Tiles: []Tile{{Col: 1, Row: 1}}}

	assert.True(t, x.Hits(p, e.State.TileSize))
	p.Die()
	assert.False(t, x.Hits(p, e.State.TileSize))
}

func TestSoftWallDestroyedAndPickupCollectedOnce(t *testing.T) {
	config := testConfig(0)
	config.PowerUpChance = 1
	e := NewEngine(config, 1)
	e.State.Board.Set(3, 1, SoftWall)
	e.State.Board.Set(5, 1, SoftWall)

	e.detonate(&Bomb{Tile: Tile{Col: 2, Row: 1}, Range: 3})

	assert.Equal(t, Ground, e.State.Board.At(3, 1), "soft wall in range is destroyed")
	assert.Equal(t, SoftWall, e.State.Board.At(5, 1), "soft wall behind another one survives")
	require.Len(t, e.State.PowerUps, 1)
	assert.Equal(t, Tile{Col: 3, Row: 1}, e.State.PowerUps[0].Tile)

	// Destroyed walls stay destroyed.
	e.tickExplosions(e.Config.ExplosionDuration)
	assert.Equal(t, Ground, e.State.Board.At(3, 1))

	p := e.State.Player
	before := *p.Player
	beforeSpeed := p.BaseSpeed
	placeAt(p, Tile{Col: 3, Row: 1}, e.State.TileSize)

	e.collectPowerUps(p)
	e.collectPowerUps(p)

	assert.Empty(t, e.State.PowerUps)
	gained := (p.Player.MaxBombs - before.MaxBombs) + (p.Player.BombRange - before.BombRange)
	if p.BaseSpeed != beforeSpeed {
		gained++
		assert.Equal(t, beforeSpeed+config.SpeedBoost, p.BaseSpeed)
	}
	assert.Equal(t, 1, gained, "a pickup applies exactly once")
}

func TestSpeedPickupIsCapped(t *testing.T) {
	config := DefaultConfig()
	p := &Character{BaseSpeed: config.MaxSpeed - 0.25, Player: &PlayerState{}}
	pu := &PowerUp{Kind: ExtraSpeed}

	pu.apply(p, config)
	assert.Equal(t, config.MaxSpeed, p.BaseSpeed)
	pu.apply(p, config)
	assert.Equal(t, config.MaxSpeed, p.BaseSpeed)
}
