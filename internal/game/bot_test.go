package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotFleesToOnlySafeTile(t *testing.T) {
	e := newTestEngine(t, 1)
	bot := e.State.Bots[0]
	placeAt(bot, Tile{Col: 2, Row: 1}, e.State.TileSize)
	startX, startY := bot.X, bot.Y
	e.State.Bombs = append(e.State.Bombs, &Bomb{Tile: Tile{Col: 3, Row: 1}, Range: 1, Fuse: time.Second})

	e.updateBot(bot, HazardSet(e.State.Board, e.State.Bombs))

	assert.Equal(t, startX-bot.Speed, bot.X, "moves left toward (1,1), the only safe neighbour")
	assert.Equal(t, startY, bot.Y)
}

func TestBotWithoutSafeNeighbourStays(t *testing.T) {
	e := newTestEngine(t, 1)
	bot := e.State.Bots[0]
	placeAt(bot, Tile{Col: 2, Row: 1}, e.State.TileSize)
	startX, startY := bot.X, bot.Y
	e.State.Bombs = append(e.State.Bombs,
		&Bomb{Tile: Tile{Col: 1, Row: 1}, Range: 1, Fuse: time.Second},
		&Bomb{Tile: Tile{Col: 3, Row: 1}, Range: 1, Fuse: time.Second},
	)

	e.updateBot(bot, HazardSet(e.State.Board, e.State.Bombs))

	assert.Equal(t, startX, bot.X)
	assert.Equal(t, startY, bot.Y)
}

func TestBotReactsToBombsPlacedByOthers(t *testing.T) {
	e := newTestEngine(t, 1)
	bot := e.State.Bots[0]
	placeAt(bot, Tile{Col: 5, Row: 1}, e.State.TileSize)
	bot.Bot.Heading = DirRight
	bot.Bot.MoveTimer = 100

	e.updateBot(bot, HazardSet(e.State.Board, e.State.Bombs))
	assert.Greater(t, bot.X, float64(5*40+6), "wanders right while safe")

	placeAt(bot, Tile{Col: 5, Row: 1}, e.State.TileSize)
	startY := bot.Y
	e.State.Bombs = append(e.State.Bombs, &Bomb{Tile: Tile{Col: 6, Row: 1}, Range: 2, Fuse: time.Second})
	e.updateBot(bot, HazardSet(e.State.Board, e.State.Bombs))

	// (4,1) and (6,1) are in the blast, (5,2) is the first safe neighbour.
	assert.Equal(t, float64(5*40+6), bot.X)
	assert.Equal(t, startY+bot.Speed, bot.Y, "flees down")
}

func TestBotEscapeCheckUsesBlastFootprint(t *testing.T) {
	config := testConfig(1)
	config.BotBombChance = 1
	e := NewEngine(config, 1)
	bot := e.State.Bots[0]

	// Every legal neighbour lies inside the speculative radius-2 footprint,
	// so the bot keeps wandering instead of trapping itself.
	for i := 0; i < 50; i++ {
		e.updateBot(bot, NewTileSet(e.State.Board.Cols))
	}
	assert.Empty(t, e.State.Bombs)
}

func TestEscapeFrom(t *testing.T) {
	e := newTestEngine(t, 1)
	bot := e.State.Bots[0]
	placeAt(bot, Tile{Col: 3, Row: 1}, e.State.TileSize)
	bot.Bot.Tile = Tile{Col: 3, Row: 1}

	_, ok := e.escapeFrom(bot)
	assert.False(t, ok)

	e.State.Board.Set(4, 1, SoftWall)
	_, ok = e.escapeFrom(bot)
	assert.False(t, ok)
}

func TestLegalMovesOrder(t *testing.T) {
	e := newTestEngine(t, 1)
	bot := e.State.Bots[0]
	bot.Bot.Tile = Tile{Col: 3, Row: 3}

	moves := e.legalMoves(bot)

	require.Len(t, moves, 4)
	assert.Equal(t, []Direction{DirUp, DirDown, DirLeft, DirRight},
		[]Direction{moves[0].Dir, moves[1].Dir, moves[2].Dir, moves[3].Dir})

	bot.Bot.Tile = Tile{Col: 1, Row: 1}
	moves = e.legalMoves(bot)
	require.Len(t, moves, 2)
	assert.Equal(t, DirDown, moves[0].Dir)
	assert.Equal(t, DirRight, moves[1].Dir)
}

func TestBotWanderRedirectsWhenBlocked(t *testing.T) {
	e := newTestEngine(t, 1)
	bot := e.State.Bots[0]
	placeAt(bot, Tile{Col: 1, Row: 1}, e.State.TileSize)
	bot.Y = 40 // flush against the top border
	bot.Bot.Heading = DirUp
	bot.Bot.MoveTimer = 100

	e.updateBot(bot, NewTileSet(e.State.Board.Cols))

	assert.Equal(t, 40.0, bot.Y)
	assert.Zero(t, bot.Bot.MoveTimer, "blocked wander forces a new heading next tick")

	e.updateBot(bot, NewTileSet(e.State.Board.Cols))
	assert.Contains(t, []Direction{DirDown, DirRight}, bot.Bot.Heading)
	assert.GreaterOrEqual(t, bot.Bot.MoveTimer, e.Config.BotWanderMinTicks)
}
