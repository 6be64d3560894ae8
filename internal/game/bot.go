package game

// move is a legal step to a neighbouring tile.
type move struct {
	Dir  Direction
	Tile Tile
}

// updateBot runs one tick of bot AI.
//
// A bot standing in the hazard set flees one step toward the first safe
// neighbour. Otherwise it wanders, occasionally placing a bomb when it can
// see an escape tile outside the would-be blast.
func (e *Engine) updateBot(c *Character, hazard TileSet) {
	if c.Dying {
		return
	}
	c.Bot.Tile = c.CenterTile(e.State.TileSize)

	if hazard.Has(c.Bot.Tile) {
		e.flee(c, hazard)
		return
	}
	e.wander(c)
}

// flee steps toward the first legal neighbour outside the hazard set.
// A bot with no safe neighbour stays put.
func (e *Engine) flee(c *Character, hazard TileSet) {
	for _, m := range e.legalMoves(c) {
		if !hazard.Has(m.Tile) {
			e.moveTowards(c, m.Tile)
			return
		}
	}
}

// wander either places a bomb with a known escape or keeps walking in a
// random direction until its timer runs out or a wall stops it.
func (e *Engine) wander(c *Character) {
	if c.Bot.CanPlaceBomb && e.rng.Float64() < e.Config.BotBombChance {
		if escape, ok := e.escapeFrom(c); ok {
			e.placeBomb(c)
			e.moveTowards(c, escape)
			return
		}
	}

	c.Bot.MoveTimer--
	if c.Bot.MoveTimer <= 0 {
		moves := e.legalMoves(c)
		if len(moves) > 0 {
			c.Bot.Heading = moves[e.rng.Intn(len(moves))].Dir
		} else {
			c.Bot.Heading = DirNone
		}
		c.Bot.MoveTimer = e.Config.BotWanderMinTicks + e.rng.Intn(e.Config.BotWanderSpreadTicks)
	}

	dx, dy := c.Bot.Heading.Delta()
	nextX := c.X + float64(dx)*c.Speed
	nextY := c.Y + float64(dy)*c.Speed
	if c.CanMove(e.State, nextX, nextY) {
		c.X = nextX
		c.Y = nextY
	} else {
		c.Bot.MoveTimer = 0
	}
}

// escapeFrom returns the first legal neighbour outside the footprint of a
// bomb the bot would place on its own tile.
func (e *Engine) escapeFrom(c *Character) (Tile, bool) {
	zone := NewTileSet(e.State.Board.Cols)
	zone.Add(BlastTiles(e.State.Board, c.Bot.Tile, e.Config.BotEscapeRadius)...)
	for _, m := range e.legalMoves(c) {
		if !zone.Has(m.Tile) {
			return m.Tile, true
		}
	}
	return Tile{}, false
}

// legalMoves lists the interior Ground neighbours of the bot's last tile in
// up, down, left, right order.
func (e *Engine) legalMoves(c *Character) []move {
	moves := make([]move, 0, len(Directions))
	for _, d := range Directions {
		t := c.Bot.Tile.Step(d)
		if e.State.Board.Interior(t.Col, t.Row) && e.State.Board.At(t.Col, t.Row) == Ground {
			moves = append(moves, move{Dir: d, Tile: t})
		}
	}
	return moves
}

// moveTowards takes a single greedy step toward a tile, preferring the
// horizontal axis.
func (e *Engine) moveTowards(c *Character, t Tile) {
	ts := e.State.TileSize
	targetX := float64(t.Col)*ts + (ts-c.Width)/2
	targetY := float64(t.Row)*ts + (ts-c.Height)/2
	dirX := sign(targetX - c.X)
	dirY := sign(targetY - c.Y)

	if dirX != 0 && c.CanMove(e.State, c.X+dirX*c.Speed, c.Y) {
		c.X += dirX * c.Speed
	} else if dirY != 0 && c.CanMove(e.State, c.X, c.Y+dirY*c.Speed) {
		c.Y += dirY * c.Speed
	}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
