package game

import (
	"math"
	"time"
)

// Character is the shared record for the player and the bots.
// Role selects which payload is set.
type Character struct {
	ID           int           `json:"id"`
	Role         Role          `json:"role"`
	X            float64       `json:"x"`
	Y            float64       `json:"y"`
	Width        float64       `json:"width"`
	Height       float64       `json:"height"`
	BaseSpeed    float64       `json:"base_speed"` // Reference pixels per tick
	Speed        float64       `json:"speed"`      // BaseSpeed at the current tile size
	Dying        bool          `json:"dying"`
	DeathElapsed time.Duration `json:"death_elapsed"`

	Player *PlayerState `json:"player,omitempty"`
	Bot    *BotState    `json:"bot,omitempty"`
}

// PlayerState holds the player-only attributes. Pickups mutate it.
type PlayerState struct {
	Lives     int `json:"lives"`
	MaxBombs  int `json:"max_bombs"`
	BombRange int `json:"bomb_range"`
}

// BotState holds the bot-only wander and bomb cooldown state.
type BotState struct {
	MoveTimer    int           `json:"move_timer"` // Ticks left on the current heading
	Heading      Direction     `json:"heading"`
	CanPlaceBomb bool          `json:"can_place_bomb"`
	Cooldown     time.Duration `json:"cooldown"`
	Tile         Tile          `json:"tile"` // Last occupied tile
}

// Box returns the character's bounding box at its current position.
func (c *Character) Box() Box {
	return c.BoxAt(c.X, c.Y)
}

// BoxAt returns the character's bounding box if it stood at (x, y).
func (c *Character) BoxAt(x, y float64) Box {
	return Box{X: x, Y: y, W: c.Width, H: c.Height}
}

// CenterTile projects the character's centre point onto the grid.
func (c *Character) CenterTile(tileSize float64) Tile {
	return Tile{
		Col: int(math.Floor((c.X + c.Width/2) / tileSize)),
		Row: int(math.Floor((c.Y + c.Height/2) / tileSize)),
	}
}

// CanMove reports whether the character may occupy (x, y).
//
// Any non-Ground tile blocks. A bomb blocks unless the character already
// overlaps it, so a character can always step off the bomb it stands on.
func (c *Character) CanMove(st *State, x, y float64) bool {
	ts := st.TileSize
	target := c.BoxAt(x, y)

	minCol := max(int(math.Floor(x/ts)), 0)
	maxCol := min(int(math.Floor((x+c.Width)/ts)), st.Board.Cols-1)
	minRow := max(int(math.Floor(y/ts)), 0)
	maxRow := min(int(math.Floor((y+c.Height)/ts)), st.Board.Rows-1)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if st.Board.At(col, row) == Ground {
				continue
			}
			if target.Overlaps(TileBox(Tile{Col: col, Row: row}, ts)) {
				return false
			}
		}
	}

	current := c.Box()
	for _, b := range st.Bombs {
		bombBox := TileBox(b.Tile, ts)
		if target.Overlaps(bombBox) && !current.Overlaps(bombBox) {
			return false
		}
	}
	return true
}

// Die puts the character into the dying sub-state. It reports false when the
// character was already dying.
func (c *Character) Die() bool {
	if c.Dying {
		return false
	}
	c.Dying = true
	c.DeathElapsed = 0
	return true
}

// DeathProgress returns how far the death animation has run, from 0 to 1.
func (c *Character) DeathProgress(delay time.Duration) float64 {
	if !c.Dying || delay <= 0 {
		return 0
	}
	return math.Min(float64(c.DeathElapsed)/float64(delay), 1)
}

// clone returns a deep copy including the role payload.
func (c *Character) clone() *Character {
	cp := *c
	if c.Player != nil {
		p := *c.Player
		cp.Player = &p
	}
	if c.Bot != nil {
		b := *c.Bot
		cp.Bot = &b
	}
	return &cp
}
