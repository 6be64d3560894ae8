package game

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// Bomb represents an active bomb on the board.
type Bomb struct {
	Tile     Tile          `json:"tile"`
	Range    int           `json:"range"`
	OwnerID  int           `json:"owner_id"`
	Fuse     time.Duration `json:"fuse"`      // Remaining time until detonation
	PlacedAt time.Duration `json:"placed_at"` // Session clock at placement, for fuse visuals

	detonated bool
}

// Explosion is the materialized footprint of a detonated bomb.
type Explosion struct {
	Tiles     []Tile        `json:"tiles"`
	Remaining time.Duration `json:"remaining"`
	Duration  time.Duration `json:"duration"`
}

// Ratio returns the fraction of the explosion's lifetime still left.
func (x *Explosion) Ratio() float64 {
	if x.Duration <= 0 {
		return 0
	}
	return float64(x.Remaining) / float64(x.Duration)
}

// Hits reports whether the explosion catches a live character.
func (x *Explosion) Hits(c *Character, tileSize float64) bool {
	if c.Dying {
		return false
	}
	box := c.Box()
	for _, t := range x.Tiles {
		if box.Overlaps(TileBox(t, tileSize)) {
			return true
		}
	}
	return false
}

// PowerUp is a pickup left behind by a destroyed soft wall.
type PowerUp struct {
	Tile Tile        `json:"tile"`
	Kind PowerUpKind `json:"kind"`
}

// Box returns the pickup's box, a square of scale*tileSize centred in its tile.
func (p *PowerUp) Box(tileSize, scale float64) Box {
	size := tileSize * scale
	return Box{
		X: float64(p.Tile.Col)*tileSize + (tileSize-size)/2,
		Y: float64(p.Tile.Row)*tileSize + (tileSize-size)/2,
		W: size,
		H: size,
	}
}

// apply grants the pickup's effect to the player.
func (p *PowerUp) apply(pl *Character, config Config) {
	switch p.Kind {
	case ExtraBomb:
		pl.Player.MaxBombs++
	case ExtraRange:
		pl.Player.BombRange++
	case ExtraSpeed:
		pl.BaseSpeed = min(pl.BaseSpeed+config.SpeedBoost, config.MaxSpeed)
	}
}

// placeBomb places a bomb on the character's centre tile.
// Placement is silently ignored when the character is dying, over its
// limit, or when the tile already holds a bomb.
func (e *Engine) placeBomb(c *Character) bool {
	if c.Dying {
		return false
	}

	var bombRange int
	switch c.Role {
	case RolePlayer:
		if e.ownedBombs(c.ID) >= c.Player.MaxBombs {
			return false
		}
		bombRange = c.Player.BombRange
	case RoleBot:
		if !c.Bot.CanPlaceBomb {
			return false
		}
		bombRange = e.Config.BotBombRange
	}

	tile := c.CenterTile(e.State.TileSize)
	for _, b := range e.State.Bombs {
		if b.Tile == tile {
			return false
		}
	}

	e.State.Bombs = append(e.State.Bombs, &Bomb{
		Tile:     tile,
		Range:    bombRange,
		OwnerID:  c.ID,
		Fuse:     e.Config.BombFuse,
		PlacedAt: e.State.Clock,
	})
	if c.Role == RoleBot {
		c.Bot.CanPlaceBomb = false
		c.Bot.Cooldown = e.Config.BotBombCooldown
	}

	e.log.WithFields(log.Fields{
		"owner": c.ID,
		"role":  c.Role,
		"col":   tile.Col,
		"row":   tile.Row,
		"range": bombRange,
	}).Debug("bomb placed")
	return true
}

// ownedBombs counts the active bombs placed by a character.
func (e *Engine) ownedBombs(ownerID int) int {
	n := 0
	for _, b := range e.State.Bombs {
		if b.OwnerID == ownerID {
			n++
		}
	}
	return n
}

// tickBombs advances every fuse and detonates the bombs that ran out.
func (e *Engine) tickBombs(dt time.Duration) {
	// Detonation removes bombs from the active set, so walk a copy.
	bombs := make([]*Bomb, len(e.State.Bombs))
	copy(bombs, e.State.Bombs)

	for _, b := range bombs {
		b.Fuse -= dt
		if b.Fuse <= 0 {
			e.detonate(b)
		}
	}
}

// detonate turns a bomb into an explosion exactly once.
func (e *Engine) detonate(bomb *Bomb) {
	if bomb.detonated {
		return
	}
	bomb.detonated = true

	remaining := e.State.Bombs[:0]
	for _, b := range e.State.Bombs {
		if b != bomb {
			remaining = append(remaining, b)
		}
	}
	e.State.Bombs = remaining

	e.State.Explosions = append(e.State.Explosions, e.newExplosion(bomb))
}

// newExplosion computes the blast footprint, destroys soft walls in it and
// rolls for a pickup on each destroyed wall.
func (e *Engine) newExplosion(bomb *Bomb) *Explosion {
	tiles := BlastTiles(e.State.Board, bomb.Tile, bomb.Range)
	destroyed := 0
	for _, t := range tiles {
		if e.State.Board.At(t.Col, t.Row) != SoftWall {
			continue
		}
		e.State.Board.Set(t.Col, t.Row, Ground)
		destroyed++
		if e.rng.Float64() < e.Config.PowerUpChance {
			e.spawnPowerUp(t)
		}
	}

	e.log.WithFields(log.Fields{
		"col":       bomb.Tile.Col,
		"row":       bomb.Tile.Row,
		"tiles":     len(tiles),
		"destroyed": destroyed,
	}).Debug("bomb detonated")

	return &Explosion{
		Tiles:     tiles,
		Remaining: e.Config.ExplosionDuration,
		Duration:  e.Config.ExplosionDuration,
	}
}

// spawnPowerUp drops a pickup of a uniformly random kind.
func (e *Engine) spawnPowerUp(t Tile) {
	kind := powerUpKinds[e.rng.Intn(len(powerUpKinds))]
	e.State.PowerUps = append(e.State.PowerUps, &PowerUp{Tile: t, Kind: kind})
}

// tickExplosions decays explosions and drops the expired ones.
func (e *Engine) tickExplosions(dt time.Duration) {
	remaining := e.State.Explosions[:0]
	for _, x := range e.State.Explosions {
		x.Remaining -= dt
		if x.Remaining > 0 {
			remaining = append(remaining, x)
		}
	}
	e.State.Explosions = remaining
}

// resolveBlasts marks every live character caught by an explosion as dying.
func (e *Engine) resolveBlasts() {
	ts := e.State.TileSize
	for _, x := range e.State.Explosions {
		if x.Hits(e.State.Player, ts) {
			e.kill(e.State.Player)
		}
		for _, bot := range e.State.Bots {
			if x.Hits(bot, ts) {
				e.kill(bot)
			}
		}
	}
}

// collectPowerUps applies and removes every pickup the player overlaps.
func (e *Engine) collectPowerUps(pl *Character) {
	box := pl.Box()
	remaining := e.State.PowerUps[:0]
	for _, p := range e.State.PowerUps {
		if box.Overlaps(p.Box(e.State.TileSize, e.Config.PowerUpScale)) {
			p.apply(pl, e.Config)
			e.notice.telemetry = true
			e.log.WithField("kind", p.Kind).Debug("power-up collected")
			continue
		}
		remaining = append(remaining, p)
	}
	e.State.PowerUps = remaining
}
