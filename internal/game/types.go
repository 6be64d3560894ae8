package game

import (
	"fmt"
	"time"
)

// TileType represents the type of a cell on the game board.
type TileType int

const (
	Ground   TileType = iota
	HardWall          // Indestructible
	SoftWall          // Destructible by bombs
)

func (t TileType) String() string {
	switch t {
	case Ground:
		return "Ground"
	case HardWall:
		return "HardWall"
	case SoftWall:
		return "SoftWall"
	default:
		return "Unknown"
	}
}

// Direction represents a movement direction.
type Direction int

const (
	DirNone Direction = iota - 1
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the cardinal directions in the order bots evaluate them.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the unit grid offset of the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// ActionType represents the type of player input action.
type ActionType int

const (
	ActionHold ActionType = iota
	ActionRelease
	ActionPlaceBomb
)

// Action represents a buffered player input intent.
type Action struct {
	Type ActionType
	Dir  Direction // Only relevant for ActionHold and ActionRelease
}

// Tile is an integer grid coordinate.
type Tile struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Step returns the neighbouring tile in direction d.
func (t Tile) Step(d Direction) Tile {
	dx, dy := d.Delta()
	return Tile{Col: t.Col + dx, Row: t.Row + dy}
}

// Role tags a Character as the player or a bot.
type Role int

const (
	RolePlayer Role = iota
	RoleBot
)

func (r Role) String() string {
	if r == RolePlayer {
		return "player"
	}
	return "bot"
}

// PowerUpKind identifies the effect of a pickup.
type PowerUpKind int

const (
	ExtraBomb PowerUpKind = iota
	ExtraRange
	ExtraSpeed
)

// powerUpKinds is the pool a spawned pickup is drawn from.
var powerUpKinds = [...]PowerUpKind{ExtraBomb, ExtraRange, ExtraSpeed}

func (k PowerUpKind) String() string {
	switch k {
	case ExtraBomb:
		return "bomb"
	case ExtraRange:
		return "fire"
	case ExtraSpeed:
		return "speed"
	default:
		return "unknown"
	}
}

// Status represents the current session phase.
type Status int

const (
	StatusRunning Status = iota // Session in progress
	StatusWon                   // Every bot finished dying
	StatusLost                  // Player ran out of lives
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "Running"
	case StatusWon:
		return "Won"
	case StatusLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Config holds configurable parameters for a session.
type Config struct {
	Cols            int     `json:"cols" yaml:"cols"`
	Rows            int     `json:"rows" yaml:"rows"`
	SoftWallDensity float64 `json:"soft_wall_density" yaml:"soft_wall_density"` // 0.0 to 1.0
	Bots            int     `json:"bots" yaml:"bots"`
	TickRate        int     `json:"tick_rate" yaml:"tick_rate"` // Ticks per second

	// Distances are expressed in reference pixels and scaled by TileSize/ReferenceTileSize.
	ReferenceTileSize float64 `json:"reference_tile_size" yaml:"reference_tile_size"`
	TileSize          float64 `json:"tile_size" yaml:"tile_size"`
	CharacterScale    float64 `json:"character_scale" yaml:"character_scale"` // Fraction of a tile
	PowerUpScale      float64 `json:"power_up_scale" yaml:"power_up_scale"`
	BaseSpeed         float64 `json:"base_speed" yaml:"base_speed"` // Reference pixels per tick
	MaxSpeed          float64 `json:"max_speed" yaml:"max_speed"`
	SpeedBoost        float64 `json:"speed_boost" yaml:"speed_boost"`

	PlayerLives     int `json:"player_lives" yaml:"player_lives"`
	PlayerMaxBombs  int `json:"player_max_bombs" yaml:"player_max_bombs"`
	PlayerBombRange int `json:"player_bomb_range" yaml:"player_bomb_range"`

	BotBombRange         int           `json:"bot_bomb_range" yaml:"bot_bomb_range"`
	BotEscapeRadius      int           `json:"bot_escape_radius" yaml:"bot_escape_radius"`
	BotBombChance        float64       `json:"bot_bomb_chance" yaml:"bot_bomb_chance"` // Per tick
	BotBombCooldown      time.Duration `json:"bot_bomb_cooldown" yaml:"bot_bomb_cooldown"`
	BotWanderMinTicks    int           `json:"bot_wander_min_ticks" yaml:"bot_wander_min_ticks"`
	BotWanderSpreadTicks int           `json:"bot_wander_spread_ticks" yaml:"bot_wander_spread_ticks"`

	BombFuse          time.Duration `json:"bomb_fuse" yaml:"bomb_fuse"`
	ExplosionDuration time.Duration `json:"explosion_duration" yaml:"explosion_duration"`
	DeathDelay        time.Duration `json:"death_delay" yaml:"death_delay"`
	PowerUpChance     float64       `json:"power_up_chance" yaml:"power_up_chance"`
}

// MaxCharacterScale is the widest character, as a fraction of a tile, that
// can leave its spawn corner.
const MaxCharacterScale = 0.85

// DefaultConfig returns a sensible default session configuration.
func DefaultConfig() Config {
	return Config{
		Cols:            15,
		Rows:            13,
		SoftWallDensity: 0.7,
		Bots:            3,
		TickRate:        60,

		ReferenceTileSize: 40,
		TileSize:          40,
		CharacterScale:    0.7,
		PowerUpScale:      0.8,
		BaseSpeed:         2,
		MaxSpeed:          4,
		SpeedBoost:        0.5,

		PlayerLives:     3,
		PlayerMaxBombs:  1,
		PlayerBombRange: 2,

		BotBombRange:         2,
		BotEscapeRadius:      2,
		BotBombChance:        0.01,
		BotBombCooldown:      3500 * time.Millisecond,
		BotWanderMinTicks:    30,
		BotWanderSpreadTicks: 60,

		BombFuse:          3 * time.Second,
		ExplosionDuration: 400 * time.Millisecond,
		DeathDelay:        time.Second,
		PowerUpChance:     0.4,
	}
}

// Validate reports configurations the board layout or spawn rules cannot satisfy.
func (c Config) Validate() error {
	if c.Cols < 7 || c.Rows < 7 {
		return fmt.Errorf("board must be at least 7x7, got %dx%d", c.Cols, c.Rows)
	}
	if c.Cols%2 == 0 || c.Rows%2 == 0 {
		return fmt.Errorf("board dimensions must be odd, got %dx%d", c.Cols, c.Rows)
	}
	// A session is won by outliving every bot, so it needs at least one.
	if c.Bots < 1 || c.Bots > len(SpawnPoints(c.Cols, c.Rows))-1 {
		return fmt.Errorf("bots must be between 1 and %d, got %d", len(SpawnPoints(c.Cols, c.Rows))-1, c.Bots)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
	}
	if c.ReferenceTileSize <= 0 || c.TileSize <= 0 {
		return fmt.Errorf("tile sizes must be positive")
	}
	if c.SoftWallDensity < 0 || c.SoftWallDensity > 1 {
		return fmt.Errorf("soft wall density must be within [0,1], got %v", c.SoftWallDensity)
	}
	// Spawns sit a tenth of a tile off the corner, so a wider box touches a pillar.
	if c.CharacterScale <= 0 || c.CharacterScale > MaxCharacterScale {
		return fmt.Errorf("character scale must be within (0,%v], got %v", MaxCharacterScale, c.CharacterScale)
	}
	if c.PowerUpScale <= 0 || c.PowerUpScale > 1 {
		return fmt.Errorf("power-up scale must be within (0,1], got %v", c.PowerUpScale)
	}
	if c.BaseSpeed <= 0 || c.MaxSpeed < c.BaseSpeed || c.SpeedBoost < 0 {
		return fmt.Errorf("speeds must satisfy 0 < base <= max and boost >= 0, got base %v max %v boost %v",
			c.BaseSpeed, c.MaxSpeed, c.SpeedBoost)
	}
	if c.PowerUpChance < 0 || c.PowerUpChance > 1 {
		return fmt.Errorf("power-up chance must be within [0,1], got %v", c.PowerUpChance)
	}
	if c.BotBombChance < 0 || c.BotBombChance > 1 {
		return fmt.Errorf("bot bomb chance must be within [0,1], got %v", c.BotBombChance)
	}
	if c.PlayerLives < 1 || c.PlayerMaxBombs < 1 {
		return fmt.Errorf("player needs at least one life and one bomb")
	}
	if c.BombFuse <= 0 || c.ExplosionDuration <= 0 || c.DeathDelay <= 0 {
		return fmt.Errorf("bomb fuse, explosion duration and death delay must be positive")
	}
	if c.BotWanderMinTicks < 1 || c.BotWanderSpreadTicks < 1 {
		return fmt.Errorf("bot wander ticks must be positive")
	}
	return nil
}

// Point is a continuous position expressed in tiles.
type Point struct {
	X float64
	Y float64
}

// SpawnPoints returns the corner spawn points in tile units.
// The first entry belongs to the player, the rest to bots.
func SpawnPoints(cols, rows int) []Point {
	return []Point{
		{X: 1.1, Y: 1.1},                                 // Top-left
		{X: float64(cols) - 2.1, Y: 1.1},                 // Top-right
		{X: 1.1, Y: float64(rows) - 2.1},                 // Bottom-left
		{X: float64(cols) - 2.1, Y: float64(rows) - 2.1}, // Bottom-right
	}
}
