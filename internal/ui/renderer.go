package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/bomb-arena/internal/game"
)

// fuseBlink is the period of a bomb's fuse flicker.
const fuseBlink = 250 * time.Millisecond

// Color palette
var (
	// Tile styles
	hardWallStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#3a3a3a")).
			Foreground(lipgloss.Color("#555555"))

	softWallStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#8B6914")).
			Foreground(lipgloss.Color("#A0772B"))

	emptyStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#1a1a2e"))

	bombStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#ff4444")).
			Bold(true)

	bombBlinkStyle = bombStyle.
			Foreground(lipgloss.Color("#ffffff"))

	fireStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#ff6600")).
			Foreground(lipgloss.Color("#ffcc00")).
			Bold(true)

	fadingFireStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#993d00")).
			Foreground(lipgloss.Color("#cc7a00"))

	pickupStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#44ddff")).
			Bold(true)

	playerStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#00ff88")).
			Foreground(lipgloss.Color("#00ff88"))

	botStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#ff44ff")).
			Bold(true)

	dyingStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#666666")).
			Strikethrough(true)

	// HUD styles
	hudBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff8844")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	winnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff88")).
			Bold(true).
			Blink(true)

	loserStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444")).
			Bold(true)
)

// pickupLabels are the two-cell glyphs for each pickup kind.
var pickupLabels = map[game.PowerUpKind]string{
	game.ExtraBomb:  "B+",
	game.ExtraRange: "F+",
	game.ExtraSpeed: "S+",
}

// RenderBoard converts the session state into a styled terminal string.
// Characters are drawn on the tile under their centre.
func RenderBoard(state *game.State, deathDelay time.Duration) string {
	if state == nil || state.Board == nil {
		return "Waiting for game state..."
	}
	ts := state.TileSize

	// Build fire lookup, keeping the freshest explosion per tile
	fireSet := make(map[game.Tile]float64)
	for _, x := range state.Explosions {
		for _, t := range x.Tiles {
			fireSet[t] = max(fireSet[t], x.Ratio())
		}
	}

	bombSet := make(map[game.Tile]*game.Bomb)
	for _, b := range state.Bombs {
		bombSet[b.Tile] = b
	}

	pickupSet := make(map[game.Tile]game.PowerUpKind)
	for _, p := range state.PowerUps {
		pickupSet[p.Tile] = p.Kind
	}

	charSet := make(map[game.Tile]*game.Character)
	for _, c := range state.Characters() {
		t := c.CenterTile(ts)
		// The player wins ties so it never disappears under a bot.
		if prev, ok := charSet[t]; ok && prev.Role == game.RolePlayer {
			continue
		}
		charSet[t] = c
	}

	var rows []string
	for row := 0; row < state.Board.Rows; row++ {
		var cells []string
		for col := 0; col < state.Board.Cols; col++ {
			t := game.Tile{Col: col, Row: row}
			cells = append(cells, renderCell(state, t, fireSet, bombSet, pickupSet, charSet, deathDelay))
		}
		rows = append(rows, strings.Join(cells, ""))
	}

	return strings.Join(rows, "\n")
}

// renderCell renders a single board cell with the appropriate style.
// Each cell is 2 characters wide for a square-ish appearance.
func renderCell(
	state *game.State,
	t game.Tile,
	fireSet map[game.Tile]float64,
	bombSet map[game.Tile]*game.Bomb,
	pickupSet map[game.Tile]game.PowerUpKind,
	charSet map[game.Tile]*game.Character,
	deathDelay time.Duration,
) string {
	// Priority: Character > Fire > Bomb > Pickup > Tile
	if c, ok := charSet[t]; ok {
		return renderCharacter(c, deathDelay)
	}

	if ratio, ok := fireSet[t]; ok {
		if ratio > 0.5 {
			return fireStyle.Render("░░")
		}
		return fadingFireStyle.Render("░░")
	}

	if b, ok := bombSet[t]; ok {
		if ((state.Clock-b.PlacedAt)/fuseBlink)%2 == 1 {
			return bombBlinkStyle.Render("()")
		}
		return bombStyle.Render("()")
	}

	if kind, ok := pickupSet[t]; ok {
		return pickupStyle.Render(pickupLabels[kind])
	}

	switch state.Board.At(t.Col, t.Row) {
	case game.HardWall:
		return hardWallStyle.Render("██")
	case game.SoftWall:
		return softWallStyle.Render("▒▒")
	default:
		return emptyStyle.Render("  ")
	}
}

// renderCharacter draws a character, fading dying ones through their
// death animation.
func renderCharacter(c *game.Character, deathDelay time.Duration) string {
	if c.Dying {
		if c.DeathProgress(deathDelay) < 0.5 {
			return dyingStyle.Render("xx")
		}
		return dyingStyle.Render("..")
	}
	if c.Role == game.RolePlayer {
		return playerStyle.Render("██")
	}
	return botStyle.Render(fmt.Sprintf("B%d", c.ID))
}

// RenderHUD renders the status panel and the game-over message.
func RenderHUD(t *game.Telemetry, outcome *game.Outcome) string {
	var parts []string

	parts = append(parts, titleStyle.Render("💣 BOMB ARENA"))
	parts = append(parts, "")

	if t != nil {
		parts = append(parts,
			fmt.Sprintf("%s %d", labelStyle.Render("Lives:"), t.Lives),
			fmt.Sprintf("%s %d", labelStyle.Render("Bombs:"), t.MaxBombs),
			fmt.Sprintf("%s %d", labelStyle.Render("Range:"), t.BombRange),
			fmt.Sprintf("%s %.1f", labelStyle.Render("Speed:"), t.BaseSpeed),
			fmt.Sprintf("%s %d", labelStyle.Render("Bots: "), t.BotsRemaining),
		)
		parts = append(parts, "")
	}

	if outcome != nil {
		if outcome.Won {
			parts = append(parts, winnerStyle.Render("🏆 VICTORY!"))
		} else {
			parts = append(parts, loserStyle.Render("💀 DEFEAT!"))
		}
		parts = append(parts, "   Press [R] or [Enter] to play again")
		parts = append(parts, "")
	}

	parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")).Render("WASD/Arrows: Move | Space: Bomb | Q: Quit"))

	return hudBorderStyle.Render(strings.Join(parts, "\n"))
}
