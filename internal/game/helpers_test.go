package game

import (
	"io"
	"os"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
)

const tick = time.Second / 60

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// testConfig returns the default setup without soft walls or bot bombs.
func testConfig(bots int) Config {
	config := DefaultConfig()
	config.SoftWallDensity = 0
	config.BotBombChance = 0
	config.Bots = bots
	return config
}

func newTestEngine(t *testing.T, bots int) *Engine {
	t.Helper()
	return NewEngine(testConfig(bots), 1)
}

// placeAt centres a character on a tile.
func placeAt(c *Character, tile Tile, tileSize float64) {
	c.X = float64(tile.Col)*tileSize + (tileSize-c.Width)/2
	c.Y = float64(tile.Row)*tileSize + (tileSize-c.Height)/2
}
