package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// State is everything one session owns. Restarting replaces it wholesale.
type State struct {
	SessionID  string        `json:"session_id"`
	Generation uint64        `json:"generation"`
	Board      *Board        `json:"board"`
	Player     *Character    `json:"player"`
	Bots       []*Character  `json:"bots"`
	Bombs      []*Bomb       `json:"bombs"`
	Explosions []*Explosion  `json:"explosions"`
	PowerUps   []*PowerUp    `json:"power_ups"`
	TileSize   float64       `json:"tile_size"`
	Status     Status        `json:"status"`
	Clock      time.Duration `json:"clock"` // Simulated time since the session started
}

// Characters returns the player followed by the bots.
func (s *State) Characters() []*Character {
	all := make([]*Character, 0, 1+len(s.Bots))
	all = append(all, s.Player)
	return append(all, s.Bots...)
}

// Engine owns the session state and advances it one tick at a time.
type Engine struct {
	State    *State
	Config   Config
	actions  chan Action
	done     chan struct{}
	stopOnce sync.Once
	mu       sync.Mutex
	onTick   func(State) // Callback after each tick with a COPY of state
	observer Observer

	rng         *rand.Rand
	log         *log.Entry
	generation  uint64
	held        [len(Directions)]bool
	bombIntents int
	notice      notice
}

// notice collects observer notifications raised while the lock is held.
type notice struct {
	started   bool
	telemetry bool
	outcome   *Outcome
}

// NewEngine creates an engine and starts its first session.
// The seed drives every random decision, so equal seeds and equal tick
// deltas replay the same session.
func NewEngine(config Config, seed int64) *Engine {
	e := &Engine{
		Config:  config,
		actions: make(chan Action, 256),
		done:    make(chan struct{}),
		rng:     rand.New(rand.NewSource(seed)),
	}
	e.startSessionLocked()
	return e
}

// OnTick sets a callback that is invoked after every tick with a copy of the state.
// Used by front-ends that render from another goroutine.
func (e *Engine) OnTick(fn func(State)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onTick = fn
}

// SetObserver registers the session observer and tells it about the
// session already in progress.
func (e *Engine) SetObserver(o Observer) {
	e.mu.Lock()
	e.observer = o
	t := e.telemetryLocked()
	e.notice.started = false
	e.notice.telemetry = false
	e.mu.Unlock()

	if o != nil {
		o.SessionStarted(t)
	}
}

// Run drives Step at the configured tick rate with real elapsed time.
// This blocks until Stop() is called.
func (e *Engine) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(e.Config.TickRate))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-e.done:
			return
		case now := <-ticker.C:
			e.Step(now.Sub(last))
			last = now
		}
	}
}

// Stop halts the game loop.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() { close(e.done) })
}

// EnqueueAction buffers a player action for the next tick.
func (e *Engine) EnqueueAction(a Action) {
	select {
	case e.actions <- a:
	default:
		// Drop action if buffer is full (prevents blocking)
	}
}

// Restart discards the current session and starts a fresh one.
func (e *Engine) Restart() {
	e.mu.Lock()
	e.startSessionLocked()
	stateCopy, onTick := e.copyForTickLocked()
	o, n, t := e.takeNoticeLocked()
	e.mu.Unlock()

	deliver(o, n, t)
	if onTick != nil {
		onTick(stateCopy)
	}
}

// Resize applies a new tile size, rescaling positions, sizes and speeds.
func (e *Engine) Resize(tileSize float64) {
	if tileSize <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	old := e.State.TileSize
	if old == tileSize {
		return
	}
	f := tileSize / old
	for _, c := range e.State.Characters() {
		c.X *= f
		c.Y *= f
		c.Width = e.Config.CharacterScale * tileSize
		c.Height = e.Config.CharacterScale * tileSize
		c.Speed = e.scaled(c.BaseSpeed, tileSize)
	}
	e.State.TileSize = tileSize
}

// Step advances the session by dt.
// IMPORTANT: the state is copied while holding the lock, and callbacks run
// only AFTER the lock is released (they may call back into the engine).
func (e *Engine) Step(dt time.Duration) {
	e.mu.Lock()
	e.stepLocked(dt)
	stateCopy, onTick := e.copyForTickLocked()
	o, n, t := e.takeNoticeLocked()
	e.mu.Unlock()

	deliver(o, n, t)
	if onTick != nil {
		onTick(stateCopy)
	}
}

// stepLocked runs one tick in a fixed order:
// deferred timers, hazard set, player, bots, bombs, explosions, blast
// resolution and finally speed rescaling.
func (e *Engine) stepLocked(dt time.Duration) {
	e.drainActions()
	if e.State.Status != StatusRunning {
		return
	}
	e.State.Clock += dt

	e.advanceTimers(dt)
	if e.State.Status != StatusRunning {
		return
	}

	hazard := HazardSet(e.State.Board, e.State.Bombs)
	e.updateCharacter(e.State.Player, hazard)
	for _, bot := range e.State.Bots {
		e.updateCharacter(bot, hazard)
	}
	e.tickBombs(dt)
	e.tickExplosions(dt)
	e.resolveBlasts()
	e.rescaleSpeeds()
}

// updateCharacter dispatches the role-specific per-tick update.
func (e *Engine) updateCharacter(c *Character, hazard TileSet) {
	switch c.Role {
	case RolePlayer:
		e.updatePlayer(c)
	case RoleBot:
		e.updateBot(c, hazard)
	}
}

// drainActions applies all queued player actions.
func (e *Engine) drainActions() {
	for {
		select {
		case a := <-e.actions:
			e.applyAction(a)
		default:
			return
		}
	}
}

// advanceTimers runs the deferred transitions: bot bomb cooldowns and the
// end of death animations.
func (e *Engine) advanceTimers(dt time.Duration) {
	for _, bot := range e.State.Bots {
		if bot.Bot.CanPlaceBomb {
			continue
		}
		bot.Bot.Cooldown -= dt
		if bot.Bot.Cooldown <= 0 {
			bot.Bot.Cooldown = 0
			bot.Bot.CanPlaceBomb = true
		}
	}

	// Finishing a death can remove bots, so walk a copy.
	for _, c := range e.State.Characters() {
		if !c.Dying || e.State.Status != StatusRunning {
			continue
		}
		c.DeathElapsed += dt
		if c.DeathElapsed >= e.Config.DeathDelay {
			e.finishDeath(c)
		}
	}
}

// kill starts a character's death sequence.
func (e *Engine) kill(c *Character) {
	if !c.Die() {
		return
	}
	e.log.WithFields(log.Fields{"id": c.ID, "role": c.Role}).Debug("character caught in blast")
}

// finishDeath completes a death once the animation delay has elapsed.
func (e *Engine) finishDeath(c *Character) {
	switch c.Role {
	case RolePlayer:
		c.Player.Lives--
		e.notice.telemetry = true
		if c.Player.Lives <= 0 {
			e.end(false)
			return
		}
		spawn := SpawnPoints(e.Config.Cols, e.Config.Rows)[0]
		c.X = spawn.X * e.State.TileSize
		c.Y = spawn.Y * e.State.TileSize
		c.Dying = false
		c.DeathElapsed = 0
		e.log.WithField("lives", c.Player.Lives).Info("player respawned")

	case RoleBot:
		remaining := e.State.Bots[:0]
		for _, b := range e.State.Bots {
			if b != c {
				remaining = append(remaining, b)
			}
		}
		e.State.Bots = remaining
		e.notice.telemetry = true
		e.log.WithFields(log.Fields{"id": c.ID, "remaining": len(remaining)}).Info("bot removed")
		if len(e.State.Bots) == 0 && e.State.Status == StatusRunning {
			e.end(true)
		}
	}
}

// end declares the session outcome.
func (e *Engine) end(won bool) {
	if e.State.Status != StatusRunning {
		return
	}
	if won {
		e.State.Status = StatusWon
	} else {
		e.State.Status = StatusLost
	}
	e.notice.outcome = &Outcome{
		SessionID:  e.State.SessionID,
		Generation: e.State.Generation,
		Won:        won,
	}
	e.log.WithField("status", e.State.Status).Info("session over")
}

// rescaleSpeeds derives every effective speed from the current tile size.
func (e *Engine) rescaleSpeeds() {
	for _, c := range e.State.Characters() {
		c.Speed = e.scaled(c.BaseSpeed, e.State.TileSize)
	}
}

// scaled converts a reference-pixel distance to the given tile size.
func (e *Engine) scaled(v, tileSize float64) float64 {
	return v * tileSize / e.Config.ReferenceTileSize
}

// startSessionLocked builds a fresh board, roster and empty collections.
// The tile size survives restarts because it belongs to the viewport.
func (e *Engine) startSessionLocked() {
	tileSize := e.Config.TileSize
	if e.State != nil {
		tileSize = e.State.TileSize
	}
	e.generation++

	st := &State{
		SessionID:  uuid.NewString(),
		Generation: e.generation,
		Board:      NewBoard(e.Config, e.rng),
		Bots:       make([]*Character, 0, e.Config.Bots),
		Bombs:      make([]*Bomb, 0),
		Explosions: make([]*Explosion, 0),
		PowerUps:   make([]*PowerUp, 0),
		TileSize:   tileSize,
		Status:     StatusRunning,
	}

	spawns := SpawnPoints(e.Config.Cols, e.Config.Rows)
	st.Player = e.newCharacter(0, RolePlayer, spawns[0], tileSize)
	for i := 1; i <= e.Config.Bots && i < len(spawns); i++ {
		st.Bots = append(st.Bots, e.newCharacter(i, RoleBot, spawns[i], tileSize))
	}
	e.State = st

	// Input held for the old session does not carry over.
	e.held = [len(Directions)]bool{}
	e.bombIntents = 0
	for drained := false; !drained; {
		select {
		case <-e.actions:
		default:
			drained = true
		}
	}

	e.log = log.WithFields(log.Fields{
		"session":    st.SessionID,
		"generation": st.Generation,
	})
	e.log.WithFields(log.Fields{
		"cols": e.Config.Cols,
		"rows": e.Config.Rows,
		"bots": len(st.Bots),
	}).Info("session started")

	e.notice = notice{started: true, telemetry: true}
}

// newCharacter places a character at a spawn point given in tiles.
func (e *Engine) newCharacter(id int, role Role, at Point, tileSize float64) *Character {
	c := &Character{
		ID:        id,
		Role:      role,
		X:         at.X * tileSize,
		Y:         at.Y * tileSize,
		Width:     e.Config.CharacterScale * tileSize,
		Height:    e.Config.CharacterScale * tileSize,
		BaseSpeed: e.Config.BaseSpeed,
	}
	c.Speed = e.scaled(c.BaseSpeed, tileSize)

	switch role {
	case RolePlayer:
		c.Player = &PlayerState{
			Lives:     e.Config.PlayerLives,
			MaxBombs:  e.Config.PlayerMaxBombs,
			BombRange: e.Config.PlayerBombRange,
		}
	case RoleBot:
		c.Bot = &BotState{
			Heading:      DirNone,
			CanPlaceBomb: true,
			Tile:         c.CenterTile(tileSize),
		}
	}
	return c
}

// Snapshot returns a deep copy of the session state safe for rendering.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.copyStateLocked()
}

// Telemetry returns the status-panel view of the current session.
func (e *Engine) Telemetry() Telemetry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.telemetryLocked()
}

func (e *Engine) telemetryLocked() Telemetry {
	p := e.State.Player
	return Telemetry{
		SessionID:     e.State.SessionID,
		Generation:    e.State.Generation,
		Status:        e.State.Status,
		Lives:         p.Player.Lives,
		MaxBombs:      p.Player.MaxBombs,
		BombRange:     p.Player.BombRange,
		BaseSpeed:     p.BaseSpeed,
		BotsRemaining: len(e.State.Bots),
	}
}

// copyForTickLocked copies the state only when someone is listening.
// MUST be called while e.mu is held.
func (e *Engine) copyForTickLocked() (State, func(State)) {
	if e.onTick == nil {
		return State{}, nil
	}
	return e.copyStateLocked(), e.onTick
}

// takeNoticeLocked hands over the pending notifications and their observer.
// MUST be called while e.mu is held.
func (e *Engine) takeNoticeLocked() (Observer, notice, Telemetry) {
	n := e.notice
	e.notice = notice{}
	if e.observer == nil {
		return nil, notice{}, Telemetry{}
	}
	return e.observer, n, e.telemetryLocked()
}

// deliver sends pending notifications. Called without the lock.
func deliver(o Observer, n notice, t Telemetry) {
	if o == nil {
		return
	}
	switch {
	case n.started:
		o.SessionStarted(t)
	case n.telemetry:
		o.TelemetryChanged(t)
	}
	if n.outcome != nil {
		o.SessionEnded(*n.outcome)
	}
}

// copyStateLocked creates a deep copy of the session state.
// MUST be called while e.mu is held.
func (e *Engine) copyStateLocked() State {
	bots := make([]*Character, len(e.State.Bots))
	for i, b := range e.State.Bots {
		bots[i] = b.clone()
	}

	bombs := make([]*Bomb, len(e.State.Bombs))
	for i, b := range e.State.Bombs {
		cb := *b
		bombs[i] = &cb
	}

	explosions := make([]*Explosion, len(e.State.Explosions))
	for i, x := range e.State.Explosions {
		cx := *x
		cx.Tiles = append([]Tile(nil), x.Tiles...)
		explosions[i] = &cx
	}

	powerUps := make([]*PowerUp, len(e.State.PowerUps))
	for i, p := range e.State.PowerUps {
		cp := *p
		powerUps[i] = &cp
	}

	return State{
		SessionID:  e.State.SessionID,
		Generation: e.State.Generation,
		Board:      e.State.Board.Clone(),
		Player:     e.State.Player.clone(),
		Bots:       bots,
		Bombs:      bombs,
		Explosions: explosions,
		PowerUps:   powerUps,
		TileSize:   e.State.TileSize,
		Status:     e.State.Status,
		Clock:      e.State.Clock,
	}
}
