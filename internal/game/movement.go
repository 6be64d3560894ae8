package game

// updatePlayer places any buffered bombs, then moves the player along each
// held axis independently so it can slide along walls.
func (e *Engine) updatePlayer(p *Character) {
	if p.Dying {
		e.bombIntents = 0
		return
	}

	for ; e.bombIntents > 0; e.bombIntents-- {
		e.placeBomb(p)
	}

	nextX, nextY := p.X, p.Y
	if e.held[DirUp] {
		nextY -= p.Speed
	}
	if e.held[DirDown] {
		nextY += p.Speed
	}
	if e.held[DirLeft] {
		nextX -= p.Speed
	}
	if e.held[DirRight] {
		nextX += p.Speed
	}

	if nextX != p.X && p.CanMove(e.State, nextX, p.Y) {
		p.X = nextX
	}
	if nextY != p.Y && p.CanMove(e.State, p.X, nextY) {
		p.Y = nextY
	}

	e.collectPowerUps(p)
}

// applyAction buffers one input intent for the next player update.
func (e *Engine) applyAction(a Action) {
	switch a.Type {
	case ActionHold, ActionRelease:
		if a.Dir < DirUp || a.Dir > DirRight {
			return
		}
		e.held[a.Dir] = a.Type == ActionHold
	case ActionPlaceBomb:
		e.bombIntents++
	}
}
